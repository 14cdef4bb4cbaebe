package motionplan

import (
	"fmt"

	"github.com/golang/geo/r2"

	"go.viam.com/kinematics2d/spatialmath"
)

// TrajNode is a snapshot of a single point in time along a rollout.
type TrajNode struct {
	Time  float64                // elapsed time since the start of the rollout
	State spatialmath.Kinematics // state of the body at Time
}

func (n *TrajNode) String() string {
	return fmt.Sprintf("t=%v %v", n.Time, n.State)
}

// Trajectory is a time-ordered series of nodes. The first node is the state the rollout started from.
type Trajectory []*TrajNode

// Final returns the last node of the trajectory, or nil if it is empty.
func (traj Trajectory) Final() *TrajNode {
	if len(traj) == 0 {
		return nil
	}
	return traj[len(traj)-1]
}

// Poses returns the pose at every node.
func (traj Trajectory) Poses() []spatialmath.Pose {
	poses := make([]spatialmath.Pose, 0, len(traj))
	for _, node := range traj {
		poses = append(poses, node.State.Pose())
	}
	return poses
}

// Bounds returns the smallest axis-aligned rectangle containing every position visited. An empty
// trajectory has empty bounds.
func (traj Trajectory) Bounds() r2.Rect {
	if len(traj) == 0 {
		return r2.EmptyRect()
	}
	pts := make([]r2.Point, 0, len(traj))
	for _, node := range traj {
		pts = append(pts, node.State.Position.Point())
	}
	return r2.RectFromPoints(pts...)
}

// Length returns the distance travelled along the straight segments joining consecutive nodes.
func (traj Trajectory) Length() float64 {
	var total float64
	for i := 1; i < len(traj); i++ {
		total += traj[i].State.Position.Sub(traj[i-1].State.Position).Magnitude()
	}
	return total
}
