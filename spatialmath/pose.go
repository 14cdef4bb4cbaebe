package spatialmath

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Pose is the location and heading of a rigid body in its parent frame. Orientation is in radians
// and is never wrapped into a canonical range.
type Pose struct {
	Position    Vector  `json:"position"`
	Orientation float64 `json:"orientation"`
}

// NewPose returns a pose at position with the given orientation.
func NewPose(position Vector, orientation float64) Pose {
	return Pose{Position: position, Orientation: orientation}
}

// NewZeroPose returns a pose at the origin with zero orientation.
func NewZeroPose() Pose {
	return Pose{Position: NewZeroVector(), Orientation: 0.0}
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose(pos: %v, ort: %v)", p.Position, p.Orientation)
}

// PoseAlmostEqual reports whether the positions and orientations of a and b are within tol.
func PoseAlmostEqual(a, b Pose, tol float64) bool {
	return VectorAlmostEqual(a.Position, b.Position, tol) && scalar.EqualWithinAbs(a.Orientation, b.Orientation, tol)
}
