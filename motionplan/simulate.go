package motionplan

import (
	"context"
	"math"

	"go.viam.com/kinematics2d/logging"
	"go.viam.com/kinematics2d/spatialmath"
)

// stepEpsilon absorbs rounding in duration/dt so that e.g. 0.6/0.2 yields three steps, not four.
const stepEpsilon = 1e-9

// steps returns the number of update steps needed to cover the configured duration. Any positive
// duration takes at least one step, however short.
func (cfg *Config) steps() int {
	if cfg.DurationSec <= 0 {
		return 0
	}
	return max(1, int(math.Ceil(cfg.DurationSec/cfg.DeltaTimeSec-stepEpsilon)))
}

// timeAt returns the elapsed time after step i. The final step is shortened so that it lands exactly on the
// configured duration.
func (cfg *Config) timeAt(i, steps int) float64 {
	if i >= steps {
		return cfg.DurationSec
	}
	return float64(i) * cfg.DeltaTimeSec
}

// Simulate rolls start forward with repeated forward Euler updates. The returned trajectory begins with start at
// time zero and ends with a node at exactly cfg.DurationSec.
func Simulate(
	ctx context.Context,
	logger logging.Logger,
	start spatialmath.Kinematics,
	cfg Config,
) (Trajectory, error) {
	if err := cfg.Validate("motion"); err != nil {
		return nil, err
	}
	steps := cfg.steps()
	logger = logger.With("delta_time_sec", cfg.DeltaTimeSec, "duration_sec", cfg.DurationSec)
	logger.Debugw("starting rollout", "start", start.String(), "steps", steps)

	traj := make(Trajectory, 0, steps+1)
	traj = append(traj, &TrajNode{Time: 0, State: start})

	state := start
	elapsed := 0.0
	for i := 1; i <= steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, NewSimulationCanceledError(err, elapsed)
		}
		next := cfg.timeAt(i, steps)
		state = state.Updated(next - elapsed)
		elapsed = next
		traj = append(traj, &TrajNode{Time: elapsed, State: state})
	}

	final := traj.Final()
	logger.Debugw("rollout finished", "nodes", len(traj), "final", final.State.String())
	return traj, nil
}

// StopPose returns the pose at which state comes to rest when braking at the configured decelerations. The
// linear and angular motions are braked independently.
func StopPose(state spatialmath.Kinematics, cfg Config) spatialmath.Pose {
	return spatialmath.NewPose(
		state.Position.Add(state.DeltaPositionToStop(cfg.MaxLinearDecel)),
		state.Orientation+state.DeltaOrientationToStop(cfg.MaxAngularDecel),
	)
}

// TimeToStop returns the time in seconds until both linear and angular motion have come to rest.
func TimeToStop(state spatialmath.Kinematics, cfg Config) float64 {
	return math.Max(
		state.Velocity.Magnitude()/cfg.MaxLinearDecel,
		math.Abs(state.Rotation)/cfg.MaxAngularDecel,
	)
}
