package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/kinematics2d/config"
	"go.viam.com/kinematics2d/motionplan"
	"go.viam.com/kinematics2d/referenceframe"
	"go.viam.com/kinematics2d/spatialmath"
	"go.viam.com/kinematics2d/utils"
)

// loadConfig reads the config named by the global flag and assembles its frame system.
func (ka *kinematicsApp) loadConfig(c *cli.Context) (*config.Config, referenceframe.FrameSystem, error) {
	path := c.Path(generalFlagConfig)
	if path == "" {
		return nil, nil, errors.Errorf("a config file is required; pass --%s FILE", generalFlagConfig)
	}
	cfg, err := config.Read(c.Context, path, ka.logger)
	if err != nil {
		return nil, nil, err
	}
	config.UpdateFileConfigDebug(cfg.Debug)
	fs, err := cfg.FrameSystem()
	if err != nil {
		return nil, nil, err
	}
	return cfg, fs, nil
}

// startInWorld returns the configured start state expressed in the world frame.
func startInWorld(cfg *config.Config, fs referenceframe.FrameSystem) (spatialmath.Kinematics, error) {
	return fs.Transform(cfg.Start.Kinematics(), cfg.Start.FrameName(), referenceframe.World)
}

// expressIn re-expresses every node of a world frame trajectory in the named frame.
func expressIn(fs referenceframe.FrameSystem, traj motionplan.Trajectory, frame string) (motionplan.Trajectory, error) {
	if frame == referenceframe.World {
		return traj, nil
	}
	out := make(motionplan.Trajectory, 0, len(traj))
	for _, node := range traj {
		state, err := fs.Transform(node.State, referenceframe.World, frame)
		if err != nil {
			return nil, err
		}
		out = append(out, &motionplan.TrajNode{Time: node.Time, State: state})
	}
	return out, nil
}

// expressPoseIn re-expresses a world frame pose in the named frame.
func expressPoseIn(fs referenceframe.FrameSystem, pose spatialmath.Pose, frame string) (spatialmath.Pose, error) {
	state := spatialmath.NewKinematicsFromPose(pose, spatialmath.NewZeroVector(), 0)
	state, err := fs.Transform(state, referenceframe.World, frame)
	if err != nil {
		return spatialmath.Pose{}, err
	}
	return state.Pose(), nil
}

func (ka *kinematicsApp) simulateAction(c *cli.Context) error {
	cfg, fs, err := ka.loadConfig(c)
	if err != nil {
		return err
	}
	motion := cfg.Motion
	if c.IsSet(simulateFlagDuration) {
		motion.DurationSec = c.Float64(simulateFlagDuration)
	}
	if c.IsSet(simulateFlagDeltaTime) {
		motion.DeltaTimeSec = c.Float64(simulateFlagDeltaTime)
	}
	every := c.Int(simulateFlagEvery)
	if every < 1 {
		return errors.Errorf("--%s must be at least 1, got %d", simulateFlagEvery, every)
	}

	start, err := startInWorld(cfg, fs)
	if err != nil {
		return err
	}
	traj, err := motionplan.Simulate(c.Context, ka.logger.Sublogger("simulate"), start, motion)
	if err != nil {
		return err
	}
	observer := cfg.ObserverFrameName()
	traj, err = expressIn(fs, traj, observer)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Time (s)", "X", "Y", "Heading"})
	for i, node := range traj {
		if i%every != 0 && i != len(traj)-1 {
			continue
		}
		t.AppendRow(table.Row{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.3f", node.Time),
			fmt.Sprintf("%.3f", node.State.Position.X),
			fmt.Sprintf("%.3f", node.State.Position.Y),
			formatHeading(node.State.Orientation),
		})
	}
	printf(c.App.Writer, "%s", t.Render())

	bounds := traj.Bounds()
	printf(c.App.Writer, "frame: %s", observer)
	printf(c.App.Writer, "bounds: X:[%.3f, %.3f], Y:[%.3f, %.3f]", bounds.X.Lo, bounds.X.Hi, bounds.Y.Lo, bounds.Y.Hi)
	printf(c.App.Writer, "path length: %.3f", traj.Length())
	return nil
}

func (ka *kinematicsApp) stopAction(c *cli.Context) error {
	cfg, fs, err := ka.loadConfig(c)
	if err != nil {
		return err
	}
	start, err := startInWorld(cfg, fs)
	if err != nil {
		return err
	}

	stop := motionplan.StopPose(start, cfg.Motion)
	timeToStop := motionplan.TimeToStop(start, cfg.Motion)
	ka.logger.Debugw("computed stop", "start", start.String(), "stop", stop.String(), "time_to_stop", timeToStop)

	observer := cfg.ObserverFrameName()
	startPose, err := expressPoseIn(fs, start.Pose(), observer)
	if err != nil {
		return err
	}
	stopPose, err := expressPoseIn(fs, stop, observer)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "frame: %s", observer)
	printf(c.App.Writer, "start pose: %s", formatPose(startPose))
	printf(c.App.Writer, "stop pose: %s", formatPose(stopPose))
	printf(c.App.Writer, "stopping distance: %.3f", stop.Position.Sub(start.Position).Magnitude())
	printf(c.App.Writer, "heading change: %.2f°", utils.RadToDeg(stop.Orientation-start.Orientation))
	printf(c.App.Writer, "time to stop: %.3fs", timeToStop)
	return nil
}

func (ka *kinematicsApp) framesAction(c *cli.Context) error {
	cfg, fs, err := ka.loadConfig(c)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", cfg.Frames.String())

	if !c.IsSet(framesFlagFrom) && !c.IsSet(framesFlagTo) {
		return nil
	}
	from := cfg.Start.FrameName()
	if c.IsSet(framesFlagFrom) {
		from = c.String(framesFlagFrom)
	}
	to := referenceframe.World
	if c.IsSet(framesFlagTo) {
		to = c.String(framesFlagTo)
	}
	if from == to {
		infof(c.App.Writer, "--%s and --%s are both %q; the start state is unchanged", framesFlagFrom, framesFlagTo, from)
	}
	state, err := fs.Transform(cfg.Start.Kinematics(), from, to)
	if err != nil {
		return errors.Wrapf(err, "cannot transform start state from %q to %q", from, to)
	}
	printf(c.App.Writer, "start state in %q: %s", to, formatState(state))
	return nil
}

func (ka *kinematicsApp) schemaAction(c *cli.Context) error {
	out, err := config.SchemaJSON()
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", out)
	return nil
}
