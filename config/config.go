// Package config defines the structures to configure a kinematics2d session and the ability to read
// them from a file.
package config

import (
	"github.com/pkg/errors"

	"go.viam.com/kinematics2d/motionplan"
	"go.viam.com/kinematics2d/referenceframe"
	"go.viam.com/kinematics2d/spatialmath"
	"go.viam.com/kinematics2d/utils"
)

// frameSystemName is the name given to frame systems assembled from a config.
const frameSystemName = "config"

// A Config describes the frames of a scene, the state of the body being studied and how to roll it out.
type Config struct {
	ConfigFilePath string               `json:"-"`
	Debug          bool                 `json:"debug,omitempty"`
	Frames         referenceframe.Parts `json:"frames,omitempty"`
	Start          StateConfig          `json:"start"`
	ObserverFrame  string               `json:"observer_frame,omitempty"`
	Motion         motionplan.Config    `json:"motion"`
}

// Ensure ensures all parts of the config are valid.
func (c *Config) Ensure() error {
	fs, err := c.FrameSystem()
	if err != nil {
		return err
	}
	if err := c.Start.Validate("start", fs); err != nil {
		return err
	}
	if c.ObserverFrame != "" {
		if _, err := fs.Frame(c.ObserverFrame); err != nil {
			return utils.NewConfigValidationError("observer_frame", err)
		}
	}
	return c.Motion.Validate("motion")
}

// FrameSystem assembles the configured frames into a frame system.
func (c *Config) FrameSystem() (referenceframe.FrameSystem, error) {
	return referenceframe.NewFrameSystemFromConfig(frameSystemName, c.Frames)
}

// ObserverFrameName returns the frame results are reported in, defaulting to the world.
func (c *Config) ObserverFrameName() string {
	if c.ObserverFrame == "" {
		return referenceframe.World
	}
	return c.ObserverFrame
}

// StateConfig is the starting state of the body, expressed in Frame. Angles are given in degrees.
type StateConfig struct {
	Frame              string                     `json:"frame,omitempty"`
	Position           referenceframe.Translation `json:"position"`
	OrientationDegs    float64                    `json:"orientation_degs"`
	Velocity           referenceframe.Translation `json:"velocity"`
	RotationDegsPerSec float64                    `json:"rotation_degs_per_sec"`
}

// Validate ensures the frame the state is expressed in exists in fs.
func (sc *StateConfig) Validate(path string, fs referenceframe.FrameSystem) error {
	if _, err := fs.Frame(sc.FrameName()); err != nil {
		return utils.NewConfigValidationError(path, errors.Wrap(err, "unknown frame"))
	}
	return nil
}

// FrameName returns the frame the state is expressed in, defaulting to the world.
func (sc *StateConfig) FrameName() string {
	if sc.Frame == "" {
		return referenceframe.World
	}
	return sc.Frame
}

// Kinematics returns the configured state in radians.
func (sc *StateConfig) Kinematics() spatialmath.Kinematics {
	return spatialmath.NewKinematics(
		sc.Position.Vector(),
		utils.DegToRad(sc.OrientationDegs),
		sc.Velocity.Vector(),
		utils.DegToRad(sc.RotationDegsPerSec),
	)
}
