// Package referenceframe defines the api and does the math of translating kinematic states between
// planar reference frames. Useful for if you have a sensor mounted on a moving base, and need to
// express something the sensor saw in the world frame, or the world as seen from the base.
package referenceframe

import (
	"fmt"

	"go.viam.com/kinematics2d/spatialmath"
)

// Frame is a named reference frame. Its state is the pose and motion of the frame's origin,
// expressed in its parent frame.
type Frame struct {
	name  string
	state spatialmath.Kinematics
}

// NewFrame returns a frame with the given state relative to its parent.
func NewFrame(name string, state spatialmath.Kinematics) *Frame {
	return &Frame{name: name, state: state}
}

// NewZeroFrame returns a frame coincident with, and stationary relative to, its parent.
func NewZeroFrame(name string) *Frame {
	return NewFrame(name, spatialmath.NewZeroKinematics())
}

// Name returns the name of the frame.
func (f *Frame) Name() string {
	return f.name
}

// State returns the frame's state relative to its parent.
func (f *Frame) State() spatialmath.Kinematics {
	return f.state
}

func (f *Frame) String() string {
	return fmt.Sprintf("%s: %v", f.name, f.state)
}
