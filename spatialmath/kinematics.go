package spatialmath

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"go.viam.com/kinematics2d/utils"
)

// Kinematics is the instantaneous state of a rigid body moving in the plane: its pose plus linear
// velocity and angular rate. Orientation is in radians and Rotation in radians per second.
//
// A Kinematics is a value. Assigning or passing it copies every field, so two states never share
// storage.
type Kinematics struct {
	Position    Vector  `json:"position"`
	Orientation float64 `json:"orientation"`
	Velocity    Vector  `json:"velocity"`
	Rotation    float64 `json:"rotation"`
}

// NewKinematics returns a state with the given pose and velocities.
func NewKinematics(position Vector, orientation float64, velocity Vector, rotation float64) Kinematics {
	return Kinematics{
		Position:    CopyVector(position),
		Orientation: orientation,
		Velocity:    CopyVector(velocity),
		Rotation:    rotation,
	}
}

// NewKinematicsFromPose returns a state located at pose with the given velocities.
func NewKinematicsFromPose(pose Pose, velocity Vector, rotation float64) Kinematics {
	return NewKinematics(pose.Position, pose.Orientation, velocity, rotation)
}

// CopyKinematics returns an independent copy of src.
func CopyKinematics(src Kinematics) Kinematics {
	return NewKinematics(CopyVector(src.Position), src.Orientation, CopyVector(src.Velocity), src.Rotation)
}

// NewZeroKinematics returns a stationary state at the origin.
func NewZeroKinematics() Kinematics {
	return NewKinematicsFromPose(NewZeroPose(), NewZeroVector(), 0.0)
}

// Pose returns the position and orientation of k.
func (k Kinematics) Pose() Pose {
	return NewPose(k.Position, k.Orientation)
}

// Add composes two states. other is interpreted as being expressed in the local frame of k, and the
// result is other expressed in the frame k itself is relative to.
func (k Kinematics) Add(other Kinematics) Kinematics {
	return NewKinematics(
		k.Position.Add(other.Position.Rotated(k.Orientation)),
		k.Orientation+other.Orientation,
		k.Velocity.Add(other.Velocity.Rotated(k.Orientation)),
		k.Rotation+other.Rotation,
	)
}

// Sub expresses k in the local frame of other. It is the inverse of Add: for a fixed other,
// k.Add(other).Sub(other) and k.Sub(other).Add(other) both equal k up to rounding.
func (k Kinematics) Sub(other Kinematics) Kinematics {
	return NewKinematics(
		k.Position.Sub(other.Position).Rotated(-other.Orientation),
		k.Orientation-other.Orientation,
		k.Velocity.Sub(other.Velocity).Rotated(-other.Orientation),
		k.Rotation-other.Rotation,
	)
}

// Updated advances k by deltaTime seconds with a single forward Euler step, holding velocity and
// rotation constant. The position step is rotated by the orientation change over the step rather
// than by the starting heading.
func (k Kinematics) Updated(deltaTime float64) Kinematics {
	deltaOrientation := k.Rotation * deltaTime
	newOrientation := k.Orientation + deltaOrientation
	deltaPosition := k.Velocity.Mul(deltaTime)
	newPosition := k.Position.Add(deltaPosition.Rotated(deltaOrientation))
	return NewKinematics(newPosition, newOrientation, k.Velocity, k.Rotation)
}

// DeltaPositionToStop returns the displacement travelled while decelerating from the current
// velocity to rest at a constant maxLinearDecelMagnitude.
//
// maxLinearDecelMagnitude must be strictly positive. Zero yields infinite or NaN components and a
// negative value points the result backwards; neither is checked.
func (k Kinematics) DeltaPositionToStop(maxLinearDecelMagnitude float64) Vector {
	return k.Velocity.Normalized().
		Mul(utils.Square(k.Velocity.Abs())).
		Div(2.0 * maxLinearDecelMagnitude)
}

// DeltaOrientationToStop returns the heading change accumulated while decelerating from the current
// rotation to rest at a constant maxAngularDecelMagnitude. The result carries the sign of the
// rotation; a zero rotation yields positive zero.
//
// maxAngularDecelMagnitude must be strictly positive; it is not checked.
func (k Kinematics) DeltaOrientationToStop(maxAngularDecelMagnitude float64) float64 {
	value := utils.Square(k.Rotation) / (2.0 * maxAngularDecelMagnitude)
	if k.Rotation < 0.0 {
		return -value
	}
	return value
}

func (k Kinematics) String() string {
	return fmt.Sprintf("Kinematics(pos: %v, ort: %v, vel: %v, rot: %v)", k.Position, k.Orientation, k.Velocity, k.Rotation)
}

// KinematicsAlmostEqual reports whether every field of a and b is within tol.
func KinematicsAlmostEqual(a, b Kinematics, tol float64) bool {
	return VectorAlmostEqual(a.Position, b.Position, tol) &&
		scalar.EqualWithinAbs(a.Orientation, b.Orientation, tol) &&
		VectorAlmostEqual(a.Velocity, b.Velocity, tol) &&
		scalar.EqualWithinAbs(a.Rotation, b.Rotation, tol)
}
