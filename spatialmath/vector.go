// Package spatialmath defines planar vectors, poses and kinematic states, and the operations that
// compose them between frames and advance them in time.
package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats/scalar"

	"go.viam.com/kinematics2d/utils"
)

// angleFromPrecision is the number of decimal digits the cosine is rounded to in AngleFrom, which
// keeps values that drift just past +/-1 inside the domain of acos.
const angleFromPrecision = 4

// Vector is a displacement or velocity in the plane. Vectors are values: every operation returns a
// new Vector and never modifies its receiver.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector returns the vector (x, y).
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// CopyVector returns an independent copy of src.
func CopyVector(src Vector) Vector {
	return Vector{X: src.X, Y: src.Y}
}

// NewZeroVector returns the vector (0, 0).
func NewZeroVector() Vector {
	return Vector{}
}

// NewVectorFromPoint converts an r2.Point into a Vector.
func NewVectorFromPoint(p r2.Point) Vector {
	return Vector{X: p.X, Y: p.Y}
}

// Point converts the vector into an r2.Point.
func (v Vector) Point() r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// Add returns v+other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

// Sub returns v-other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

// Mul scales both components of v by s.
func (v Vector) Mul(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Div divides both components of v by s. A zero s is not guarded against and yields infinite or
// NaN components.
func (v Vector) Div(s float64) Vector {
	return Vector{v.X / s, v.Y / s}
}

// Equal reports whether both components of v and other are exactly equal.
func (v Vector) Equal(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

// NotEqual reports whether any component of v differs from other.
func (v Vector) NotEqual(other Vector) bool {
	return v.X != other.X || v.Y != other.Y
}

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Abs is an alias of Magnitude.
func (v Vector) Abs() float64 {
	return v.Magnitude()
}

// Angle returns the direction of v in radians, as atan2(y, x).
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleFrom returns the unsigned angle in [0, pi] between v and other. If either vector has zero
// magnitude the angle is 0.
func (v Vector) AngleFrom(other Vector) float64 {
	if v.Abs() == 0.0 || other.Abs() == 0.0 {
		return 0.0
	}
	cos := other.Dot(v) / (other.Abs() * v.Abs())
	return acosRounded(cos)
}

func acosRounded(cos float64) float64 {
	return math.Acos(utils.RoundDecimal(cos, angleFromPrecision))
}

// Dot returns the dot product of v and other.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Rotated returns v rotated counter-clockwise by angle radians.
func (v Vector) Rotated(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// Normalized returns the unit vector pointing in the direction of v, or the zero vector if v has
// zero magnitude.
func (v Vector) Normalized() Vector {
	magnitude := v.Magnitude()
	if magnitude == 0.0 {
		return NewZeroVector()
	}
	return v.Div(magnitude)
}

// ProjectedTo returns the projection of v onto the direction of other, or the zero vector if other
// has zero magnitude.
func (v Vector) ProjectedTo(other Vector) Vector {
	if other.Abs() == 0.0 {
		return NewZeroVector()
	}
	return other.Normalized().Mul(v.Dot(other)).Div(other.Abs())
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(x: %v, y: %v)", v.X, v.Y)
}

// VectorAlmostEqual reports whether each component of a and b are within tol of each other.
func VectorAlmostEqual(a, b Vector, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) && scalar.EqualWithinAbs(a.Y, b.Y, tol)
}
