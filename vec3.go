package screw

import (
	"fmt"
	"math"
)

// Vec3 is a point or direction in 3D Euclidean space.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the vector ⟨x, y, z⟩.
func Vec(x, y, z float64) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

// Splat returns the vector's x, y and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float64 {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0. Use [UnitAxis] when the
// vector comes from a caller and may be degenerate.
func (v Vec3) Normalize() Vec3 {
	return v.Div(v.Hypot())
}

// Project returns the component of v along the unit vector a.
func (v Vec3) Project(a Vec3) Vec3 {
	return a.Mul(v.Dot(a))
}

// Reject returns the component of v orthogonal to the unit vector a.
func (v Vec3) Reject(a Vec3) Vec3 {
	return v.Sub(v.Project(a))
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// IsInf reports whether at least one of x, y and z is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec3) Div(f float64) Vec3 {
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with the signs of x, y and z flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Transform returns m·v.
func (v Vec3) Transform(m Mat3) Vec3 {
	return Vec3{
		X: m.N0*v.X + m.N3*v.Y + m.N6*v.Z,
		Y: m.N1*v.X + m.N4*v.Y + m.N7*v.Z,
		Z: m.N2*v.X + m.N5*v.Y + m.N8*v.Z,
	}
}

// AxisEpsilon is the smallest norm a rotation axis may have.
const AxisEpsilon = 1e-12

// UnitAxis returns axis scaled to unit length. It returns an error wrapping
// [ErrInvalidAxis] if the axis is shorter than [AxisEpsilon] or has a NaN or
// infinite component.
func UnitAxis(axis Vec3) (Vec3, error) {
	if axis.IsNaN() || axis.IsInf() {
		return Vec3{}, fmt.Errorf("%w: %s is not finite", ErrInvalidAxis, axis)
	}
	n := axis.Hypot()
	if !(n >= AxisEpsilon) {
		return Vec3{}, fmt.Errorf("%w: %s has norm %g", ErrInvalidAxis, axis, n)
	}
	return axis.Div(n), nil
}
