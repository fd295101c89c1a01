package screw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a quaternion W + Xi + Yj + Zk. For rotations it holds the
// Rodrigues-Hamilton parameters λ0 = W and (λ1, λ2, λ3) = (X, Y, Z), where W
// is cos(θ/2) and the vector part is sin(θ/2) times the unit axis.
type Quaternion struct {
	W, X, Y, Z float64
}

// Quat returns the quaternion w + xi + yj + zk.
func Quat(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// AxisAngle returns the unit quaternion rotating anticlockwise about axis by
// th radians. The axis is normalized first; see [UnitAxis].
func AxisAngle(axis Vec3, th float64) (Quaternion, error) {
	a, err := UnitAxis(axis)
	if err != nil {
		return Quaternion{}, err
	}
	sin, cos := math.Sincos(th / 2)
	q := Quaternion{
		W: cos,
		X: a.X * sin,
		Y: a.Y * sin,
		Z: a.Z * sin,
	}
	// Analytically unit already; this removes rounding drift.
	return q.Normalize()
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g%+gi%+gj%+gk)", q.W, q.X, q.Y, q.Z)
}

// Vector returns the vector part of q.
func (q Quaternion) Vector() Vec3 {
	return Vec(q.X, q.Y, q.Z)
}

// Norm returns the Euclidean 4-norm of q.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number())
}

// Normalize returns q divided by its norm. It returns an error wrapping
// [ErrDegenerateQuaternion] if the norm is zero or not a number.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Quaternion{}, fmt.Errorf("%w: %s has norm %g", ErrDegenerateQuaternion, q, n)
	}
	return Quaternion{
		W: q.W / n,
		X: q.X / n,
		Y: q.Y / n,
		Z: q.Z / n,
	}, nil
}

// Mul returns the Hamilton product q·o. Applying the result rotates by o
// first, then by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return QuaternionFromNumber(quat.Mul(q.Number(), o.Number()))
}

// Conj returns the conjugate of q. For a unit quaternion this is the inverse
// rotation.
func (q Quaternion) Conj() Quaternion {
	return QuaternionFromNumber(quat.Conj(q.Number()))
}

// Matrix returns the rotation matrix of q.
//
// q must be a unit quaternion, as returned by [Quaternion.Normalize] or
// [AxisAngle]. For other quaternions the result is not orthogonal.
func (q Quaternion) Matrix() Mat3 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return Mat3{
		1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y),
		2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x),
		2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y),
	}
}

// Rotate returns v rotated by the unit quaternion q.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	return v.Transform(q.Matrix())
}

// Number converts q to a gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// QuaternionFromNumber converts a gonum quaternion.
func QuaternionFromNumber(n quat.Number) Quaternion {
	return Quaternion{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}
