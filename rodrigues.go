package screw

import (
	"fmt"
	"math"
)

// checkAngle reports an error wrapping [ErrInvalidAngle] unless both parts of
// angle are finite.
func checkAngle(angle Dual) error {
	if math.IsNaN(angle.Real) || math.IsInf(angle.Real, 0) ||
		math.IsNaN(angle.Dual) || math.IsInf(angle.Dual, 0) {
		return fmt.Errorf("%w: %s is not finite", ErrInvalidAngle, angle)
	}
	return nil
}

// RotateDual applies a screw motion to v using the dual-number form of
// Rodrigues' formula. The real part of angle is the rotation about axis in
// radians, the dual part the translation along it:
//
//	v' = v·cos(θ) + (a × v)·sin(θ) + a·(a·v)·(1 - cos(θ)) + d·a
//
// Only the real part of the angle enters the trigonometric terms. The axis is
// normalized on a copy; a degenerate axis yields an error wrapping
// [ErrInvalidAxis] and a non-finite angle one wrapping [ErrInvalidAngle].
func RotateDual(v, axis Vec3, angle Dual) (Vec3, error) {
	if err := checkAngle(angle); err != nil {
		return Vec3{}, err
	}
	a, err := UnitAxis(axis)
	if err != nil {
		return Vec3{}, err
	}
	sin, cos := angle.Sincos()
	rot := v.Mul(cos.Real).
		Add(a.Cross(v).Mul(sin.Real)).
		Add(a.Mul(a.Dot(v) * (1 - cos.Real)))
	return rot.Add(a.Mul(angle.Dual)), nil
}

// RotateHamilton applies a screw motion to v using Rodrigues-Hamilton
// parameters: v is rotated by the unit quaternion for th radians about axis,
// then displaced by displacement along the normalized axis.
//
// For the same inputs the result matches [RotateDual] with angle
// D(th, displacement) to within rounding.
func RotateHamilton(v, axis Vec3, th, displacement float64) (Vec3, error) {
	if err := checkAngle(D(th, displacement)); err != nil {
		return Vec3{}, err
	}
	a, err := UnitAxis(axis)
	if err != nil {
		return Vec3{}, err
	}
	q, err := AxisAngle(a, th)
	if err != nil {
		return Vec3{}, err
	}
	return q.Rotate(v).Add(a.Mul(displacement)), nil
}

// RotateScrewDual rotates v about axis by theta radians and translates it by
// thetaDual along the axis, using the dual-number pipeline.
func RotateScrewDual(v, axis Vec3, theta, thetaDual float64) (Vec3, error) {
	return RotateDual(v, axis, D(theta, thetaDual))
}

// RotateScrewQuaternion rotates v about axis by theta radians and translates it
// by displacement along the axis, using the quaternion pipeline.
func RotateScrewQuaternion(v, axis Vec3, theta, displacement float64) (Vec3, error) {
	return RotateHamilton(v, axis, theta, displacement)
}
