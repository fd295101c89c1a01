package screw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Screw is a screw motion about an axis through the origin: a rotation by
// Angle.Real radians about Axis combined with a translation by Angle.Dual
// along it.
//
// Use [NewScrew] to get a screw with a unit axis. A zero Screw has no valid
// axis and all of its methods that apply it return errors.
type Screw struct {
	Axis  Vec3
	Angle Dual
}

// NewScrew returns the screw rotating by th radians about axis and translating
// by d along it.
func NewScrew(axis Vec3, th, d float64) (Screw, error) {
	a, err := UnitAxis(axis)
	if err != nil {
		return Screw{}, err
	}
	return Screw{Axis: a, Angle: D(th, d)}, nil
}

func (s Screw) String() string {
	return fmt.Sprintf("screw(axis=%s, angle=%s)", s.Axis, s.Angle)
}

// Pitch returns the translation per radian of rotation. A screw without
// rotation has infinite pitch.
func (s Screw) Pitch() float64 {
	if s.Angle.Real == 0 {
		return math.Inf(1)
	}
	return s.Angle.Dual / s.Angle.Real
}

// Inverse returns the screw undoing s.
func (s Screw) Inverse() Screw {
	return Screw{Axis: s.Axis, Angle: s.Angle.Scale(-1)}
}

// Apply returns v moved by s, computed with [RotateDual].
func (s Screw) Apply(v Vec3) (Vec3, error) {
	return RotateDual(v, s.Axis, s.Angle)
}

// ApplyQuaternion returns v moved by s, computed with [RotateHamilton].
func (s Screw) ApplyQuaternion(v Vec3) (Vec3, error) {
	return RotateHamilton(v, s.Axis, s.Angle.Real, s.Angle.Dual)
}

// DualQuaternion returns the unit dual quaternion r + ½·t·r·ε of s, where r is
// the rotation quaternion and t the pure quaternion of the translation.
func (s Screw) DualQuaternion() (dualquat.Number, error) {
	if err := checkAngle(s.Angle); err != nil {
		return dualquat.Number{}, err
	}
	a, err := UnitAxis(s.Axis)
	if err != nil {
		return dualquat.Number{}, err
	}
	r, err := AxisAngle(a, s.Angle.Real)
	if err != nil {
		return dualquat.Number{}, err
	}
	t := a.Mul(s.Angle.Dual / 2)
	half := quat.Number{Imag: t.X, Jmag: t.Y, Kmag: t.Z}
	return dualquat.Number{
		Real: r.Number(),
		Dual: quat.Mul(half, r.Number()),
	}, nil
}

// ApplyDualQuaternion returns v moved by s, computed as σ·(1 + vε)·σ̄ with σ
// the dual quaternion of s and σ̄ its full conjugate.
func (s Screw) ApplyDualQuaternion(v Vec3) (Vec3, error) {
	sigma, err := s.DualQuaternion()
	if err != nil {
		return Vec3{}, err
	}
	p := dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z},
	}
	out := dualquat.Mul(dualquat.Mul(sigma, p), dualquat.Conj(sigma)).Dual
	return Vec(out.Imag, out.Jmag, out.Kmag), nil
}
