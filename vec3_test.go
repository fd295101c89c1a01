package screw

import (
	"errors"
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	v := Vec(1, 2, 3)
	o := Vec(-4, 0.5, 2)

	diff(t, Vec(-3, 2.5, 5), v.Add(o))
	diff(t, Vec(5, 1.5, 1), v.Sub(o))
	diff(t, Vec(2, 4, 6), v.Mul(2))
	diff(t, Vec(0.5, 1, 1.5), v.Div(2))
	diff(t, Vec(-1, -2, -3), v.Negate())
	diff(t, 3.0, v.Dot(o))
	diff(t, Vec(-2.5, 2, 1), Vec(1, 0, 0).Lerp(Vec(-6, 4, 2), 0.5))
}

func TestVec3Cross(t *testing.T) {
	x, y, z := Vec(1, 0, 0), Vec(0, 1, 0), Vec(0, 0, 1)
	diff(t, z, x.Cross(y))
	diff(t, x, y.Cross(z))
	diff(t, y, z.Cross(x))
	diff(t, z.Negate(), y.Cross(x))

	v := Vec(1, 2, 3)
	o := Vec(-4, 0.5, 2)
	c := v.Cross(o)
	diff(t, 0.0, c.Dot(v), approx)
	diff(t, 0.0, c.Dot(o), approx)
}

func TestVec3Hypot(t *testing.T) {
	diff(t, 7.0, Vec(2, 3, 6).Hypot(), approx)
	if h := Vec(1e200, 1e200, 0).Hypot(); math.IsInf(h, 0) {
		t.Errorf("magnitude overflowed: %v", h)
	}
	diff(t, 49.0, Vec(2, 3, 6).Hypot2())
}

func TestVec3ProjectReject(t *testing.T) {
	a := Vec(0, 0, 1)
	v := Vec(1, 2, 3)
	diff(t, Vec(0, 0, 3), v.Project(a))
	diff(t, Vec(1, 2, 0), v.Reject(a))
	diff(t, v, v.Project(a).Add(v.Reject(a)))
}

func TestUnitAxis(t *testing.T) {
	a, err := UnitAxis(Vec(0, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec(0, 0.6, 0.8), a, approx)

	for _, axis := range []Vec3{
		{},
		Vec(1e-13, 0, 0),
		Vec(math.NaN(), 0, 1),
		Vec(math.Inf(1), 0, 0),
	} {
		_, err := UnitAxis(axis)
		if !errors.Is(err, ErrInvalidAxis) {
			t.Errorf("UnitAxis(%s): got error %v, want ErrInvalidAxis", axis, err)
		}
	}
}

func TestUnitAxisCopies(t *testing.T) {
	axis := Vec(0, 0, 5)
	if _, err := UnitAxis(axis); err != nil {
		t.Fatal(err)
	}
	diff(t, Vec(0, 0, 5), axis)
}
