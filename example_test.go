package screw_test

import (
	"errors"
	"fmt"
	"math"

	"honnef.co/go/screw"
)

// tidy rounds away floating-point noise so that outputs are stable.
func tidy(v screw.Vec3) string {
	r := func(x float64) float64 {
		if math.Abs(x) < 1e-9 {
			return 0
		}
		return x
	}
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", r(v.X), r(v.Y), r(v.Z))
}

func ExampleRotateScrewDual() {
	// Quarter turn about z, then one unit up the axis.
	v, err := screw.RotateScrewDual(screw.Vec(1, 0, 0), screw.Vec(0, 0, 1), math.Pi/2, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(tidy(v))

	// Output:
	// (0.000, 1.000, 1.000)
}

func ExampleRotateScrewQuaternion() {
	v, err := screw.RotateScrewQuaternion(screw.Vec(1, 0, 0), screw.Vec(0, 0, 1), math.Pi/2, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(tidy(v))

	// Output:
	// (0.000, 1.000, 1.000)
}

func ExampleRotateScrewDual_invalidAxis() {
	_, err := screw.RotateScrewDual(screw.Vec(1, 0, 0), screw.Vec(0, 0, 0), math.Pi/2, 1)
	fmt.Println(errors.Is(err, screw.ErrInvalidAxis))
	fmt.Println(err)

	// Output:
	// true
	// invalid rotation axis: ⟨0, 0, 0⟩ has norm 0
}

func ExampleDual_Mul() {
	a := screw.D(2, 3)
	fmt.Println(a.Mul(a))
	fmt.Println(screw.D(0, 1).Mul(screw.D(0, 1)))

	// Output:
	// (4+12ε)
	// (0+0ε)
}

func ExampleScrew() {
	s, err := screw.NewScrew(screw.Vec(1, 1, 1), 2*math.Pi/3, 0.5)
	if err != nil {
		panic(err)
	}
	// A third of a turn about the diagonal cycles the coordinate axes.
	for _, v := range []screw.Vec3{screw.Vec(1, 0, 0), screw.Vec(0, 1, 0)} {
		w, err := s.ApplyDualQuaternion(v)
		if err != nil {
			panic(err)
		}
		fmt.Println(tidy(w.Sub(s.Axis.Mul(s.Angle.Dual))))
	}

	// Output:
	// (0.000, 1.000, 0.000)
	// (0.000, 0.000, 1.000)
}
