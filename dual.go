package screw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/dual"
)

// Dual is a dual number a + bε with ε² = 0. In screw motion the real part
// carries the rotation angle and the dual part the axial displacement.
//
// All operations keep terms up to first order in ε. Products of two dual parts
// are never formed, which is what makes ε nilpotent.
type Dual struct {
	Real float64
	Dual float64
}

// D returns the dual number a + bε.
func D(a, b float64) Dual {
	return Dual{
		Real: a,
		Dual: b,
	}
}

func (d Dual) String() string {
	return fmt.Sprintf("(%g%+gε)", d.Real, d.Dual)
}

// Add returns d + o.
func (d Dual) Add(o Dual) Dual {
	return Dual{
		Real: d.Real + o.Real,
		Dual: d.Dual + o.Dual,
	}
}

// Sub returns d - o.
func (d Dual) Sub(o Dual) Dual {
	return Dual{
		Real: d.Real - o.Real,
		Dual: d.Dual - o.Dual,
	}
}

// Mul returns the product d·o. The dual part is the sum of the cross terms;
// the ε² term vanishes.
func (d Dual) Mul(o Dual) Dual {
	return Dual{
		Real: d.Real * o.Real,
		Dual: d.Real*o.Dual + d.Dual*o.Real,
	}
}

// Scale returns d scaled by the real number f.
func (d Dual) Scale(f float64) Dual {
	return Dual{
		Real: d.Real * f,
		Dual: d.Dual * f,
	}
}

// Sin returns sin(d) = sin(a) + b·cos(a)ε, the first-order expansion of the
// sine around the real part.
func (d Dual) Sin() Dual {
	sin, cos := math.Sincos(d.Real)
	return Dual{
		Real: sin,
		Dual: d.Dual * cos,
	}
}

// Cos returns cos(d) = cos(a) - b·sin(a)ε.
func (d Dual) Cos() Dual {
	sin, cos := math.Sincos(d.Real)
	return Dual{
		Real: cos,
		Dual: -d.Dual * sin,
	}
}

// Sincos returns Sin(d), Cos(d).
func (d Dual) Sincos() (sin, cos Dual) {
	s, c := math.Sincos(d.Real)
	return Dual{Real: s, Dual: d.Dual * c}, Dual{Real: c, Dual: -d.Dual * s}
}

// Number converts d to a gonum dual number.
func (d Dual) Number() dual.Number {
	return dual.Number{Real: d.Real, Emag: d.Dual}
}

// DualFromNumber converts a gonum dual number.
func DualFromNumber(n dual.Number) Dual {
	return Dual{Real: n.Real, Dual: n.Emag}
}
