package screw

import (
	"math"
)

// Mat3 describes a linear transform of 3D space via coefficients.
//
// The coefficients are stored in column-major order, so (N0, N1, N2) is the
// image of the x unit vector:
//
//	| N0 N3 N6 |
//	| N1 N4 N7 |
//	| N2 N5 N8 |
//
// As with matrices in general, (A * B) * v == A * (B * v).
type Mat3 struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8 float64
}

// Identity3 is the identity transform.
var Identity3 = Mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// NewMat3 creates a new matrix from an array of column-major coefficients.
// Alternatively, you can initialize the fields of [Mat3] manually.
func NewMat3(n [9]float64) Mat3 {
	return Mat3{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8]}
}

// Coefficients returns the column-major coefficients of the matrix.
func (m Mat3) Coefficients() [9]float64 {
	return [9]float64{m.N0, m.N1, m.N2, m.N3, m.N4, m.N5, m.N6, m.N7, m.N8}
}

// Cols returns the three columns of m.
func (m Mat3) Cols() (Vec3, Vec3, Vec3) {
	return Vec(m.N0, m.N1, m.N2), Vec(m.N3, m.N4, m.N5), Vec(m.N6, m.N7, m.N8)
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	c0, c1, c2 := o.Cols()
	c0 = c0.Transform(m)
	c1 = c1.Transform(m)
	c2 = c2.Transform(m)
	return Mat3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Transpose returns the transpose of m. For a rotation matrix this is its
// inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m.N0, m.N3, m.N6,
		m.N1, m.N4, m.N7,
		m.N2, m.N5, m.N8,
	}
}

// Determinant returns the determinant of m. It is 1 for proper rotations.
func (m Mat3) Determinant() float64 {
	c0, c1, c2 := m.Cols()
	return c0.Dot(c1.Cross(c2))
}

// RotationMatrix returns the matrix rotating anticlockwise about axis by th
// radians, using Rodrigues' formula
//
//	R = I + sin(θ)·K + (1 - cos(θ))·K²
//
// where K is the cross product matrix of the normalized axis.
func RotationMatrix(axis Vec3, th float64) (Mat3, error) {
	a, err := UnitAxis(axis)
	if err != nil {
		return Mat3{}, err
	}
	sin, cos := math.Sincos(th)
	t := 1 - cos
	x, y, z := a.Splat()
	return Mat3{
		cos + t*x*x, t*x*y + sin*z, t*x*z - sin*y,
		t*x*y - sin*z, cos + t*y*y, t*y*z + sin*x,
		t*x*z + sin*y, t*y*z - sin*x, cos + t*z*z,
	}, nil
}
