// Package screw computes screw motions: a rotation about an axis through the
// origin combined with a translation along that same axis.
//
// # Representations
//
// The package provides two equivalent ways of moving a vector along a screw,
// plus a third one for cross-checking:
//
//   - Dual-number Rodrigues rotation (see [RotateDual] and [RotateScrewDual]).
//     The rotation angle and the axial displacement are packed into a single
//     [Dual] number θ + dε, and Rodrigues' rotation formula is evaluated on its
//     real part before the dual part is added along the axis.
//   - Rodrigues-Hamilton parameters (see [RotateHamilton] and
//     [RotateScrewQuaternion]). A unit [Quaternion] is built from the half
//     angle and the axis, the vector is rotated through its [Mat3], and the
//     displacement is added along the axis.
//   - Unit dual quaternions (see [Screw.ApplyDualQuaternion]), built on gonum's
//     dualquat package.
//
// For the same axis, angle and displacement all of them agree to within
// floating-point rounding.
//
// # Dual numbers
//
// A [Dual] is a + bε with ε² = 0. The algebra is first order:
// [Dual.Mul] never forms the product of two dual parts, and [Dual.Sin] and
// [Dual.Cos] are the first-order Taylor expansions around the real part.
//
// # Axes and errors
//
// Every function taking an axis normalizes its own copy of it. Axes shorter
// than [AxisEpsilon], or with NaN or infinite components, are rejected with an
// error wrapping [ErrInvalidAxis], and a NaN or infinite angle or displacement
// with one wrapping [ErrInvalidAngle]. Normalizing a zero quaternion fails with
// [ErrDegenerateQuaternion]. No function returns a partial result or lets NaN
// through from a division by a zero norm.
//
// All functions are pure and safe for concurrent use.
//
// # Literature
//
//   - [Rodrigues' rotation formula]
//   - [Dual number]
//   - [Screw theory]
//
// [Rodrigues' rotation formula]: https://en.wikipedia.org/wiki/Rodrigues%27_rotation_formula
// [Dual number]: https://en.wikipedia.org/wiki/Dual_number
// [Screw theory]: https://en.wikipedia.org/wiki/Screw_theory
package screw
