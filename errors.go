package screw

import "errors"

var (
	// ErrInvalidAxis is returned when a rotation axis has zero, near-zero or
	// non-finite length and cannot be normalized.
	ErrInvalidAxis = errors.New("invalid rotation axis")

	// ErrDegenerateQuaternion is returned when a quaternion with zero 4-norm
	// is normalized.
	ErrDegenerateQuaternion = errors.New("degenerate quaternion")

	// ErrInvalidAngle is returned when the rotation angle or the displacement
	// of a screw is NaN or infinite.
	ErrInvalidAngle = errors.New("invalid screw angle")
)
