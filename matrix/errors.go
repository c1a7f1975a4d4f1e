package matrix

import "errors"

var (
	// ErrInvalidDimension rejects construction with non-positive row or
	// column counts, and operations on nil matrices.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrTooLarge rejects construction whose element count overflows int.
	ErrTooLarge = errors.New("matrix: element count overflow")

	// ErrShapeMismatch rejects products whose inner dimensions disagree.
	ErrShapeMismatch = errors.New("matrix: operand shapes do not match")

	// ErrNilMulAdd rejects MultiplyOps without an accumulation step.
	ErrNilMulAdd = errors.New("matrix: nil muladd function")
)
