package matrix

import "fmt"

// defaultBlockSize is the tile edge used by the Multiply facade and by the
// blocked variants when the caller passes a non-positive block.
const defaultBlockSize = 64

// MulAddFunc folds one product term into an accumulator, replacing the
// built-in acc + a*b step of the standard multiplication.
type MulAddFunc[T Scalar] func(acc, a, b T) T

// Multiply computes the matrix product of a and b. Operands that fit
// within a single default-size tile take the naive triple loop; anything
// larger goes through the cache-blocked path.
func Multiply[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrInvalidDimension)
	}
	if a.rows > defaultBlockSize || a.cols > defaultBlockSize || b.cols > defaultBlockSize {
		return MultiplyBlocked(a, b, defaultBlockSize)
	}
	return MultiplyNaive(a, b)
}

// MultiplyNaive computes the product with the straightforward triple loop,
// ordered so the inner loop walks both operand rows sequentially.
func MultiplyNaive[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	out, err := mulTarget(a, b)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		arow := a.Row(i)
		orow := out.Row(i)
		for k := 0; k < a.cols; k++ {
			aik := arow[k]
			brow := b.Row(k)
			for j := 0; j < b.cols; j++ {
				orow[j] += aik * brow[j]
			}
		}
	}
	return out, nil
}

// MultiplyBlocked computes the product tile by tile, block elements on a
// side, keeping operand tiles cache-resident for large matrices. A
// non-positive block falls back to the default block size.
func MultiplyBlocked[T Scalar](a, b *Matrix[T], block int) (*Matrix[T], error) {
	if block <= 0 {
		block = defaultBlockSize
	}
	out, err := mulTarget(a, b)
	if err != nil {
		return nil, err
	}
	for ii := 0; ii < a.rows; ii += block {
		imax := min(ii+block, a.rows)
		for kk := 0; kk < a.cols; kk += block {
			kmax := min(kk+block, a.cols)
			for jj := 0; jj < b.cols; jj += block {
				jmax := min(jj+block, b.cols)
				for i := ii; i < imax; i++ {
					arow := a.Row(i)
					orow := out.Row(i)
					for k := kk; k < kmax; k++ {
						aik := arow[k]
						brow := b.Row(k)
						for j := jj; j < jmax; j++ {
							orow[j] += aik * brow[j]
						}
					}
				}
			}
		}
	}
	return out, nil
}

// MultiplyOps is MultiplyBlocked with a caller-supplied accumulation step.
// Result elements start at zero and muladd folds every product term into
// them, one term at a time.
func MultiplyOps[T Scalar](a, b *Matrix[T], block int, muladd MulAddFunc[T]) (*Matrix[T], error) {
	if muladd == nil {
		return nil, ErrNilMulAdd
	}
	if block <= 0 {
		block = defaultBlockSize
	}
	out, err := mulTarget(a, b)
	if err != nil {
		return nil, err
	}
	for ii := 0; ii < a.rows; ii += block {
		imax := min(ii+block, a.rows)
		for kk := 0; kk < a.cols; kk += block {
			kmax := min(kk+block, a.cols)
			for jj := 0; jj < b.cols; jj += block {
				jmax := min(jj+block, b.cols)
				for i := ii; i < imax; i++ {
					arow := a.Row(i)
					orow := out.Row(i)
					for k := kk; k < kmax; k++ {
						aik := arow[k]
						brow := b.Row(k)
						for j := jj; j < jmax; j++ {
							orow[j] = muladd(orow[j], aik, brow[j])
						}
					}
				}
			}
		}
	}
	return out, nil
}

func mulTarget[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrInvalidDimension)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("%w: %dx%d times %dx%d",
			ErrShapeMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	return New[T](a.rows, b.cols)
}
