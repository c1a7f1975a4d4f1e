package matrix

import (
	"fmt"
	"math"
)

// Scalar enumerates the element types a Matrix can hold: fixed-size
// integers and floats, plus named types derived from them.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Matrix is a dense row-major matrix. Create instances through New or
// NewFilled; the zero value has no storage.
type Matrix[T Scalar] struct {
	rows, cols int
	data       []T
}

// New creates a rows by cols matrix with every element zero. Non-positive
// dimensions are rejected with ErrInvalidDimension; dimension pairs whose
// element count does not fit an int are rejected with ErrTooLarge.
func New[T Scalar](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, rows, cols)
	}
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates a rows by cols matrix with every element set to k.
func NewFilled[T Scalar](rows, cols int, k T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(k)
	return m, nil
}

// Dims returns the row and column counts.
func (m *Matrix[T]) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the element at row i, column j. Indices out of range panic.
func (m *Matrix[T]) At(i, j int) T {
	m.boundsCheck(i, j)
	return m.data[i*m.cols+j]
}

// Set writes the element at row i, column j. Indices out of range panic.
func (m *Matrix[T]) Set(i, j int, v T) {
	m.boundsCheck(i, j)
	m.data[i*m.cols+j] = v
}

// Row returns row i as a slice aliasing the matrix storage, so writes
// through the slice write the matrix.
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range (%d rows)", i, m.rows))
	}
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Fill sets every element to k.
func (m *Matrix[T]) Fill(k T) {
	for i := range m.data {
		m.data[i] = k
	}
}

func (m *Matrix[T]) boundsCheck(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d matrix",
			i, j, m.rows, m.cols))
	}
}
