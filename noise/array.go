package noise

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Array is a dense row-major N-dimensional array. The last axis varies
// fastest; for a spectral cube of shape [nco, nli, npz] it is the spectral
// axis.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray wraps data with the given shape after checking that the element
// counts agree. data is not copied.
func NewArray(data []float64, shape ...int) (Array, error) {
	a := Array{Shape: shape, Data: data}
	if err := a.validate(); err != nil {
		return Array{}, err
	}

	return a, nil
}

// FromMatrix copies a gonum matrix into a 2-D array.
func FromMatrix(m mat.Matrix) Array {
	rows, cols := m.Dims()
	data := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data = append(data, m.At(r, c))
		}
	}

	return Array{Shape: []int{rows, cols}, Data: data}
}

// Dims returns the number of axes.
func (a Array) Dims() int { return len(a.Shape) }

func (a Array) validate() error {
	n := 1
	for i, d := range a.Shape {
		if d < 0 {
			return fmt.Errorf("%w: negative extent %d on axis %d", ErrShapeMismatch, d, i)
		}
		n *= d
	}

	if n != len(a.Data) {
		return fmt.Errorf("%w: shape %v holds %d elements, data has %d", ErrShapeMismatch, a.Shape, n, len(a.Data))
	}

	return nil
}
