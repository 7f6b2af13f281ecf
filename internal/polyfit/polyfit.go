// Package polyfit provides ordinary least-squares polynomial fitting and
// evaluation shared by the band feature extractors.
package polyfit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrDegenerate is returned when the fit is underdetermined or the design
// matrix is (numerically) rank deficient.
var ErrDegenerate = errors.New("polyfit: degenerate fit")

// ErrLengthMismatch is returned when x and y differ in length.
var ErrLengthMismatch = errors.New("polyfit: x and y differ in length")

// Fit returns the coefficients of the degree-n polynomial that minimizes the
// squared error against (x[i], y[i]), in ascending power order:
// c[0] + c[1]*x + ... + c[n]*x^n.
//
// The Vandermonde columns are normalized before the QR solve and the scaling
// is undone afterwards, which keeps raw wavelength keys (hundreds to
// thousands) well conditioned without changing the least-squares solution.
func Fit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	if degree < 0 || degree >= len(x) {
		return nil, fmt.Errorf("%w: degree %d needs more than %d points", ErrDegenerate, degree, len(x))
	}

	rows := len(x)
	cols := degree + 1

	vander := mat.NewDense(rows, cols, nil)
	for i, xi := range x {
		p := 1.0
		for j := 0; j < cols; j++ {
			vander.Set(i, j, p)
			p *= xi
		}
	}

	scale := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, vander)

		norm := floats.Norm(col, 2)
		if norm == 0 {
			return nil, fmt.Errorf("%w: zero column %d", ErrDegenerate, j)
		}

		scale[j] = norm
		floats.Scale(1/norm, col)
		vander.SetCol(j, col)
	}

	var qr mat.QR
	qr.Factorize(vander)

	var sol mat.VecDense
	rhs := mat.NewVecDense(rows, append([]float64(nil), y...))
	if err := qr.SolveVecTo(&sol, false, rhs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerate, err)
	}

	coeffs := make([]float64, cols)
	for j := range coeffs {
		coeffs[j] = sol.AtVec(j) / scale[j]
	}

	return coeffs, nil
}

// Eval evaluates the ascending-order polynomial c at x using Horner's scheme.
func Eval(c []float64, x float64) float64 {
	var y float64
	for i := len(c) - 1; i >= 0; i-- {
		y = y*x + c[i]
	}

	return y
}

// EvalAll evaluates c at every element of xs.
func EvalAll(c []float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Eval(c, x)
	}

	return out
}
