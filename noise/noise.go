package noise

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectra/internal/medfilt"
)

// Errors returned by the noise estimators.
var (
	ErrUnsupportedDimensionality = errors.New("noise: only 1-D, 2-D and 3-D data are supported")
	ErrShapeMismatch             = errors.New("noise: shape does not match data")
	ErrTooShort                  = errors.New("noise: spectral axis needs at least 2 samples")
)

// Empirical ratios between the clipped residual sigma and the true noise
// sigma for median-filter residuals.
const (
	scale1D = 0.893421
	scale2D = 0.969684
)

// Estimate returns the standard deviation of the white Gaussian noise in a.
// Options tune the sigma clipping of the residual; the default is
// [DefaultIterations] passes at [DefaultClip] sigma.
//
//   - 1-D: residual against a 3-point median filter, scaled by 1/0.893421.
//   - 2-D: residual against a 3×3 median filter, scaled by 1/0.969684.
//   - 3-D: normalized second difference along the last axis, unscaled.
//
// Median filters treat samples outside the data as zero.
func Estimate(a Array, opts ...Option) (float64, error) {
	if err := a.validate(); err != nil {
		return 0, err
	}

	cfg := applyOptions(Config{Clip: DefaultClip, Iterations: DefaultIterations}, opts)

	switch a.Dims() {
	case 1:
		return estimate1D(a.Data, cfg)
	case 2:
		return estimate2D(a.Data, a.Shape[0], a.Shape[1], cfg)
	case 3:
		return estimate3D(a, cfg)
	default:
		return 0, fmt.Errorf("%w: got %d dimensions", ErrUnsupportedDimensionality, a.Dims())
	}
}

// Estimate1D is [Estimate] for a one-dimensional signal.
func Estimate1D(data []float64, opts ...Option) (float64, error) {
	return Estimate(Array{Shape: []int{len(data)}, Data: data}, opts...)
}

func estimate1D(data []float64, cfg Config) (float64, error) {
	smooth, err := medfilt.Filter1D(data, 3)
	if err != nil {
		return 0, err
	}

	sigma, _ := sigmaClip(residual(data, smooth), cfg)

	return sigma / scale1D, nil
}

func estimate2D(data []float64, rows, cols int, cfg Config) (float64, error) {
	smooth, err := medfilt.Filter2D(data, rows, cols, 3)
	if err != nil {
		return 0, err
	}

	sigma, _ := sigmaClip(residual(data, smooth), cfg)

	return sigma / scale2D, nil
}

// estimate3D applies the unit-variance operator (-1, 2, -1)/sqrt(6) along the
// spectral axis, with one-sided differences scaled by 2/sqrt(6) at the ends.
func estimate3D(a Array, cfg Config) (float64, error) {
	npz := a.Shape[2]
	if npz < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooShort, npz)
	}

	c1 := -1 / math.Sqrt(6)
	c2 := 2 / math.Sqrt(6)

	diff := make([]float64, len(a.Data))
	for start := 0; start < len(a.Data); start += npz {
		z := a.Data[start : start+npz]
		d := diff[start : start+npz]

		d[0] = c2 * (z[0] - z[1])
		for k := 1; k < npz-1; k++ {
			d[k] = c1*(z[k-1]+z[k+1]) + c2*z[k]
		}
		d[npz-1] = c2 * (z[npz-1] - z[npz-2])
	}

	sigma, _ := sigmaClip(diff, cfg)

	return sigma, nil
}

func residual(data, smooth []float64) []float64 {
	return floats.SubTo(make([]float64, len(data)), data, smooth)
}
