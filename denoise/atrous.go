package denoise

import (
	"errors"
	"fmt"
	"math/bits"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectra/internal/conv"
)

// Errors returned by the wavelet transform and the denoiser.
var (
	ErrEmptyInput    = errors.New("denoise: empty input")
	ErrInvalidLevels = errors.New("denoise: level count out of range")
)

// b3Spline holds the taps of the cubic B-spline smoothing kernel.
var b3Spline = [5]float64{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}

// Decomposition is the result of [Decompose].
type Decomposition struct {
	// Details holds one plane per scale, finest first.
	Details [][]float64
	// Smooth is the residual approximation after the coarsest scale.
	Smooth []float64
}

// Reconstruct sums all planes back into a signal.
func (d Decomposition) Reconstruct() []float64 {
	out := append([]float64(nil), d.Smooth...)
	for _, plane := range d.Details {
		floats.Add(out, plane)
	}

	return out
}

// MaxLevels returns the largest scale count [Decompose] accepts for a signal
// of length n. Beyond it the kernel dilation exceeds the mirror period of the
// signal.
func MaxLevels(n int) int {
	if n <= 0 {
		return 0
	}

	return bits.Len(uint(n))
}

// Decompose computes levels scales of the a-trous wavelet transform of x.
// At scale j the B3-spline kernel is dilated by 2^j (2^j - 1 zeros between
// taps) and applied with mirror boundaries; the detail plane is the
// difference between successive smoothings. levels must lie in
// [0, MaxLevels(len(x))].
func Decompose(x []float64, levels int) (Decomposition, error) {
	if len(x) == 0 {
		return Decomposition{}, ErrEmptyInput
	}
	if levels < 0 || levels > MaxLevels(len(x)) {
		return Decomposition{}, fmt.Errorf("%w: got %d, want 0..%d",
			ErrInvalidLevels, levels, MaxLevels(len(x)))
	}

	current := append([]float64(nil), x...)
	details := make([][]float64, 0, levels)

	for j := 0; j < levels; j++ {
		smooth, err := smoothAtScale(current, 1<<j)
		if err != nil {
			return Decomposition{}, err
		}

		detail := make([]float64, len(current))
		floats.SubTo(detail, current, smooth)

		details = append(details, detail)
		current = smooth
	}

	return Decomposition{Details: details, Smooth: current}, nil
}

func smoothAtScale(c []float64, step int) ([]float64, error) {
	kernel := make([]float64, 4*step+1)
	for i, tap := range b3Spline {
		kernel[i*step] = tap
	}

	pad := 2 * step
	n := len(c)

	padded := make([]float64, n+2*pad)
	for i := range padded {
		padded[i] = c[mirror(i-pad, n)]
	}

	smooth, err := conv.ConvolveMode(padded, kernel, conv.ModeValid)
	if err != nil {
		return nil, fmt.Errorf("denoise: smoothing at step %d: %w", step, err)
	}

	return smooth, nil
}

// mirror reflects index i into [0, n) about the end samples without
// repeating them: -1 maps to 1 and n maps to n-2.
func mirror(i, n int) int {
	if n == 1 {
		return 0
	}

	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}

	return i
}
