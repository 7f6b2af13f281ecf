package denoise

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectra/noise"
)

const (
	// DefaultThreshold is the coefficient cut-off in units of plane noise.
	DefaultThreshold = 3.0

	// DefaultIterations is the sigma-clipping pass count of the per-plane
	// noise estimate.
	DefaultIterations = 4
)

// Config holds the denoiser settings.
type Config struct {
	Threshold  float64
	Iterations int
	// Levels overrides the automatic scale count when positive.
	Levels int
}

// Option mutates a Config.
type Option func(*Config)

// WithThreshold sets the cut-off in units of the estimated plane noise.
func WithThreshold(k float64) Option {
	return func(cfg *Config) {
		if k >= 0 {
			cfg.Threshold = k
		}
	}
}

// WithIterations sets the sigma-clipping passes of the noise estimate.
func WithIterations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Iterations = n
		}
	}
}

// WithLevels fixes the number of wavelet scales.
func WithLevels(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Levels = n
		}
	}
}

// Result holds a denoised spectrum and the component removed from it.
type Result struct {
	Denoised []float64
	Noise    []float64
	// Sigmas holds the noise estimate of each thresholded plane, finest first.
	Sigmas []float64
}

// Levels returns the default scale count for a signal of length n:
// floor(log2(n)) - 1, and never below 0.
func Levels(n int) int {
	if n < 4 {
		return 0
	}

	return bits.Len(uint(n)) - 2
}

// Spectrum denoises x. The signal is decomposed into [Levels] scales; in
// every detail plane except the two coarsest, coefficients whose magnitude
// is below Threshold times the plane's estimated noise are set to zero.
// Coarse planes and the smooth plane pass through untouched.
func Spectrum(x []float64, opts ...Option) (Result, error) {
	cfg := Config{Threshold: DefaultThreshold, Iterations: DefaultIterations}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(x) == 0 {
		return Result{}, ErrEmptyInput
	}

	levels := cfg.Levels
	if levels == 0 {
		levels = Levels(len(x))
	}

	d, err := Decompose(x, levels)
	if err != nil {
		return Result{}, err
	}

	var sigmas []float64
	mask := make([]float64, len(x))

	for i := 0; i < levels-2; i++ {
		plane := d.Details[i]

		sigma, err := noise.Estimate1D(plane, noise.WithIterations(cfg.Iterations))
		if err != nil {
			return Result{}, fmt.Errorf("denoise: level %d: %w", i, err)
		}
		sigmas = append(sigmas, sigma)

		limit := cfg.Threshold * sigma
		for k, c := range plane {
			if math.Abs(c) < limit {
				mask[k] = 0
			} else {
				mask[k] = 1
			}
		}

		kept := make([]float64, len(plane))
		vecmath.MulBlock(kept, plane, mask)
		d.Details[i] = kept
	}

	denoised := d.Reconstruct()
	removed := make([]float64, len(x))
	floats.SubTo(removed, x, denoised)

	return Result{Denoised: denoised, Noise: removed, Sigmas: sigmas}, nil
}
