package noise

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultClip is the k in the |x - mean| < k*sigma inlier test.
	DefaultClip = 3.0

	// DefaultClipIterations is the number of passes used by [SigmaClip].
	DefaultClipIterations = 2

	// DefaultIterations is the number of clipping passes used by [Estimate].
	DefaultIterations = 3
)

// Config holds the sigma-clipping settings.
type Config struct {
	Clip       float64
	Iterations int
}

// Option mutates a Config.
type Option func(*Config)

// WithClip sets the clipping threshold in units of sigma.
func WithClip(k float64) Option {
	return func(cfg *Config) {
		if k > 0 {
			cfg.Clip = k
		}
	}
}

// WithIterations sets the number of clipping passes. The first pass uses all
// samples; each further pass recomputes the statistics over the current
// inliers.
func WithIterations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Iterations = n
		}
	}
}

func applyOptions(cfg Config, opts []Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// SigmaClip returns the standard deviation and mean of data after iterated
// k-sigma clipping. The population standard deviation is used.
//
// Each refinement pass recomputes the statistics over the samples that
// passed the previous test, then re-tests every sample against them. A pass
// that starts with no inliers leaves the statistics unchanged. There is no
// convergence tolerance; the pass count is the only stopping rule.
//
// Empty input returns (0, 0).
func SigmaClip(data []float64, opts ...Option) (sigma, mean float64) {
	cfg := applyOptions(Config{Clip: DefaultClip, Iterations: DefaultClipIterations}, opts)
	return sigmaClip(data, cfg)
}

func sigmaClip(data []float64, cfg Config) (sigma, mean float64) {
	if len(data) == 0 {
		return 0, 0
	}

	mean, sigma = meanStdDev(data)
	inliers := clip(data, mean, cfg.Clip*sigma)

	for pass := 1; pass < cfg.Iterations; pass++ {
		if len(inliers) == 0 {
			continue
		}

		mean, sigma = meanStdDev(inliers)
		inliers = clip(data, mean, cfg.Clip*sigma)
	}

	return sigma, mean
}

func meanStdDev(x []float64) (mean, std float64) {
	return stat.PopMeanStdDev(x, nil)
}

// clip returns the samples strictly closer than limit to mean.
func clip(data []float64, mean, limit float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if math.Abs(v-mean) < limit {
			out = append(out, v)
		}
	}

	return out
}
