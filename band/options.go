package band

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectra/series"
)

// DefaultDegree is the polynomial degree used by [Center] unless overridden.
const DefaultDegree = 3

// Errors returned by the feature extractors.
var (
	ErrInvalidRange       = errors.New("band: invalid wavelength range")
	ErrDegenerateFit      = errors.New("band: degenerate polynomial fit")
	ErrUndefinedAsymmetry = errors.New("band: asymmetry undefined for zero total area")
)

// Config holds the band selection and fitting settings.
type Config struct {
	Low     float64
	High    float64
	HasLow  bool
	HasHigh bool
	Degree  int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the full-spectrum range with a cubic fit.
func DefaultConfig() Config {
	return Config{Degree: DefaultDegree}
}

// WithLow sets the low wavelength endmember.
func WithLow(wavelength float64) Option {
	return func(cfg *Config) {
		cfg.Low = wavelength
		cfg.HasLow = true
	}
}

// WithHigh sets the high wavelength endmember.
func WithHigh(wavelength float64) Option {
	return func(cfg *Config) {
		cfg.High = wavelength
		cfg.HasHigh = true
	}
}

// WithRange sets both endmembers.
func WithRange(low, high float64) Option {
	return func(cfg *Config) {
		WithLow(low)(cfg)
		WithHigh(high)(cfg)
	}
}

// WithDegree sets the polynomial degree used to locate the band center.
func WithDegree(degree int) Option {
	return func(cfg *Config) {
		cfg.Degree = degree
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// bounds resolves the effective range for s. Unset bounds fall back to the
// first and last key; an empty spectrum has no defaults and selects nothing.
func (cfg Config) bounds(s *series.Series) (low, high float64, ok bool) {
	if s.Len() == 0 && (!cfg.HasLow || !cfg.HasHigh) {
		return 0, 0, false
	}

	low, high = cfg.Low, cfg.High
	if !cfg.HasLow {
		low = s.First()
	}

	if !cfg.HasHigh {
		high = s.Last()
	}

	return low, high, true
}

// selectRange returns the inclusive sub-range of s described by cfg.
func selectRange(s *series.Series, cfg Config) (*series.Series, error) {
	low, high, ok := cfg.bounds(s)
	if !ok {
		return &series.Series{}, nil
	}

	if low > high {
		return nil, fmt.Errorf("%w: low endmember %g exceeds high endmember %g", ErrInvalidRange, low, high)
	}

	return s.Slice(low, high), nil
}
