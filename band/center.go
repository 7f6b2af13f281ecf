package band

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/internal/polyfit"
	"github.com/cwbudde/algo-spectra/series"
)

// Center fits a least-squares polynomial (degree [DefaultDegree] unless set
// with [WithDegree]) to the selected range of s and returns the minimum of the
// fitted curve together with the curve itself. The curve is evaluated at the
// keys of the range, so the center always falls on one of them.
//
// The fit needs more points than the degree; otherwise [ErrDegenerateFit] is
// returned. Range errors are those of [Minima].
func Center(s *series.Series, opts ...Option) (Point, *series.Series, error) {
	return center(s, ApplyOptions(opts...))
}

func center(s *series.Series, cfg Config) (Point, *series.Series, error) {
	sub, err := selectRange(s, cfg)
	if err != nil {
		return Point{}, nil, err
	}

	if sub.Len() == 0 {
		return Point{}, nil, fmt.Errorf("%w: no samples in range", ErrInvalidRange)
	}

	coeffs, err := polyfit.Fit(sub.Keys(), sub.Values(), cfg.Degree)
	if err != nil {
		return Point{}, nil, fmt.Errorf("%w: %w", ErrDegenerateFit, err)
	}

	fit := sub.Map(func(key, _ float64) float64 {
		return polyfit.Eval(coeffs, key)
	})

	// The curve already spans the range, so the minimum is taken over all of it.
	c, err := minima(fit, DefaultConfig())
	if err != nil {
		return Point{}, nil, err
	}

	return c, fit, nil
}
