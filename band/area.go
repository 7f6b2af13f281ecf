package band

import (
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-spectra/series"
)

// Continuum is the normalized baseline of a continuum-removed spectrum.
// Only samples at or below it belong to an absorption band.
const Continuum = 1.0

// Area integrates the negated intensities of the selected range with the
// trapezoidal rule, using the wavelength keys as abscissae. Samples above
// [Continuum] are dropped rather than clipped, so the integration steps
// across the gaps they leave. Fewer than two retained samples give 0.
//
// Only an inverted range is an error.
func Area(s *series.Series, opts ...Option) (float64, error) {
	return area(s, ApplyOptions(opts...))
}

func area(s *series.Series, cfg Config) (float64, error) {
	sub, err := selectRange(s, cfg)
	if err != nil {
		return 0, err
	}

	kept := sub.Filter(func(v float64) bool { return v <= Continuum })
	if kept.Len() < 2 {
		return 0, nil
	}

	neg := kept.Map(func(_, v float64) float64 { return -v })

	return integrate.Trapezoidal(neg.Keys(), neg.Values()), nil
}
