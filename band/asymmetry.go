package band

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/series"
)

// Asymmetry compares the band area left and right of the fitted center:
//
//	(left - right) / (left + right)
//
// The selected range is split at the center wavelength into [start, center)
// and [center, end]. Each half is measured with [Area] under the same range
// options as the whole band, not under its own extent. The result is 0 for a
// balanced band and approaches ±1 when the area sits on one side.
//
// A zero total area returns [ErrUndefinedAsymmetry].
func Asymmetry(s *series.Series, opts ...Option) (float64, error) {
	cfg := ApplyOptions(opts...)

	sub, err := selectRange(s, cfg)
	if err != nil {
		return 0, err
	}

	c, _, err := center(sub, cfg)
	if err != nil {
		return 0, err
	}

	left, err := area(sub.Before(c.Wavelength), cfg)
	if err != nil {
		return 0, err
	}

	right, err := area(sub.From(c.Wavelength), cfg)
	if err != nil {
		return 0, err
	}

	total := left + right
	if total == 0 {
		return 0, fmt.Errorf("%w: left %g, right %g", ErrUndefinedAsymmetry, left, right)
	}

	return (left - right) / total, nil
}
