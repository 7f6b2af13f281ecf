package band

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/series"
)

// Point is a wavelength together with the intensity observed or fitted there.
type Point struct {
	Wavelength float64
	Value      float64
}

// Minima returns the lowest point of s inside the selected range. When several
// keys share the minimum value, the one with the smallest wavelength wins.
//
// An inverted range, or a range that contains no keys, returns
// [ErrInvalidRange].
func Minima(s *series.Series, opts ...Option) (Point, error) {
	return minima(s, ApplyOptions(opts...))
}

func minima(s *series.Series, cfg Config) (Point, error) {
	sub, err := selectRange(s, cfg)
	if err != nil {
		return Point{}, err
	}

	key, value, err := sub.Argmin()
	if err != nil {
		return Point{}, fmt.Errorf("%w: no samples in range", ErrInvalidRange)
	}

	return Point{Wavelength: key, Value: value}, nil
}
