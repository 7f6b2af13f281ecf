// Package band extracts shape features of absorption bands from
// continuum-removed spectra.
//
// The features build on each other:
//
//   - [Minima]:    lowest observed point inside the band
//   - [Center]:    minimum of a least-squares polynomial fitted to the band
//   - [Area]:      trapezoidal area of the band below the unit continuum
//   - [Asymmetry]: left/right area balance around the fitted center
//
// Every function selects the inclusive wavelength range given by [WithLow]
// and [WithHigh]. An unset bound defaults to the first or last key of the
// spectrum; an explicitly set bound is always honored, including 0.
//
//	s := series.FromValues(reflectance)
//	center, fit, err := band.Center(s, band.WithLow(4), band.WithHigh(20))
//	asym, err := band.Asymmetry(s, band.WithLow(4), band.WithHigh(20))
package band
