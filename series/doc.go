// Package series provides an immutable, key-ordered numeric container for
// one-dimensional spectra.
//
// A [Series] pairs strictly increasing wavelength keys with intensity values.
// Range selection is label based and inclusive on both ends:
//
//	s, err := series.New(wavelengths, reflectance)
//	band := s.Slice(1800, 2200) // keys k with 1800 <= k <= 2200
//	key, value, err := band.Argmin()
//
// All operations return new series; the receiver is never modified. Derived
// series may share backing storage with their parent, which is safe because
// nothing mutates it.
package series
