// Package denoise removes white noise from spectra by thresholding an
// undecimated ("a trous") B3-spline wavelet decomposition.
//
// [Decompose] splits a signal into detail planes of increasing scale plus a
// final smooth plane; the planes add back up to the input. [Spectrum]
// estimates the noise of each fine-scale plane with [noise.Estimate1D],
// zeroes the coefficients below a multiple of it, and reassembles the
// signal:
//
//	res, err := denoise.Spectrum(counts)
//	// res.Denoised + res.Noise == counts
package denoise
