// Package noise estimates the standard deviation of white Gaussian noise in
// one-, two- and three-dimensional data.
//
// [SigmaClip] computes outlier-trimmed statistics by iterated k-sigma
// clipping. [Estimate] removes the underlying signal first, using a median
// filter for 1-D spectra and 2-D images or a second-difference operator
// along the spectral axis of 3-D cubes, and clips the residual:
//
//	sigma, err := noise.Estimate1D(spectrum)
//	sigma, err := noise.Estimate(noise.FromMatrix(image))
package noise
