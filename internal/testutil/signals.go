package testutil

import (
	"math"
	"math/rand"
)

// Fixture25 is a fixed 25-point pseudo-random spectrum in [0, 1) used to lock
// numeric behavior of the band features.
var Fixture25 = []float64{
	0.41662, 0.010169, 0.825207, 0.29864, 0.368412,
	0.193661, 0.566008, 0.161688, 0.124267, 0.432936,
	0.562078, 0.174344, 0.553221, 0.354901, 0.958065,
	0.091294, 0.97864, 0.412119, 0.503935, 0.148146,
	0.718967, 0.189971, 0.34156, 0.023521, 0.339518,
}

// BandFixture25 is a 25-point continuum-removed absorption band centered near
// index 11 with a small deterministic ripple.
var BandFixture25 = []float64{
	0.998125, 0.989431, 1.003972, 0.988647, 0.97866,
	0.951714, 0.917476, 0.846082, 0.764572, 0.687138,
	0.625476, 0.593487, 0.625299, 0.685578, 0.781248,
	0.844674, 0.925728, 0.956083, 0.98137, 0.985637,
	1.001847, 0.993027, 0.996623, 0.990421, 0.99678,
}

// GaussianBand evaluates a continuum-removed Gaussian absorption band,
// 1 - depth*exp(-((x-center)/width)^2), at every x.
func GaussianBand(x []float64, center, width, depth float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - center) / width
		out[i] = 1 - depth*math.Exp(-d*d)
	}
	return out
}

// Linspace returns n evenly spaced points from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// DeterministicGaussian generates zero-mean Gaussian noise with standard
// deviation sigma and a fixed seed.
func DeterministicGaussian(seed int64, sigma float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * sigma
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
