package denoise

import (
	"testing"

	"github.com/cwbudde/algo-spectra/internal/testutil"
)

func BenchmarkSpectrum(b *testing.B) {
	x := testutil.DeterministicGaussian(1, 0.05, 4096)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Spectrum(x); err != nil {
			b.Fatal(err)
		}
	}
}
