package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-spectra/series"
)

var errBadSynth = errors.New("bandinfo: invalid synthesis settings")

// synthSettings describes the generated spectrum.
type synthSettings struct {
	Points int
	Start  float64
	Stop   float64
	Center float64
	Width  float64
	Depth  float64
	Sigma  float64
	Seed   uint64
}

// defaultSynth samples 400..2500 at unit spacing with a band at 1900.
var defaultSynth = synthSettings{
	Points: 2101,
	Start:  400,
	Stop:   2500,
	Center: 1900,
	Width:  60,
	Depth:  0.5,
	Sigma:  0.01,
	Seed:   1,
}

func synthFromViper(v *viper.Viper) synthSettings {
	return synthSettings{
		Points: v.GetInt("points"),
		Start:  v.GetFloat64("start"),
		Stop:   v.GetFloat64("stop"),
		Center: v.GetFloat64("center"),
		Width:  v.GetFloat64("width"),
		Depth:  v.GetFloat64("depth"),
		Sigma:  v.GetFloat64("sigma"),
		Seed:   v.GetUint64("seed"),
	}
}

// synthesize returns 1 - depth*exp(-((x-center)/width)^2) plus Gaussian
// noise on an evenly spaced wavelength grid.
func synthesize(cfg synthSettings) (*series.Series, error) {
	switch {
	case cfg.Points < 2:
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", errBadSynth, cfg.Points)
	case !(cfg.Stop > cfg.Start):
		return nil, fmt.Errorf("%w: stop %v must exceed start %v", errBadSynth, cfg.Stop, cfg.Start)
	case !(cfg.Width > 0):
		return nil, fmt.Errorf("%w: width must be positive, got %v", errBadSynth, cfg.Width)
	case cfg.Sigma < 0:
		return nil, fmt.Errorf("%w: sigma must be non-negative, got %v", errBadSynth, cfg.Sigma)
	}

	keys := make([]float64, cfg.Points)
	floats.Span(keys, cfg.Start, cfg.Stop)

	values := make([]float64, cfg.Points)
	for i, x := range keys {
		d := (x - cfg.Center) / cfg.Width
		values[i] = 1 - cfg.Depth*math.Exp(-d*d)
	}

	if cfg.Sigma > 0 {
		dist := distuv.Normal{Mu: 0, Sigma: cfg.Sigma, Src: rand.NewPCG(cfg.Seed, cfg.Seed)}
		for i := range values {
			values[i] += dist.Rand()
		}
	}

	return series.New(keys, values)
}
