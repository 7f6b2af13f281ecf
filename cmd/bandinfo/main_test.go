package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectra/band"
	"github.com/cwbudde/algo-spectra/denoise"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

// row returns the fields of the first output line starting with name.
func row(t *testing.T, out, name string) []string {
	t.Helper()

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, name+" ") {
			return strings.Fields(strings.TrimPrefix(line, name))
		}
	}
	t.Fatalf("no %q row in output:\n%s", name, out)
	return nil
}

func TestFeatures_CleanBand(t *testing.T) {
	out, err := run(t, "features", "--sigma", "0", "--low", "1700", "--high", "2100")
	if err != nil {
		t.Fatal(err)
	}

	if got := row(t, out, "minimum"); got[0] != "1900.0000" || got[1] != "0.5000" {
		t.Errorf("minimum row = %v, want [1900.0000 0.5000]", got)
	}
	if got := row(t, out, "center"); got[0] != "1900.0000" {
		t.Errorf("center row = %v, want wavelength 1900.0000", got)
	}
	if got := row(t, out, "fit points"); got[0] != "401" {
		t.Errorf("fit points = %v, want 401", got)
	}

	area, err := strconv.ParseFloat(row(t, out, "area")[0], 64)
	if err != nil {
		t.Fatal(err)
	}
	// Integral of -(1 - 0.5 exp(-(x/60)^2)) over +-200 is close to
	// -400 + 0.5*60*sqrt(pi).
	want := -400 + 0.5*60*math.Sqrt(math.Pi)
	if math.Abs(area-want) > 0.01 {
		t.Errorf("area = %v, want about %v", area, want)
	}
}

func TestFeatures_ZeroBoundIsHonored(t *testing.T) {
	out, err := run(t, "features", "--sigma", "0",
		"--start=-100", "--stop=100", "--points=201",
		"--center=-50", "--low=0")
	if err != nil {
		t.Fatal(err)
	}

	if got := row(t, out, "minimum"); got[0] != "0.0000" {
		t.Errorf("minimum row = %v, want wavelength 0.0000", got)
	}
}

func TestFeatures_InvalidRange(t *testing.T) {
	_, err := run(t, "features", "--low", "2100", "--high", "1700")
	if !errors.Is(err, band.ErrInvalidRange) {
		t.Fatalf("got %v, want ErrInvalidRange", err)
	}
}

func TestFeatures_EnvironmentOverride(t *testing.T) {
	t.Setenv("BANDINFO_CENTER", "1500")
	t.Setenv("BANDINFO_SIGMA", "0")

	out, err := run(t, "features")
	if err != nil {
		t.Fatal(err)
	}

	if got := row(t, out, "minimum"); got[0] != "1500.0000" {
		t.Errorf("minimum row = %v, want wavelength 1500.0000", got)
	}
}

func TestFeatures_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bandinfo.yaml")
	if err := os.WriteFile(path, []byte("depth: 0.3\nsigma: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--config", path, "features")
	if err != nil {
		t.Fatal(err)
	}

	if got := row(t, out, "minimum"); got[1] != "0.7000" {
		t.Errorf("minimum row = %v, want value 0.7000", got)
	}
}

func TestFeatures_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("BANDINFO_CENTER", "1500")

	out, err := run(t, "features", "--sigma", "0", "--center", "1000")
	if err != nil {
		t.Fatal(err)
	}

	if got := row(t, out, "minimum"); got[0] != "1000.0000" {
		t.Errorf("minimum row = %v, want wavelength 1000.0000", got)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "features")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNoise_Command(t *testing.T) {
	out, err := run(t, "noise", "--sigma", "0.02", "--verbose")
	if err != nil {
		t.Fatal(err)
	}

	got, err := strconv.ParseFloat(row(t, out, "estimated sigma")[0], 64)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.02)/0.02 > 0.25 {
		t.Errorf("estimated sigma = %v, want about 0.02", got)
	}
}

func TestDenoise_Command(t *testing.T) {
	out, err := run(t, "denoise", "--sigma", "0.05", "--low", "1700", "--high", "2100")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"LEVEL", "raw spectrum:", "denoised spectrum:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if got := row(t, out, "0"); len(got) != 1 {
		t.Errorf("level 0 row = %v, want one sigma value", got)
	}
}

func TestDenoise_RejectsExcessiveLevels(t *testing.T) {
	_, err := run(t, "denoise", "--levels", "64")
	if !errors.Is(err, denoise.ErrInvalidLevels) {
		t.Fatalf("got %v, want ErrInvalidLevels", err)
	}
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*synthSettings)
		wantErr bool
	}{
		{"defaults", func(*synthSettings) {}, false},
		{"one point", func(c *synthSettings) { c.Points = 1 }, true},
		{"reversed grid", func(c *synthSettings) { c.Start, c.Stop = c.Stop, c.Start }, true},
		{"zero width", func(c *synthSettings) { c.Width = 0 }, true},
		{"negative sigma", func(c *synthSettings) { c.Sigma = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultSynth
			tt.mutate(&cfg)

			s, err := synthesize(cfg)
			if tt.wantErr {
				if !errors.Is(err, errBadSynth) {
					t.Fatalf("got %v, want errBadSynth", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.Len() != cfg.Points || s.First() != cfg.Start || s.Last() != cfg.Stop {
				t.Errorf("grid = %d points %v..%v", s.Len(), s.First(), s.Last())
			}
		})
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	a, err := synthesize(defaultSynth)
	if err != nil {
		t.Fatal(err)
	}
	b, err := synthesize(defaultSynth)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range a.Values() {
		if b.Values()[i] != v {
			t.Fatalf("index %d differs: %v vs %v", i, v, b.Values()[i])
		}
	}
}
