package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectra/band"
	"github.com/cwbudde/algo-spectra/series"
)

func newFeaturesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Print minimum, fitted center, area and asymmetry",
		Example: `  bandinfo features
  bandinfo features --low 1700 --high 2100 --degree 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := synthesize(synthFromViper(a.v))
			if err != nil {
				return err
			}

			opts := bandOptions(a)
			a.log.Debug("extracting features",
				zap.Int("points", s.Len()),
				zap.Int("degree", a.v.GetInt("degree")))

			return printFeatures(cmd.OutOrStdout(), s, opts...)
		},
	}

	addBandFlags(cmd)

	return cmd
}

func addBandFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("low", 0, "low wavelength endmember (default first wavelength)")
	f.Float64("high", 0, "high wavelength endmember (default last wavelength)")
	f.Int("degree", band.DefaultDegree, "polynomial degree of the center fit")
}

// bandOptions turns the band flags into extractor options. Endmembers are
// only applied when set, so an explicit 0 is honored.
func bandOptions(a *app) []band.Option {
	opts := []band.Option{band.WithDegree(a.v.GetInt("degree"))}
	if a.v.IsSet("low") {
		opts = append(opts, band.WithLow(a.v.GetFloat64("low")))
	}
	if a.v.IsSet("high") {
		opts = append(opts, band.WithHigh(a.v.GetFloat64("high")))
	}

	return opts
}

// printFeatures writes the band features of s as a table.
func printFeatures(w io.Writer, s *series.Series, opts ...band.Option) error {
	minimum, err := band.Minima(s, opts...)
	if err != nil {
		return fmt.Errorf("minimum: %w", err)
	}

	center, fit, err := band.Center(s, opts...)
	if err != nil {
		return fmt.Errorf("center: %w", err)
	}

	area, err := band.Area(s, opts...)
	if err != nil {
		return fmt.Errorf("area: %w", err)
	}

	asymmetry, err := band.Asymmetry(s, opts...)
	asymText := fmt.Sprintf("%.4f", asymmetry)
	switch {
	case errors.Is(err, band.ErrUndefinedAsymmetry):
		asymText = "undefined"
	case err != nil:
		return fmt.Errorf("asymmetry: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FEATURE\tWAVELENGTH\tVALUE")
	fmt.Fprintf(tw, "minimum\t%.4f\t%.4f\n", minimum.Wavelength, minimum.Value)
	fmt.Fprintf(tw, "center\t%.4f\t%.4f\n", center.Wavelength, center.Value)
	fmt.Fprintf(tw, "fit points\t\t%d\n", fit.Len())
	fmt.Fprintf(tw, "area\t\t%.4f\n", area)
	fmt.Fprintf(tw, "asymmetry\t\t%s\n", asymText)

	return tw.Flush()
}
