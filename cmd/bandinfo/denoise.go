package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectra/denoise"
	"github.com/cwbudde/algo-spectra/series"
)

func newDenoiseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "denoise",
		Short: "Wavelet-denoise the spectrum and report features before and after",
		Example: `  bandinfo denoise --sigma 0.05
  bandinfo denoise --threshold 4 --low 1700 --high 2100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := synthesize(synthFromViper(a.v))
			if err != nil {
				return err
			}

			opts := []denoise.Option{
				denoise.WithThreshold(a.v.GetFloat64("threshold")),
				denoise.WithIterations(a.v.GetInt("noise-iterations")),
			}
			if a.v.IsSet("levels") {
				opts = append(opts, denoise.WithLevels(a.v.GetInt("levels")))
			}

			res, err := denoise.Spectrum(s.Values(), opts...)
			if err != nil {
				return fmt.Errorf("denoising: %w", err)
			}

			a.log.Debug("denoised",
				zap.Int("thresholded_levels", len(res.Sigmas)),
				zap.Float64s("sigmas", res.Sigmas))

			clean, err := series.New(s.Keys(), res.Denoised)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err := printLevels(w, res); err != nil {
				return err
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, "raw spectrum:")
			if err := printFeatures(w, s, bandOptions(a)...); err != nil {
				return err
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, "denoised spectrum:")

			return printFeatures(w, clean, bandOptions(a)...)
		},
	}

	addBandFlags(cmd)

	f := cmd.Flags()
	f.Float64("threshold", denoise.DefaultThreshold, "coefficient cut-off in units of plane noise")
	f.Int("noise-iterations", denoise.DefaultIterations, "sigma-clipping passes of the plane noise estimate")
	f.Int("levels", 0, "wavelet scales (default floor(log2 n) - 1)")

	return cmd
}

func printLevels(w io.Writer, res denoise.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tPLANE SIGMA")
	for i, sigma := range res.Sigmas {
		fmt.Fprintf(tw, "%d\t%.6f\n", i, sigma)
	}

	return tw.Flush()
}
