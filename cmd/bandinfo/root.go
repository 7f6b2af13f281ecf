package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "BANDINFO"

// app carries the state shared by all subcommands.
type app struct {
	v          *viper.Viper
	log        *zap.Logger
	configFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "bandinfo",
		Short: "Absorption band feature and noise report",
		Long: `bandinfo builds a synthetic continuum-removed spectrum holding one
Gaussian absorption band plus optional white noise, then reports band
shape features (minimum, fitted center, area, asymmetry), the estimated
noise level, or the result of wavelet denoising.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.BoolP("verbose", "v", false, "log debug output to stderr")
	pf.Int("points", defaultSynth.Points, "number of spectrum samples")
	pf.Float64("start", defaultSynth.Start, "first wavelength")
	pf.Float64("stop", defaultSynth.Stop, "last wavelength")
	pf.Float64("center", defaultSynth.Center, "band center wavelength")
	pf.Float64("width", defaultSynth.Width, "band half width (1/e)")
	pf.Float64("depth", defaultSynth.Depth, "band depth below the continuum")
	pf.Float64("sigma", defaultSynth.Sigma, "standard deviation of added white noise")
	pf.Uint64("seed", defaultSynth.Seed, "noise generator seed")

	root.AddCommand(
		newFeaturesCmd(a),
		newNoiseCmd(a),
		newDenoiseCmd(a),
	)

	return root
}

// initialize loads the optional config file, binds flags and environment to
// viper and builds the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.configFile, err)
		}
	}

	if err := bindFlags(cmd, a.v); err != nil {
		return err
	}

	log, err := newLogger(a.v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	a.log = log

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}

	return nil
}

// bindFlags copies config and environment values into flags the user did not
// set, then binds every flag to v.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}

		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				lastErr = fmt.Errorf("flag --%s: %w", f.Name, err)
			}
		}

		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}
