package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "SGRAM"

// app carries state shared by the subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        config
	log        *zap.Logger
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}

	root := &cobra.Command{
		Use:   "sgram",
		Short: "Short-time log power spectra of PCM audio",
		Long: `sgram windows fixed-length audio frames, transforms them with an FFT
backend and prints one log power spectrum (in dB) per frame.

Settings come from flags, SGRAM_* environment variables and an optional
sgram.yaml config file, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ./sgram.yaml or $HOME/.config/sgram/sgram.yaml)")
	pf.Int("frame-length", defaultFrameLength, "frame length N in samples (even, >= 2)")
	pf.Int("hop", 0, "hop between frame starts in samples (default frame length)")
	pf.String("backend", defaultBackend, "FFT backend (see 'sgram backends')")
	pf.String("window", defaultWindow, "analysis window (rectangular, hann, hamming, blackman, blackman-harris)")
	pf.String("normalization", defaultNormalization, "power normalization (inverse-square, inverse-length)")
	pf.Float64("sample-rate", defaultSampleRate, "sample rate in Hz")
	pf.StringP("output", "o", defaultOutput, "output format (table, csv, json, yaml)")
	pf.Int("workers", 0, "parallel transform workers (default number of CPUs)")
	pf.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		a.newTransformCmd(),
		a.newToneCmd(),
		a.newBackendsCmd(),
		a.newWindowCmd(),
	)

	return root
}

// setup reads configuration after flags are parsed and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.initConfig(); err != nil {
		return err
	}

	if err := bindFlags(cmd, a.v); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logger

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}

	return nil
}

// initConfig reads in the config file and ENV variables if set. A missing
// file is only an error when it was named with --config.
func (a *app) initConfig() error {
	v := a.v
	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sgram"))
		}
		v.SetConfigName("sgram")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && a.configFile != "" {
		return fmt.Errorf("read config %s: %w", a.configFile, err)
	}
	return nil
}

// bindFlags binds each cobra flag to the viper key of the same name with
// dashes replaced by underscores.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")

		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key)); err != nil {
			lastErr = err
		}
	})

	return lastErr
}
