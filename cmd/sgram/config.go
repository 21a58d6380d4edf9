package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cwbudde/algo-spectrograph/dsp/fftengine"
	"github.com/cwbudde/algo-spectrograph/dsp/spectrograph"
	"github.com/cwbudde/algo-spectrograph/dsp/window"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultFrameLength   = spectrograph.DefaultFrameLength
	defaultBackend       = fftengine.Default
	defaultWindow        = "hann"
	defaultNormalization = "inverse-square"
	defaultSampleRate    = 8000.0
	defaultEncoding      = "s16le"
	defaultOutput        = "table"
	defaultLogLevel      = "info"
)

// config is the resolved command configuration.
type config struct {
	FrameLength   int     `mapstructure:"frame_length" yaml:"frame_length"`
	Hop           int     `mapstructure:"hop" yaml:"hop"`
	Backend       string  `mapstructure:"backend" yaml:"backend"`
	Window        string  `mapstructure:"window" yaml:"window"`
	Normalization string  `mapstructure:"normalization" yaml:"normalization"`
	SampleRate    float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
	Encoding      string  `mapstructure:"encoding" yaml:"encoding"`
	Output        string  `mapstructure:"output" yaml:"output"`
	Workers       int     `mapstructure:"workers" yaml:"workers"`
	LogLevel      string  `mapstructure:"log_level" yaml:"log_level"`
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("frame_length", defaultFrameLength)
	v.SetDefault("hop", 0)
	v.SetDefault("backend", defaultBackend)
	v.SetDefault("window", defaultWindow)
	v.SetDefault("normalization", defaultNormalization)
	v.SetDefault("sample_rate", defaultSampleRate)
	v.SetDefault("encoding", defaultEncoding)
	v.SetDefault("output", defaultOutput)
	v.SetDefault("workers", 0)
	v.SetDefault("log_level", defaultLogLevel)
}

// loadConfig unmarshals and validates the configuration held by v.
func loadConfig(v *viper.Viper) (config, error) {
	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.Encoding = strings.ToLower(strings.TrimSpace(cfg.Encoding))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if cfg.Backend == "" {
		cfg.Backend = defaultBackend
	}
	if cfg.Hop <= 0 {
		cfg.Hop = cfg.FrameLength
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if !(cfg.SampleRate > 0) {
		return config{}, fmt.Errorf("sample_rate must be > 0: %v", cfg.SampleRate)
	}
	switch cfg.Encoding {
	case "s16le", "f32le":
	default:
		return config{}, fmt.Errorf("unknown encoding %q (want s16le or f32le)", cfg.Encoding)
	}
	switch cfg.Output {
	case "table", "csv", "json", "yaml":
	default:
		return config{}, fmt.Errorf("unknown output format %q (want table, csv, json or yaml)", cfg.Output)
	}

	return cfg, nil
}

// spectrographOptions translates the configuration into spectrograph options.
func (c config) spectrographOptions(log *zap.Logger) ([]spectrograph.Option, error) {
	win, err := window.ParseType(c.Window)
	if err != nil {
		return nil, err
	}
	norm, err := spectrograph.ParseNormalization(c.Normalization)
	if err != nil {
		return nil, err
	}
	backend, err := fftengine.ParseBackend(c.Backend)
	if err != nil {
		return nil, err
	}

	return []spectrograph.Option{
		spectrograph.WithFrameLength(c.FrameLength),
		spectrograph.WithWindow(win),
		spectrograph.WithNormalization(norm),
		spectrograph.WithBackend(backend, nil),
		spectrograph.WithLogger(log.Named("spectrograph")),
	}, nil
}
