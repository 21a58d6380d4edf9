package spectrograph

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-spectrograph/dsp/fftengine"
	"github.com/cwbudde/algo-spectrograph/dsp/window"
	"go.uber.org/zap"
)

// DefaultFrameLength is the frame length used when none is configured.
const DefaultFrameLength = 128

// Normalization selects the constant the power spectrum is scaled by.
type Normalization int

const (
	// NormInverseSquare scales power by 1/N².
	NormInverseSquare Normalization = iota

	// NormInverseLength scales power by 1/N.
	NormInverseLength
)

// String returns the configuration name of the normalization.
func (n Normalization) String() string {
	switch n {
	case NormInverseSquare:
		return "inverse-square"
	case NormInverseLength:
		return "inverse-length"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization maps "inverse-square" (or "1/n2") and
// "inverse-length" (or "1/n") to a Normalization.
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "inverse-square", "1/n2", "1/n^2":
		return NormInverseSquare, nil
	case "inverse-length", "1/n":
		return NormInverseLength, nil
	default:
		return 0, fmt.Errorf("spectrograph: unknown normalization %q", s)
	}
}

// Scale returns the power scale for frame length n in float64.
func (n Normalization) Scale(frameLen int) float64 {
	f := float64(frameLen)
	if n == NormInverseLength {
		return 1 / f
	}
	return 1 / (f * f)
}

// Config holds the settings a Spectrograph is built from.
type Config struct {
	FrameLength   int
	Backend       string
	Factory       fftengine.Factory
	Window        window.Type
	Normalization Normalization
	Logger        *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 128-sample Hann configuration on the default
// FFT backend with 1/N² normalization and a no-op logger.
func DefaultConfig() Config {
	return Config{
		FrameLength:   DefaultFrameLength,
		Backend:       fftengine.Default,
		Window:        window.TypeHann,
		Normalization: NormInverseSquare,
		Logger:        zap.NewNop(),
	}
}

// WithFrameLength sets the frame length N. New rejects odd values and
// values below 2.
func WithFrameLength(n int) Option {
	return func(cfg *Config) {
		cfg.FrameLength = n
	}
}

// WithBackend selects the FFT engine. A nil factory resolves name through
// fftengine.Lookup when the instance is built; a non-nil factory is used
// directly and name only labels it.
func WithBackend(name string, factory fftengine.Factory) Option {
	return func(cfg *Config) {
		cfg.Backend = name
		cfg.Factory = factory
	}
}

// WithWindow sets the analysis window.
func WithWindow(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}

// WithNormalization sets the power normalization.
func WithNormalization(n Normalization) Option {
	return func(cfg *Config) {
		if n == NormInverseSquare || n == NormInverseLength {
			cfg.Normalization = n
		}
	}
}

// WithLogger sets the logger for lifecycle events. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
