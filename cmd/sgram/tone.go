package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectrograph/dsp/spectrograph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

type toneFlags struct {
	freq      float64
	amplitude float64
	quantize  bool
	verify    bool
	tolerance float64
}

func (a *app) newToneCmd() *cobra.Command {
	var f toneFlags

	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Print the spectrum of one synthesized sine frame",
		Long: `Synthesize one frame of a sine tone at the configured sample rate and
print its log power spectrum. With --quantize the samples are truncated to
16-bit integers first. With --verify the result is compared against a
float64 reference computation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTone(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&f.freq, "freq", 1000, "tone frequency in Hz")
	flags.Float64Var(&f.amplitude, "amplitude", 16384, "peak amplitude")
	flags.BoolVar(&f.quantize, "quantize", true, "truncate samples to 16-bit integers")
	flags.BoolVar(&f.verify, "verify", false, "compare against the float64 reference")
	flags.Float64Var(&f.tolerance, "tolerance", 0.05, "maximum allowed deviation in dB for --verify")

	return cmd
}

func (a *app) runTone(cmd *cobra.Command, f toneFlags) error {
	if !(f.freq >= 0) || f.freq > a.cfg.SampleRate/2 {
		return fmt.Errorf("tone frequency must be in [0, %v]: %v", a.cfg.SampleRate/2, f.freq)
	}

	frame := synthesizeTone(f.freq, a.cfg.SampleRate, f.amplitude, a.cfg.FrameLength, f.quantize)

	opts, err := a.cfg.spectrographOptions(a.log)
	if err != nil {
		return err
	}
	s, err := spectrograph.New(opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	row := make([]float32, s.Bins())
	if err := s.Transform(row, frame); err != nil {
		return err
	}

	if f.verify {
		ref, err := spectrograph.Reference(widen(frame), opts...)
		if err != nil {
			return err
		}
		dev := floats.Distance(widen(row), ref, math.Inf(1))
		a.log.Info("reference check", zap.Float64("max_deviation_db", dev), zap.Float64("tolerance_db", f.tolerance))
		if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "max deviation from reference: %.6f dB\n", dev); err != nil {
			return err
		}
		if dev > f.tolerance {
			return fmt.Errorf("deviation %.6f dB exceeds tolerance %.6f dB", dev, f.tolerance)
		}
	}

	rep, err := buildReport(a.cfg, s.Backend(), [][]float32{row})
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), a.cfg.Output, rep)
}

func synthesizeTone(freq, sampleRate, amplitude float64, n int, quantize bool) []float32 {
	out := make([]float32, n)
	step := 2 * math.Pi * freq / sampleRate
	for i := range out {
		v := amplitude * math.Sin(step*float64(i))
		if quantize {
			v = float64(int16(math.Max(math.MinInt16, math.Min(math.MaxInt16, v))))
		}
		out[i] = float32(v)
	}
	return out
}

func widen(src []float32) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}
