package spectrograph

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectrograph/dsp/window"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// Reference computes the log power spectrum of src entirely in float64
// using gonum's real FFT. The frame length is len(src); the window and
// normalization options apply, frame length and backend options are
// ignored.
//
// It allocates on every call and exists to check Transform.
func Reference(src []float64, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)

	n := len(src)
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("%w: %d (must be even and >= 2)", ErrInvalidFrameLength, n)
	}

	frame := make([]float64, n)
	copy(frame, src)
	if err := window.ApplyCoefficientsInPlace(frame, window.Generate(cfg.Window, n)); err != nil {
		return nil, err
	}

	spec := fourier.NewFFT(n).Coefficients(nil, frame)

	bins := OutputLen(n)
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k, c := range spec[:bins] {
		re[k] = real(c)
		im[k] = imag(c)
	}

	out := make([]float64, bins)
	vecmath.Power(out, re, im)
	floats.Scale(cfg.Normalization.Scale(n), out)

	for k, p := range out {
		out[k] = 10 * math.Log10(math.Max(p, float64(PowerFloor)))
	}

	return out, nil
}
