package fftengine

import "gonum.org/v1/gonum/dsp/fourier"

type gonumEngine struct {
	fft *fourier.CmplxFFT
	buf widening
}

// Gonum creates an engine backed by gonum's complex FFT.
func Gonum(n int) (Engine, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	return &gonumEngine{fft: fourier.NewCmplxFFT(n), buf: newWidening(n)}, nil
}

func (e *gonumEngine) Len() int { return e.fft.Len() }

func (e *gonumEngine) Forward(dst, src []complex64) error {
	if err := e.buf.load(dst, src); err != nil {
		return err
	}
	store(dst, e.fft.Coefficients(e.buf.out, e.buf.in))
	return nil
}
