package fftengine

import "github.com/mjibson/go-dsp/fft"

// goDSPEngine allocates its output on every call; go-dsp has no
// plan or destination-buffer API.
type goDSPEngine struct {
	buf widening
}

// GoDSP creates an engine backed by go-dsp's FFT.
func GoDSP(n int) (Engine, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	return &goDSPEngine{buf: newWidening(n)}, nil
}

func (e *goDSPEngine) Len() int { return len(e.buf.in) }

func (e *goDSPEngine) Forward(dst, src []complex64) error {
	if err := e.buf.load(dst, src); err != nil {
		return err
	}
	store(dst, fft.FFT(e.buf.in))
	return nil
}
