package fftengine

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

type algoEngine struct {
	plan *algofft.Plan[complex128]
	buf  widening
}

// AlgoFFT creates an engine backed by a precomputed algo-fft plan.
func AlgoFFT(n int) (Engine, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fftengine: algofft plan for size %d: %w", n, err)
	}

	return &algoEngine{plan: plan, buf: newWidening(n)}, nil
}

func (e *algoEngine) Len() int { return len(e.buf.in) }

func (e *algoEngine) Forward(dst, src []complex64) error {
	if err := e.buf.load(dst, src); err != nil {
		return err
	}
	if err := e.plan.Forward(e.buf.out, e.buf.in); err != nil {
		return fmt.Errorf("fftengine: algofft forward: %w", err)
	}
	store(dst, e.buf.out)
	return nil
}
