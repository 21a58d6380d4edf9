package spectrum

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var errEmptySpectrum = errors.New("spectrum must not be empty")

// Sample is the element type set of a spectrum.
type Sample interface {
	~float32 | ~float64
}

// BinFrequency returns the centre frequency in Hz of bin k for a frame of
// frameLen samples at sampleRate.
func BinFrequency(k, frameLen int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(frameLen)
}

// Frequencies returns the centre frequencies of bins 0..frameLen/2.
func Frequencies(frameLen int, sampleRate float64) ([]float64, error) {
	if frameLen < 2 {
		return nil, fmt.Errorf("spectrum frame length must be >= 2: %d", frameLen)
	}
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("spectrum sample rate must be > 0: %f", sampleRate)
	}

	bins := frameLen/2 + 1
	return floats.Span(make([]float64, bins), 0, BinFrequency(bins-1, frameLen, sampleRate)), nil
}

// Peak describes the strongest bin of a log power spectrum.
type Peak struct {
	// Bin is the index of the largest value.
	Bin int
	// Offset is the parabolic-interpolation correction in bins, in [-0.5, 0.5].
	Offset float64
	// LevelDB is the interpolated peak level.
	LevelDB float64
}

// Position returns Bin + Offset.
func (p Peak) Position() float64 {
	return float64(p.Bin) + p.Offset
}

// Frequency converts the interpolated peak position to Hz.
func (p Peak) Frequency(frameLen int, sampleRate float64) float64 {
	return p.Position() * sampleRate / float64(frameLen)
}

// FindPeak locates the largest value of a dB spectrum and refines it by
// fitting a parabola through the peak and its two neighbours. Edge bins
// and NaN neighbours are reported without refinement.
func FindPeak[T Sample](logPower []T) (Peak, error) {
	if len(logPower) == 0 {
		return Peak{}, errEmptySpectrum
	}

	best := 0
	for k, v := range logPower {
		if v > logPower[best] || math.IsNaN(float64(logPower[best])) {
			best = k
		}
	}

	p := Peak{Bin: best, LevelDB: float64(logPower[best])}
	if best == 0 || best == len(logPower)-1 {
		return p, nil
	}

	a := float64(logPower[best-1])
	b := float64(logPower[best])
	c := float64(logPower[best+1])
	den := a - 2*b + c
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return p, nil
	}

	offset := 0.5 * (a - c) / den
	offset = math.Max(-0.5, math.Min(0.5, offset))
	p.Offset = offset
	p.LevelDB = b - 0.25*(a-c)*offset

	return p, nil
}
