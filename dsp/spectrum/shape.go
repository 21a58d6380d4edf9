package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RolloffFraction is the share of spectral energy below the rolloff
// frequency reported by [Describe].
const RolloffFraction = 0.85

// Shape holds spectral shape descriptors of one frame. All frequencies are
// in Hz.
type Shape struct {
	Centroid  float64 // magnitude-weighted mean frequency
	Spread    float64 // magnitude-weighted standard deviation around Centroid
	Flatness  float64 // Wiener entropy of bins 1..N/2, 0..1
	Rolloff   float64 // frequency below which RolloffFraction of the energy lies
	Bandwidth float64 // 3 dB width around the strongest bin
}

// Describe computes shape descriptors of a log power spectrum of
// frameLen/2+1 bins. Values are converted to linear magnitude first, so a
// spectrum that is zero everywhere (all -Inf dB) yields the zero Shape.
func Describe[T Sample](logPower []T, frameLen int, sampleRate float64) (Shape, error) {
	freqs, err := Frequencies(frameLen, sampleRate)
	if err != nil {
		return Shape{}, err
	}
	if len(logPower) != len(freqs) {
		return Shape{}, fmt.Errorf("spectrum has %d bins, frame length %d needs %d", len(logPower), frameLen, len(freqs))
	}

	mag := magnitudes(logPower)
	if floats.Sum(mag) == 0 {
		return Shape{}, nil
	}

	var s Shape
	s.Centroid, s.Spread = stat.PopMeanStdDev(freqs, mag)
	s.Flatness = flatness(mag)
	s.Rolloff = rolloff(mag, freqs, RolloffFraction)
	s.Bandwidth = bandwidth(mag, freqs)
	return s, nil
}

// magnitudes maps dB power values to linear magnitude, 10^(dB/20).
func magnitudes[T Sample](logPower []T) []float64 {
	mag := make([]float64, len(logPower))
	for i, v := range logPower {
		mag[i] = math.Pow(10, float64(v)/20)
	}
	return mag
}

// flatness skips the DC bin. A zero bin makes the geometric mean and the
// result zero.
func flatness(mag []float64) float64 {
	if len(mag) < 2 {
		return 0
	}
	ac := mag[1:]
	mean := stat.Mean(ac, nil)
	if mean == 0 {
		return 0
	}
	for _, v := range ac {
		if v == 0 {
			return 0
		}
	}
	return stat.GeometricMean(ac, nil) / mean
}

func rolloff(mag, freqs []float64, fraction float64) float64 {
	threshold := fraction * floats.Dot(mag, mag)
	cum := 0.0
	for i, v := range mag {
		cum += v * v
		if cum >= threshold {
			return freqs[i]
		}
	}
	return freqs[len(freqs)-1]
}

// bandwidth walks out from the strongest bin to the first crossings of
// peak/sqrt(2) on either side, interpolating linearly between bins. A side
// without a crossing extends to the band edge.
func bandwidth(mag, freqs []float64) float64 {
	peak := floats.MaxIdx(mag)
	threshold := mag[peak] / math.Sqrt2

	lower := freqs[0]
	for i := peak; i >= 1; i-- {
		if mag[i-1] <= threshold && mag[i] > threshold {
			lower = crossing(freqs[i-1], freqs[i], mag[i-1], mag[i], threshold)
			break
		}
	}

	upper := freqs[len(freqs)-1]
	for i := peak; i < len(mag)-1; i++ {
		if mag[i+1] <= threshold && mag[i] > threshold {
			upper = crossing(freqs[i], freqs[i+1], mag[i], mag[i+1], threshold)
			break
		}
	}

	return math.Max(0, upper-lower)
}

func crossing(f0, f1, m0, m1, threshold float64) float64 {
	if m1 == m0 {
		return (f0 + f1) / 2
	}
	return f0 + (threshold-m0)/(m1-m0)*(f1-f0)
}
