package testutil

import (
	"math"
	"math/rand"
)

// Float is the sample type set accepted by the helpers.
type Float interface {
	~float32 | ~float64
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine[T Float](freqHz, sampleRate, amplitude float64, length int) []T {
	out := make([]T, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = T(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// QuantizedSine generates a sine wave stored as 16-bit PCM, truncating
// each sample toward zero, and returns the integer values as float32.
func QuantizedSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(int16(amplitude * math.Sin(step*float64(i))))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise[T Float](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse[T Float](length, pos int) []T {
	out := make([]T, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC[T Float](value T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Widen converts samples to float64.
func Widen[T Float](src []T) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}
