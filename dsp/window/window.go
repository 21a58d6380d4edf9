package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
)

// Cosine-sum coefficients, w(x) = sum_k c[k]·cos(2πkx).
var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name                string
	ENBW                float64
	HighestSidelobe     float64
	CoherentGain        float64
	CoherentGainSquared float64
}

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "Rectangular", ENBW: 1, HighestSidelobe: -13.3, CoherentGain: 1, CoherentGainSquared: 1},
	TypeHann:                {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeHamming:             {Name: "Hamming", ENBW: 1.363, HighestSidelobe: -42.7, CoherentGain: 0.54, CoherentGainSquared: 0.2916},
	TypeBlackman:            {Name: "Blackman", ENBW: 1.727, HighestSidelobe: -58.1, CoherentGain: 0.42, CoherentGainSquared: 0.1764},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris", ENBW: 2.004, HighestSidelobe: -92, CoherentGain: 0.35875, CoherentGainSquared: 0.1287},
}

// String returns the display name of the window type.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a case-insensitive name such as "hann" or
// "blackman-harris" to a window type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect", "boxcar":
		return TypeRectangular, nil
	case "hann", "hanning":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	case "blackman-harris", "blackmanharris", "bh4":
		return TypeBlackmanHarris4Term, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
//
// The symmetric form is the default: w[0] and w[length-1] are the two
// window edges, so a symmetric Hann starts and ends at zero.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic))
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Types lists every supported window type in declaration order.
func Types() []Type {
	return []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeBlackmanHarris4Term}
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}
	return Generate(TypeHann, size, opts...), nil
}

// CoherentGain returns sum(w[n]) / N, the DC amplitude response of a window.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeBlackmanHarris4Term:
		return cosineFromCoeffs(x, blackmanHarris4Coeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
