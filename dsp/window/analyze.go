package window

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// analysisPad is the zero-padding factor used to resolve the window
// spectrum between bins.
const analysisPad = 8

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// ScallopLossdB is the response half a bin away from DC relative to DC.
	ScallopLossdB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the position of the first spectral null in bins,
	// resolved to 1/8 bin.
	FirstMinimumBins float64
}

// Analyze measures spectral properties of the given window coefficients
// from a zero-padded real FFT.
func Analyze(coeffs []float64) (Analysis, error) {
	cg, err := CoherentGain(coeffs)
	if err != nil {
		return Analysis{}, err
	}
	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	n := len(coeffs)
	padded := make([]float64, n*analysisPad)
	copy(padded, coeffs)

	spec := fourier.NewFFT(len(padded)).Coefficients(nil, padded)
	mag := make([]float64, len(spec))
	for i, c := range spec {
		mag[i] = real(c)*real(c) + imag(c)*imag(c)
	}

	dc := mag[0]
	res := Analysis{
		CoherentGain:      cg,
		ENBW:              enbw,
		ScallopLossdB:     powerRatiodB(mag[analysisPad/2], dc),
		HighestSidelobedB: math.Inf(-1),
	}

	k := 1
	for k < len(mag) && mag[k] <= mag[k-1] {
		k++
	}
	if k >= len(mag) {
		return res, nil
	}
	res.FirstMinimumBins = float64(k-1) / analysisPad

	peak := 0.0
	for _, v := range mag[k-1:] {
		peak = math.Max(peak, v)
	}
	res.HighestSidelobedB = powerRatiodB(peak, dc)

	return res, nil
}

func powerRatiodB(p, ref float64) float64 {
	if p <= 0 || ref <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(p/ref)
}
