package spectrograph_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectrograph/dsp/spectrograph"
)

func ExampleSpectrograph_Transform() {
	s, err := spectrograph.New()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer s.Close()

	// 1 kHz tone sampled at 8 kHz, stored as 16-bit PCM.
	src := make([]float32, s.FrameLen())
	for i := range src {
		src[i] = float32(int16(16384 * math.Sin(2*math.Pi*1000*float64(i)/8000)))
	}

	dst := make([]float32, s.Bins())
	if err := s.Transform(dst, src); err != nil {
		fmt.Println(err)
		return
	}

	peak := 0
	for k, v := range dst {
		if v > dst[peak] {
			peak = k
		}
	}
	fmt.Printf("bins=%d peak=%d (%.0f Hz) %.1f dB\n", len(dst), peak, float64(peak)*8000/float64(s.FrameLen()), dst[peak])
	// Output:
	// bins=65 peak=16 (1000 Hz) 72.2 dB
}

func ExampleReference() {
	frame := make([]float64, 8)
	for i := range frame {
		frame[i] = 1
	}

	db, err := spectrograph.Reference(frame, spectrograph.WithNormalization(spectrograph.NormInverseLength))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", db[0])
	// Output:
	// 1.85
}
