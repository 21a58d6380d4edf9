package spectrograph

import (
	"testing"

	"github.com/cwbudde/algo-spectrograph/dsp/fftengine"
	"github.com/cwbudde/algo-spectrograph/internal/testutil"
)

func BenchmarkTransform(b *testing.B) {
	for _, backend := range fftengine.Names() {
		for _, n := range []int{128, 1024} {
			b.Run(backend+"/"+sizeStr(n), func(b *testing.B) {
				s, err := New(WithFrameLength(n), WithBackend(backend, nil))
				if err != nil {
					b.Fatal(err)
				}
				defer s.Close()

				src := testutil.DeterministicNoise[float32](1, 1, n)
				dst := make([]float32, s.Bins())

				b.SetBytes(int64(n * 4))
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if err := s.Transform(dst, src); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkReference(b *testing.B) {
	src := testutil.DeterministicNoise[float64](1, 1, 128)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Reference(src); err != nil {
			b.Fatal(err)
		}
	}
}
