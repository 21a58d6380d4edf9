package fftengine

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"reflect"
	"testing"
)

func naiveDFT(src []complex64) []complex128 {
	n := len(src)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range src {
			angle := -2 * math.Pi * float64(k*j%n) / float64(n)
			sum += complex128(v) * cmplx.Rect(1, angle)
		}
		out[k] = sum
	}
	return out
}

func testSignal(n int) []complex64 {
	src := make([]complex64, n)
	for i := range src {
		re := math.Sin(2*math.Pi*3*float64(i)/float64(n)) + 0.25*math.Cos(2*math.Pi*float64(i)/7)
		src[i] = complex(float32(re), float32(0.1*float64(i%5)))
	}
	return src
}

func sizeStr(n int) string {
	return fmt.Sprintf("n=%d", n)
}

func TestBackendsMatchNaiveDFT(t *testing.T) {
	for _, name := range Names() {
		factory, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}

		for _, n := range []int{8, 64, 128, 256} {
			t.Run(name+"/"+sizeStr(n), func(t *testing.T) {
				eng, err := factory(n)
				if err != nil {
					t.Fatalf("factory(%d): %v", n, err)
				}
				if eng.Len() != n {
					t.Fatalf("Len() = %d, want %d", eng.Len(), n)
				}

				src := testSignal(n)
				want := naiveDFT(src)
				dst := make([]complex64, n)
				if err := eng.Forward(dst, src); err != nil {
					t.Fatalf("Forward: %v", err)
				}

				tol := 1e-5 * float64(n)
				for k := range dst {
					if d := cmplx.Abs(complex128(dst[k]) - want[k]); d > tol {
						t.Fatalf("bin %d: got %v want %v (|diff| %g)", k, dst[k], want[k], d)
					}
				}
			})
		}
	}
}

func TestBackendsNonPowerOfTwo(t *testing.T) {
	for _, factory := range []Factory{Gonum, GoDSP} {
		eng, err := factory(12)
		if err != nil {
			t.Fatal(err)
		}
		src := testSignal(12)
		dst := make([]complex64, 12)
		if err := eng.Forward(dst, src); err != nil {
			t.Fatal(err)
		}
		want := naiveDFT(src)
		for k := range dst {
			if d := cmplx.Abs(complex128(dst[k]) - want[k]); d > 1e-4 {
				t.Fatalf("bin %d: got %v want %v", k, dst[k], want[k])
			}
		}
	}
}

func TestForwardInPlace(t *testing.T) {
	for _, name := range Names() {
		factory, _ := Lookup(name)
		eng, err := factory(16)
		if err != nil {
			t.Fatal(err)
		}

		buf := testSignal(16)
		want := naiveDFT(buf)
		if err := eng.Forward(buf, buf); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for k := range buf {
			if d := cmplx.Abs(complex128(buf[k]) - want[k]); d > 1e-4 {
				t.Fatalf("%s bin %d: got %v want %v", name, k, buf[k], want[k])
			}
		}
	}
}

func TestImpulseIsFlat(t *testing.T) {
	for _, name := range Names() {
		factory, _ := Lookup(name)
		eng, err := factory(32)
		if err != nil {
			t.Fatal(err)
		}

		src := make([]complex64, 32)
		src[0] = 1
		dst := make([]complex64, 32)
		if err := eng.Forward(dst, src); err != nil {
			t.Fatal(err)
		}
		for k, v := range dst {
			if math.Abs(float64(real(v))-1) > 1e-6 || math.Abs(float64(imag(v))) > 1e-6 {
				t.Fatalf("%s bin %d = %v, want 1", name, k, v)
			}
		}
	}
}

func TestLengthErrors(t *testing.T) {
	for _, name := range Names() {
		factory, _ := Lookup(name)

		for _, n := range []int{0, -1} {
			if _, err := factory(n); !errors.Is(err, ErrLength) {
				t.Fatalf("%s factory(%d) err = %v, want ErrLength", name, n, err)
			}
		}

		eng, err := factory(8)
		if err != nil {
			t.Fatal(err)
		}
		if err := eng.Forward(make([]complex64, 8), make([]complex64, 4)); !errors.Is(err, ErrLength) {
			t.Fatalf("%s short src err = %v, want ErrLength", name, err)
		}
		if err := eng.Forward(make([]complex64, 16), make([]complex64, 8)); !errors.Is(err, ErrLength) {
			t.Fatalf("%s long dst err = %v, want ErrLength", name, err)
		}
	}
}

func TestRegistry(t *testing.T) {
	if got, want := Names(), []string{NameAlgoFFT, NameGoDSP, NameGonum}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", Default, false},
		{"  GONUM ", NameGonum, false},
		{"godsp", NameGoDSP, false},
		{"fftw", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownBackend) {
				t.Fatalf("ParseBackend(%q) err = %v, want ErrUnknownBackend", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseBackend(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}

	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("Lookup(nope) err = %v", err)
	}
}

func BenchmarkForward(b *testing.B) {
	for _, name := range Names() {
		factory, _ := Lookup(name)
		for _, n := range []int{128, 1024} {
			b.Run(name+"/"+sizeStr(n), func(b *testing.B) {
				eng, err := factory(n)
				if err != nil {
					b.Fatal(err)
				}
				src := testSignal(n)
				dst := make([]complex64, n)

				b.SetBytes(int64(n * 8))
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if err := eng.Forward(dst, src); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
