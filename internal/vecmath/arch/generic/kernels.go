package generic

import "math"

// Copy performs dst[i] = src[i].
// Slices must have equal length. Panics if lengths differ.
func Copy(dst, src []float32) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = src[i]
	}
}

// Add performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func Add(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Mul performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func Mul(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Square performs dst[i] = src[i] * src[i].
// Slices must have equal length. Panics if lengths differ.
func Square(dst, src []float32) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		x := src[i]
		dst[i] = x * x
	}
}

// Sqrt performs dst[i] = sqrt(src[i]).
//
// The float64 square root of a float32 operand rounds to the correctly
// rounded float32 result, so the conversion round trip is exact.
// Slices must have equal length. Panics if lengths differ.
func Sqrt(dst, src []float32) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = float32(math.Sqrt(float64(src[i])))
	}
}
