// Package unrolled provides pure Go float32 kernels that process eight lanes
// per iteration.
//
// Each block is resliced to a fixed capacity so the compiler can drop the
// per-element bounds checks; the remainder is handled by a scalar tail.
package unrolled

import "math"

const lanes = 8

// Copy performs dst[i] = src[i].
// Slices must have equal length. Panics if lengths differ.
func Copy(dst, src []float32) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	n := len(dst) &^ (lanes - 1)
	for i := 0; i < n; i += lanes {
		d := dst[i : i+lanes : i+lanes]
		s := src[i : i+lanes : i+lanes]
		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], s[3]
		d[4], d[5], d[6], d[7] = s[4], s[5], s[6], s[7]
	}
	for i := n; i < len(dst); i++ {
		dst[i] = src[i]
	}
}

// Add performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func Add(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	n := len(dst) &^ (lanes - 1)
	for i := 0; i < n; i += lanes {
		d := dst[i : i+lanes : i+lanes]
		x := a[i : i+lanes : i+lanes]
		y := b[i : i+lanes : i+lanes]
		d[0] = x[0] + y[0]
		d[1] = x[1] + y[1]
		d[2] = x[2] + y[2]
		d[3] = x[3] + y[3]
		d[4] = x[4] + y[4]
		d[5] = x[5] + y[5]
		d[6] = x[6] + y[6]
		d[7] = x[7] + y[7]
	}
	for i := n; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
}

// Mul performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func Mul(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	n := len(dst) &^ (lanes - 1)
	for i := 0; i < n; i += lanes {
		d := dst[i : i+lanes : i+lanes]
		x := a[i : i+lanes : i+lanes]
		y := b[i : i+lanes : i+lanes]
		d[0] = x[0] * y[0]
		d[1] = x[1] * y[1]
		d[2] = x[2] * y[2]
		d[3] = x[3] * y[3]
		d[4] = x[4] * y[4]
		d[5] = x[5] * y[5]
		d[6] = x[6] * y[6]
		d[7] = x[7] * y[7]
	}
	for i := n; i < len(dst); i++ {
		dst[i] = a[i] * b[i]
	}
}

// Square performs dst[i] = src[i] * src[i].
// Slices must have equal length. Panics if lengths differ.
func Square(dst, src []float32) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	n := len(dst) &^ (lanes - 1)
	for i := 0; i < n; i += lanes {
		d := dst[i : i+lanes : i+lanes]
		s := src[i : i+lanes : i+lanes]
		d[0] = s[0] * s[0]
		d[1] = s[1] * s[1]
		d[2] = s[2] * s[2]
		d[3] = s[3] * s[3]
		d[4] = s[4] * s[4]
		d[5] = s[5] * s[5]
		d[6] = s[6] * s[6]
		d[7] = s[7] * s[7]
	}
	for i := n; i < len(dst); i++ {
		x := src[i]
		dst[i] = x * x
	}
}

// Sqrt performs dst[i] = sqrt(src[i]), correctly rounded.
// Slices must have equal length. Panics if lengths differ.
func Sqrt(dst, src []float32) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	n := len(dst) &^ (lanes - 1)
	for i := 0; i < n; i += lanes {
		d := dst[i : i+lanes : i+lanes]
		s := src[i : i+lanes : i+lanes]
		d[0] = float32(math.Sqrt(float64(s[0])))
		d[1] = float32(math.Sqrt(float64(s[1])))
		d[2] = float32(math.Sqrt(float64(s[2])))
		d[3] = float32(math.Sqrt(float64(s[3])))
		d[4] = float32(math.Sqrt(float64(s[4])))
		d[5] = float32(math.Sqrt(float64(s[5])))
		d[6] = float32(math.Sqrt(float64(s[6])))
		d[7] = float32(math.Sqrt(float64(s[7])))
	}
	for i := n; i < len(dst); i++ {
		dst[i] = float32(math.Sqrt(float64(src[i])))
	}
}
