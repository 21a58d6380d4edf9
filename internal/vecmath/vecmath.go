// Package vecmath provides the float32 elementwise kernels used by the
// spectrograph pipeline.
//
// Two layers are exposed:
//
//   - slice kernels (Copy, Add, Mul, Square, Sqrt) over equal-length slices of
//     any length, panicking on mismatch;
//   - fixed-width kernels (Copy16, Add64, ...) over array pointers, plus tiled
//     helpers that walk a longer buffer in whole tiles of that width.
//
// All implementations produce results bit-identical to a straightforward
// IEEE-754 single precision loop. The implementation is chosen once, on first
// use, from the kernel registry.
package vecmath

import (
	"sync"

	"github.com/cwbudde/algo-spectrograph/internal/vecmath/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	// Cached kernel set (initialized once, used many times)
	impl     *registry.OpEntry
	implOnce sync.Once
)

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vecmath: no kernel implementation registered (missing generic fallback?)")
	}
	if !entry.Complete() {
		panic("vecmath: selected implementation " + entry.Name + " is missing operations")
	}
	impl = entry
}

func kernels() *registry.OpEntry {
	implOnce.Do(initKernels)
	return impl
}

// Implementation returns the name of the active kernel set.
func Implementation() string {
	return kernels().Name
}

// Copy performs dst[i] = src[i].
// Slices must have equal length. Panics if lengths differ.
func Copy(dst, src []float32) {
	kernels().Copy(dst, src)
}

// Add performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func Add(dst, a, b []float32) {
	kernels().Add(dst, a, b)
}

// Mul performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func Mul(dst, a, b []float32) {
	kernels().Mul(dst, a, b)
}

// Square performs dst[i] = src[i] * src[i].
// Slices must have equal length. Panics if lengths differ.
func Square(dst, src []float32) {
	kernels().Square(dst, src)
}

// Sqrt performs dst[i] = sqrt(src[i]), correctly rounded.
// Slices must have equal length. Panics if lengths differ.
func Sqrt(dst, src []float32) {
	kernels().Sqrt(dst, src)
}
