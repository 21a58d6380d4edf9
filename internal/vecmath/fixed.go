package vecmath

const (
	// CopyWidth is the tile width of the copy kernel.
	CopyWidth = 16

	// ArithWidth is the tile width of the arithmetic kernels.
	//
	// The spectrograph's power stage works on N/2+1 bins, which is never a
	// whole number of tiles, so it runs on the slice kernels. The tiled
	// forms serve the frame-length stages and tile-aligned callers.
	ArithWidth = 64
)

// Copy16 copies one 16-float tile.
func Copy16(dst, src *[CopyWidth]float32) {
	kernels().Copy(dst[:], src[:])
}

// Add64 adds one 64-float tile: dst[i] = a[i] + b[i].
func Add64(dst, a, b *[ArithWidth]float32) {
	kernels().Add(dst[:], a[:], b[:])
}

// Mul64 multiplies one 64-float tile: dst[i] = a[i] * b[i].
func Mul64(dst, a, b *[ArithWidth]float32) {
	kernels().Mul(dst[:], a[:], b[:])
}

// Square64 squares one 64-float tile.
func Square64(dst, src *[ArithWidth]float32) {
	kernels().Square(dst[:], src[:])
}

// Sqrt64 takes the square root of one 64-float tile.
func Sqrt64(dst, src *[ArithWidth]float32) {
	kernels().Sqrt(dst[:], src[:])
}

// CopyTiled16 copies src into dst in 16-float tiles.
// Both lengths must be equal and a multiple of 16.
func CopyTiled16(dst, src []float32) {
	checkTiled(len(dst), CopyWidth, len(src))
	for i := 0; i < len(dst); i += CopyWidth {
		Copy16((*[CopyWidth]float32)(dst[i:]), (*[CopyWidth]float32)(src[i:]))
	}
}

// AddTiled64 adds a and b into dst in 64-float tiles.
// All lengths must be equal and a multiple of 64.
func AddTiled64(dst, a, b []float32) {
	checkTiled(len(dst), ArithWidth, len(a), len(b))
	for i := 0; i < len(dst); i += ArithWidth {
		Add64((*[ArithWidth]float32)(dst[i:]), (*[ArithWidth]float32)(a[i:]), (*[ArithWidth]float32)(b[i:]))
	}
}

// MulTiled64 multiplies a and b into dst in 64-float tiles.
// All lengths must be equal and a multiple of 64.
func MulTiled64(dst, a, b []float32) {
	checkTiled(len(dst), ArithWidth, len(a), len(b))
	for i := 0; i < len(dst); i += ArithWidth {
		Mul64((*[ArithWidth]float32)(dst[i:]), (*[ArithWidth]float32)(a[i:]), (*[ArithWidth]float32)(b[i:]))
	}
}

// SquareTiled64 squares src into dst in 64-float tiles.
// Both lengths must be equal and a multiple of 64.
func SquareTiled64(dst, src []float32) {
	checkTiled(len(dst), ArithWidth, len(src))
	for i := 0; i < len(dst); i += ArithWidth {
		Square64((*[ArithWidth]float32)(dst[i:]), (*[ArithWidth]float32)(src[i:]))
	}
}

// SqrtTiled64 takes square roots of src into dst in 64-float tiles.
// Both lengths must be equal and a multiple of 64.
func SqrtTiled64(dst, src []float32) {
	checkTiled(len(dst), ArithWidth, len(src))
	for i := 0; i < len(dst); i += ArithWidth {
		Sqrt64((*[ArithWidth]float32)(dst[i:]), (*[ArithWidth]float32)(src[i:]))
	}
}

func checkTiled(n, width int, others ...int) {
	if n%width != 0 {
		panic("vecmath: length is not a multiple of the tile width")
	}
	for _, m := range others {
		if m != n {
			panic("vecmath: slice length mismatch")
		}
	}
}
