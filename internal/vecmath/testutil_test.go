package vecmath

import (
	"fmt"
	"math"
)

// Test helper functions shared across all test files

func constant(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func requireAll(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, name string, got []float32, want float32,
) {
	t.Helper()
	for i, v := range got {
		if v != want {
			t.Fatalf("%s[%d] = %v, want %v", name, i, v, want)
		}
	}
}

func sameBits(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}

func sizeStr(n int) string {
	return fmt.Sprintf("n=%d", n)
}
