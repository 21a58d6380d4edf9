package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[T, U Float](t testing.TB, got []T, want []U, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T Float](t testing.TB, data []T) {
	t.Helper()
	for i, v := range data {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T, U Float](a []T, b []U) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(Widen(a), Widen(b), math.Inf(1)), nil
}

// ArgMax returns the index of the largest element, or -1 for an empty slice.
func ArgMax[T Float](data []T) int {
	if len(data) == 0 {
		return -1
	}
	return floats.MaxIdx(Widen(data))
}
