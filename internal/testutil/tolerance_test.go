package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []complex128{1, 2 + 2i, 3}
	b := []complex128{1, 2 + 2.1i, 3}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]complex128{1}, []complex128{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []complex128{1, 2i, 3 - 1i}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestRequireComplexNearlyEqualPasses(t *testing.T) {
	RequireComplexNearlyEqual(t, []complex128{1 + 1e-13i}, []complex128{1}, 1e-12)
	RequireSliceNearlyEqual(t, []float64{0.5}, []float64{0.5 + 1e-13}, 1e-12)
	RequireFinite(t, []complex128{0, 1i})
}
