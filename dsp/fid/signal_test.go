package fid

import (
	"math"
	"slices"
	"testing"
)

func TestSignalParts(t *testing.T) {
	s := Signal{3 + 4i, -1 - 2i, 0}

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if s.At(1) != -1-2i {
		t.Fatalf("At(1) = %v", s.At(1))
	}
	if !slices.Equal(s.Real(), []float64{3, -1, 0}) {
		t.Fatalf("Real = %v", s.Real())
	}
	if !slices.Equal(s.Imag(), []float64{4, -2, 0}) {
		t.Fatalf("Imag = %v", s.Imag())
	}

	re, im := s.Parts()
	if !slices.Equal(re, s.Real()) || !slices.Equal(im, s.Imag()) {
		t.Fatalf("Parts = %v, %v", re, im)
	}
}

func TestSignalMagnitudePower(t *testing.T) {
	s := Signal{3 + 4i, -6 + 8i, 0}

	mag := s.Magnitude()
	if len(mag) != 3 {
		t.Fatalf("len = %d, want 3", len(mag))
	}
	for i, want := range []float64{5, 10, 0} {
		if math.Abs(mag[i]-want) > 1e-12 {
			t.Fatalf("mag[%d] = %v, want %v", i, mag[i], want)
		}
	}

	pow := s.Power()
	for i, want := range []float64{25, 100} {
		if math.Abs(pow[i]-want) > 1e-12 {
			t.Fatalf("pow[%d] = %v, want %v", i, pow[i], want)
		}
	}

	var empty Signal
	if empty.Magnitude() != nil || empty.Power() != nil {
		t.Fatal("empty signal should give nil magnitude and power")
	}
}

func TestSignalNormalize(t *testing.T) {
	s := Signal{3 + 4i, -1, 0.5i}

	out, err := s.Normalize(1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	checks := []struct {
		got, want float64
	}{
		{real(out[0]), 0.6},
		{imag(out[0]), 0.8},
		{real(out[1]), -0.2},
		{imag(out[2]), 0.1},
	}
	for i, c := range checks {
		if math.Abs(c.got-c.want) > 1e-12 {
			t.Fatalf("check %d: got %v, want %v", i, c.got, c.want)
		}
	}
	if s[0] != 3+4i {
		t.Fatalf("input modified: %v", s[0])
	}

	zeros, err := Signal{0, 0}.Normalize(2)
	if err != nil {
		t.Fatalf("Normalize zeros: %v", err)
	}
	if !slices.Equal(zeros, Signal{0, 0}) {
		t.Fatalf("zeros = %v", zeros)
	}

	if _, err := s.Normalize(-1); err == nil {
		t.Fatal("expected error for negative peak")
	}
	if _, err := (Signal{}).Normalize(1); err == nil {
		t.Fatal("expected error for empty signal")
	}
}
