package core

import (
	"math"
	"testing"
)

func TestApplyAcquisitionOptions(t *testing.T) {
	cfg := ApplyAcquisitionOptions(WithSampleCount(1024), WithSpectralWidth(5000), WithOffset(-120))
	if cfg.SampleCount != 1024 {
		t.Fatalf("sample count = %d, want 1024", cfg.SampleCount)
	}
	if cfg.SpectralWidth != 5000 {
		t.Fatalf("spectral width = %v, want 5000", cfg.SpectralWidth)
	}
	if cfg.Offset != -120 {
		t.Fatalf("offset = %v, want -120", cfg.Offset)
	}
}

func TestAcquisitionOptionsKeepRawValues(t *testing.T) {
	cfg := ApplyAcquisitionOptions(
		WithSampleCount(0),
		WithSpectralWidth(-5),
		WithOffset(math.Inf(1)),
		nil,
	)
	if cfg.SampleCount != 0 {
		t.Fatalf("sample count = %d, want 0", cfg.SampleCount)
	}
	if cfg.SpectralWidth != -5 {
		t.Fatalf("spectral width = %v, want -5", cfg.SpectralWidth)
	}
	if !math.IsInf(cfg.Offset, 1) {
		t.Fatalf("offset = %v, want +Inf", cfg.Offset)
	}
}

func TestAcquisitionTiming(t *testing.T) {
	cfg := ApplyAcquisitionOptions(WithSampleCount(512), WithSpectralWidth(20))
	if math.Abs(cfg.Dwell()-0.05) > 1e-15 {
		t.Fatalf("dwell = %v, want 0.05", cfg.Dwell())
	}
	if math.Abs(cfg.Duration()-25.6) > 1e-12 {
		t.Fatalf("duration = %v, want 25.6", cfg.Duration())
	}
}
