package fid

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Signal is a sequence of complex samples in time order.
type Signal []complex128

// Len returns the number of samples.
func (s Signal) Len() int { return len(s) }

// At returns sample k.
func (s Signal) At(k int) complex128 { return s[k] }

// Real returns the real part of every sample.
func (s Signal) Real() []float64 {
	out := make([]float64, len(s))
	for k, v := range s {
		out[k] = real(v)
	}
	return out
}

// Imag returns the imaginary part of every sample.
func (s Signal) Imag() []float64 {
	out := make([]float64, len(s))
	for k, v := range s {
		out[k] = imag(v)
	}
	return out
}

// Parts returns the real and imaginary parts as two slices.
func (s Signal) Parts() (re, im []float64) {
	re = make([]float64, len(s))
	im = make([]float64, len(s))
	for k, v := range s {
		re[k] = real(v)
		im[k] = imag(v)
	}
	return re, im
}

// Magnitude returns |s[k]| for every sample.
func (s Signal) Magnitude() []float64 {
	if len(s) == 0 {
		return nil
	}
	re, im := s.Parts()
	out := make([]float64, len(s))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |s[k]|^2 for every sample.
func (s Signal) Power() []float64 {
	if len(s) == 0 {
		return nil
	}
	re, im := s.Parts()
	out := make([]float64, len(s))
	vecmath.Power(out, re, im)
	return out
}

// Normalize returns a copy of s scaled so that the largest |s[k]| equals
// targetPeak. An all-zero signal is returned as zeros.
func (s Signal) Normalize(targetPeak float64) (Signal, error) {
	if !(targetPeak >= 0) {
		return nil, fmt.Errorf("fid: normalize target peak must be >= 0: %v", targetPeak)
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("fid: normalize input must not be empty")
	}

	peak := 0.0
	for _, m := range s.Magnitude() {
		if m > peak {
			peak = m
		}
	}

	out := make(Signal, len(s))
	if peak == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := complex(targetPeak/peak, 0)
	for k, v := range s {
		out[k] = v * scale
	}
	return out, nil
}
