package testutil

import (
	"math"
	"math/cmplx"
)

// DampedSinusoid evaluates a*exp(i*phase)*exp((2*pi*i*freq - damping)*k/sw)
// sample by sample, without any shared basis. It is the reference FID for a
// single component.
func DampedSinusoid(amplitude, phase, freq, damping, sw float64, length int) []complex128 {
	out := make([]complex128, length)
	for k := range out {
		t := float64(k) / sw
		mag := amplitude * math.Exp(-damping*t)
		out[k] = cmplx.Rect(mag, phase+2*math.Pi*freq*t)
	}
	return out
}

// Sum returns the elementwise sum of equally long signals.
func Sum(signals ...[]complex128) []complex128 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]complex128, len(signals[0]))
	for _, s := range signals {
		for k := range out {
			out[k] += s[k]
		}
	}
	return out
}
