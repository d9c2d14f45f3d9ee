package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Goertzel evaluates one term of the discrete Fourier transform of a complex
// sequence,
//
//	X(f) = sum_n x[n] exp(-2*pi*i*f*n/sampleRate),
//
// using the second-order Goertzel recurrence.
//
// The analyzer is stateful: Bin, Power and Magnitude describe all samples
// processed since the last Reset. Unlike an FFT bin, f need not lie on the
// N-point grid, and negative frequencies are distinct from positive ones
// because the input is complex.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	omega      float64
	coeff      float64
	s0, s1     complex128
	count      int
}

// NewGoertzel creates an analyzer for frequency in [-sampleRate/2, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpectralWidth, sampleRate)
	}
	if math.IsNaN(frequency) || math.Abs(frequency) > sampleRate/2 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency)
	}

	omega := 2 * math.Pi * frequency / sampleRate
	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		omega:      omega,
		coeff:      2 * math.Cos(omega),
	}, nil
}

// Frequency returns the analyzed frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// Count returns the number of samples processed since the last Reset.
func (g *Goertzel) Count() int { return g.count }

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
	g.count = 0
}

// ProcessSample updates the internal state with a single input sample.
func (g *Goertzel) ProcessSample(x complex128) {
	s := x + complex(g.coeff, 0)*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
	g.count++
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(x []complex128) {
	s0, s1 := g.s0, g.s1
	c := complex(g.coeff, 0)
	for _, v := range x {
		s := v + c*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
	g.count += len(x)
}

// Bin returns X(f) for the processed samples, phase-referenced to the first
// sample.
func (g *Goertzel) Bin() complex128 {
	if g.count == 0 {
		return 0
	}
	y := g.s0 - cmplx.Exp(complex(0, -g.omega))*g.s1
	return y * cmplx.Exp(complex(0, -g.omega*float64(g.count-1)))
}

// Magnitude returns |X(f)|.
func (g *Goertzel) Magnitude() float64 {
	return cmplx.Abs(g.Bin())
}

// Power returns |X(f)|^2.
func (g *Goertzel) Power() float64 {
	b := g.Bin()
	return real(b)*real(b) + imag(b)*imag(b)
}

// SingleBin returns X(frequency) of x in one call.
func SingleBin(x []complex128, frequency, sampleRate float64) (complex128, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}
	g.ProcessBlock(x)
	return g.Bin(), nil
}
