package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fid/dsp/core"
)

var (
	// ErrEmptyInput reports a transform of zero samples.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrInvalidSpectralWidth reports a spectral width that is not a finite positive number.
	ErrInvalidSpectralWidth = errors.New("spectrum: spectral width must be finite and > 0")
	// ErrInvalidFrequency reports a Goertzel frequency outside the Nyquist band.
	ErrInvalidFrequency = errors.New("spectrum: frequency outside [-sw/2, sw/2]")
)

// Spectrum is a centred complex spectrum. Frequencies ascend from
// offset-sw/2 in steps of sw/len(Bins).
type Spectrum struct {
	Frequencies []float64
	Bins        []complex128
}

type transformConfig struct {
	size       int
	lb         float64
	firstPoint float64
}

// Option configures [Transform].
type Option func(*transformConfig)

// WithSize zero-fills the FID to at least n points. The transform length is
// rounded up to a power of two and never shorter than the input.
func WithSize(n int) Option {
	return func(cfg *transformConfig) {
		if n > 0 {
			cfg.size = n
		}
	}
}

// WithLineBroadening multiplies sample k by exp(-pi*lb*k/sw), widening every
// line by lb (in units of the spectral width).
func WithLineBroadening(lb float64) Option {
	return func(cfg *transformConfig) {
		if core.IsFinite(lb) {
			cfg.lb = lb
		}
	}
}

// WithFirstPointScale scales the first FID sample by c before the transform.
// A value of 0.5 removes the baseline offset caused by the discrete t=0 sample.
func WithFirstPointScale(c float64) Option {
	return func(cfg *transformConfig) {
		if core.IsFinite(c) {
			cfg.firstPoint = c
		}
	}
}

// Transform returns the spectrum of fid acquired at spectral width sw with
// reference frequency offset.
func Transform(fid []complex128, sw, offset float64, opts ...Option) (*Spectrum, error) {
	if len(fid) == 0 {
		return nil, ErrEmptyInput
	}
	if !(sw > 0) || !core.IsFinite(sw) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpectralWidth, sw)
	}

	cfg := transformConfig{firstPoint: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	size := core.NextPowerOf2(max(cfg.size, len(fid)))
	buf := core.ZeroPad(fid, size)
	buf[0] *= complex(cfg.firstPoint, 0)
	if cfg.lb != 0 {
		apodize(buf[:len(fid)], cfg.lb, sw)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}
	raw := make([]complex128, size)
	if err := plan.Forward(raw, buf); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	half := size / 2
	res := sw / float64(size)
	s := &Spectrum{
		Frequencies: make([]float64, size),
		Bins:        make([]complex128, size),
	}
	for j := range s.Bins {
		s.Bins[j] = raw[(j+half)%size]
		s.Frequencies[j] = offset + float64(j-half)*res
	}
	return s, nil
}

// apodize applies the exponential window exp(-pi*lb*k/sw) in place.
func apodize(x []complex128, lb, sw float64) {
	parts, buf := getScratch(len(x), 3)
	defer putScratch(buf)
	re, im, w := parts[0], parts[1], parts[2]

	split(x, re, im)
	decay := -math.Pi * lb / sw
	for k := range w {
		w[k] = math.Exp(decay * float64(k))
	}
	vecmath.MulBlockInPlace(re, w)
	vecmath.MulBlockInPlace(im, w)
	for k := range x {
		x[k] = complex(re[k], im[k])
	}
}

// Len returns the number of bins.
func (s *Spectrum) Len() int { return len(s.Bins) }

// Resolution returns the bin spacing.
func (s *Spectrum) Resolution() float64 {
	if len(s.Frequencies) < 2 {
		return 0
	}
	return s.Frequencies[1] - s.Frequencies[0]
}

// Nearest returns the index of the bin whose frequency is closest to freq.
func (s *Spectrum) Nearest(freq float64) int {
	if len(s.Frequencies) == 0 {
		return -1
	}
	res := s.Resolution()
	if res == 0 {
		return 0
	}
	j := int(math.Round((freq - s.Frequencies[0]) / res))
	return min(max(j, 0), len(s.Frequencies)-1)
}

// Magnitude returns |X| for every bin.
func (s *Spectrum) Magnitude() []float64 { return Magnitude(s.Bins) }

// Power returns |X|^2 for every bin.
func (s *Spectrum) Power() []float64 { return Power(s.Bins) }

// PowerDB returns 10*log10(|X|^2) for every bin.
func (s *Spectrum) PowerDB() []float64 {
	p := s.Power()
	for i, v := range p {
		p[i] = core.LinearPowerToDB(v)
	}
	return p
}
