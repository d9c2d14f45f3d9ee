package fid

import (
	"github.com/cwbudde/algo-fid/dsp/core"
)

// Result holds the time grid and the synthesized signal. Both have one
// entry per sample.
type Result struct {
	Time   []float64
	Signal Signal
}

// Synthesizer creates FIDs from a shared acquisition configuration.
type Synthesizer struct {
	cfg      core.AcquisitionConfig
	workers  int
	endpoint bool
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithWorkers evaluates the basis on n goroutines. Values below 2 keep
// evaluation on the calling goroutine. Output is identical either way.
func WithWorkers(n int) Option {
	return func(s *Synthesizer) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithEndpoint places the last sample at n/sw, spacing n points over the
// closed interval [0, n/sw] instead of stepping by 1/sw.
func WithEndpoint() Option {
	return func(s *Synthesizer) {
		s.endpoint = true
	}
}

// NewSynthesizer creates a synthesizer for the given acquisition. The
// settings are checked by Synthesize.
func NewSynthesizer(opts ...core.AcquisitionOption) *Synthesizer {
	return &Synthesizer{
		cfg:     core.ApplyAcquisitionOptions(opts...),
		workers: 1,
	}
}

// NewSynthesizerWithOptions creates a synthesizer with acquisition and
// synthesizer-specific options.
func NewSynthesizerWithOptions(coreOpts []core.AcquisitionOption, opts ...Option) *Synthesizer {
	s := NewSynthesizer(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Config returns the acquisition configuration.
func (s *Synthesizer) Config() core.AcquisitionConfig {
	return s.cfg
}

// Synthesize evaluates table on the configured time grid. It returns an
// error matching [ErrInvalidSettings] if the configured sample count is
// below 1 or the spectral width is not a finite positive number.
func (s *Synthesizer) Synthesize(table Table) (Result, error) {
	return synthesize(table, s.cfg, s.workers, s.endpoint)
}

// Synthesize evaluates the FID of table at n samples spaced 1/sw apart,
// with every component frequency shifted by -offset.
//
// It returns an error matching [ErrInvalidSettings] if n < 1 or sw is not a
// finite positive number. A table without components yields n zeros.
func Synthesize(table Table, n int, sw, offset float64) ([]float64, Signal, error) {
	cfg := core.AcquisitionConfig{SampleCount: n, SpectralWidth: sw, Offset: offset}
	res, err := synthesize(table, cfg, 1, false)
	if err != nil {
		return nil, nil, err
	}
	return res.Time, res.Signal, nil
}

// TimeGrid returns t_k = k/sw for k = 0..n-1.
func TimeGrid(n int, sw float64) ([]float64, error) {
	if err := validateSettings(n, sw); err != nil {
		return nil, err
	}
	return timeGrid(n, sw), nil
}

func timeGrid(n int, sw float64) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = float64(k) / sw
	}
	return out
}

// closedTimeGrid spaces cfg.SampleCount points over [0, cfg.Duration()].
func closedTimeGrid(cfg core.AcquisitionConfig) []float64 {
	n := cfg.SampleCount
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	step := cfg.Duration() / float64(n-1)
	for k := range out {
		out[k] = step * float64(k)
	}
	return out
}

func validateSettings(n int, sw float64) error {
	if n < 1 {
		return &SettingsError{Field: "sample count", Value: float64(n)}
	}
	if !(sw > 0) || !core.IsFinite(sw) {
		return &SettingsError{Field: "spectral width", Value: sw}
	}
	return nil
}

func synthesize(table Table, cfg core.AcquisitionConfig, workers int, endpoint bool) (Result, error) {
	n, sw := cfg.SampleCount, cfg.SpectralWidth
	if err := validateSettings(n, sw); err != nil {
		return Result{}, err
	}

	var t []float64
	if endpoint {
		t = closedTimeGrid(cfg)
	} else {
		t = timeGrid(n, sw)
	}

	if table.Len() == 0 {
		return Result{Time: t, Signal: make(Signal, n)}, nil
	}

	z, err := basis(t, Rates(table, cfg.Offset), workers)
	if err != nil {
		return Result{}, err
	}
	sig, err := Combine(z, Coefficients(table))
	if err != nil {
		return Result{}, err
	}
	return Result{Time: t, Signal: sig}, nil
}
