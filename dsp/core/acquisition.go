package core

// AcquisitionConfig defines the sampling settings of a time-domain acquisition.
type AcquisitionConfig struct {
	// SampleCount is the number of complex time-domain samples.
	SampleCount int
	// SpectralWidth is the sampling rate; samples are 1/SpectralWidth apart.
	SpectralWidth float64
	// Offset is the reference frequency subtracted from every component.
	Offset float64
}

// AcquisitionOption mutates an AcquisitionConfig.
type AcquisitionOption func(*AcquisitionConfig)

// DefaultAcquisitionConfig returns a 512-point acquisition at a spectral
// width of 20 with no reference offset.
func DefaultAcquisitionConfig() AcquisitionConfig {
	return AcquisitionConfig{
		SampleCount:   512,
		SpectralWidth: 20,
		Offset:        0,
	}
}

// WithSampleCount sets the number of samples. The value is stored as given;
// consumers reject counts below 1.
func WithSampleCount(n int) AcquisitionOption {
	return func(cfg *AcquisitionConfig) {
		cfg.SampleCount = n
	}
}

// WithSpectralWidth sets the spectral width (sampling rate). The value is
// stored as given; consumers reject widths that are not finite and positive.
func WithSpectralWidth(sw float64) AcquisitionOption {
	return func(cfg *AcquisitionConfig) {
		cfg.SpectralWidth = sw
	}
}

// WithOffset sets the reference frequency offset.
func WithOffset(offset float64) AcquisitionOption {
	return func(cfg *AcquisitionConfig) {
		cfg.Offset = offset
	}
}

// ApplyAcquisitionOptions applies zero or more options to the default config.
func ApplyAcquisitionOptions(opts ...AcquisitionOption) AcquisitionConfig {
	cfg := DefaultAcquisitionConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Dwell returns the sampling interval 1/SpectralWidth.
func (c AcquisitionConfig) Dwell() float64 {
	return 1 / c.SpectralWidth
}

// Duration returns the length of the half-open acquisition window
// SampleCount/SpectralWidth.
func (c AcquisitionConfig) Duration() float64 {
	return float64(c.SampleCount) / c.SpectralWidth
}
