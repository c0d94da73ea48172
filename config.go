package topocore

import "runtime"

// AcceleratorMode selects how the pipeline resolves its capability object.
type AcceleratorMode string

const (
	// AcceleratorAuto uses the accelerator when available and silently
	// falls back to the host implementation on AcceleratorUnavailable.
	AcceleratorAuto AcceleratorMode = "auto"
	// AcceleratorRequired fails pipeline construction with
	// ErrAcceleratorUnavailable instead of falling back.
	AcceleratorRequired AcceleratorMode = "required"
	// AcceleratorOff always uses the host implementation.
	AcceleratorOff AcceleratorMode = "off"
)

// Config controls pipeline behavior. Start with DefaultConfig and override
// the fields you need.
type Config struct {
	// K is the number of nearest neighbors per point (excluding self).
	// Must be >= 1. Default: 32.
	K int

	// Sigma is the number of standard deviations above the mean lifetime a
	// pair's lifetime must exceed to be considered significant. Must be > 0.
	// Default: 3.0.
	Sigma float64

	// UseAccelerator selects accelerator resolution behavior. Default: auto.
	UseAccelerator AcceleratorMode

	// EpsilonDensity clamps the kth-neighbor distance away from zero before
	// it is inverted into a density filtration value. Must be > 0.
	// Default: 1e-10.
	EpsilonDensity float64

	// Workers controls the number of goroutines used for the embarrassingly
	// parallel scan stages (kNN, radius queries). 0 means runtime.NumCPU().
	Workers int
}

// DefaultConfig returns a Config with the defaults from §6.
func DefaultConfig() Config {
	return Config{
		K:              32,
		Sigma:          3.0,
		UseAccelerator: AcceleratorAuto,
		EpsilonDensity: 1e-10,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.K == 0 {
		cfg.K = 32
	}
	if cfg.Sigma == 0 {
		cfg.Sigma = 3.0
	}
	if cfg.UseAccelerator == "" {
		cfg.UseAccelerator = AcceleratorAuto
	}
	if cfg.EpsilonDensity == 0 {
		cfg.EpsilonDensity = 1e-10
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid, returning a descriptive
// *Error (Code: InvalidArgument) if not.
func validateConfig(cfg *Config) error {
	if cfg.K < 1 {
		return codeErrorf(InvalidArgument, "K must be >= 1, got %d", cfg.K)
	}
	if cfg.Sigma <= 0 {
		return codeErrorf(InvalidArgument, "Sigma must be > 0, got %f", cfg.Sigma)
	}
	switch cfg.UseAccelerator {
	case AcceleratorAuto, AcceleratorRequired, AcceleratorOff:
		// valid
	default:
		return codeErrorf(InvalidArgument, "UseAccelerator must be auto, required, or off, got %q", cfg.UseAccelerator)
	}
	if cfg.EpsilonDensity <= 0 {
		return codeErrorf(InvalidArgument, "EpsilonDensity must be > 0, got %f", cfg.EpsilonDensity)
	}
	return nil
}
