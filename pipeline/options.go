package pipeline

import (
	"fmt"
	"math"
)

const (
	defaultGamma      = 2.2
	defaultBrightness = 1.0
	defaultSeed       = 1
)

// Config holds the immutable per-pipeline settings. LEDCount is fixed by
// the constructor; everything else is set through options.
type Config struct {
	LEDCount        int
	Gamma           float64
	GammaEnabled    bool
	BayerEnabled    bool
	TemporalEnabled bool
	Brightness      float64
	IncandescentMix float64
	Seed            uint64
}

// Option mutates a Config during construction.
type Option func(*Config) error

// DefaultConfig returns the settings shared by all three pipelines: gamma
// 2.2 with correction enabled, every dithering stage enabled, full
// brightness, no incandescent mix, seed 1.
func DefaultConfig() Config {
	return Config{
		Gamma:           defaultGamma,
		GammaEnabled:    true,
		BayerEnabled:    true,
		TemporalEnabled: true,
		Brightness:      defaultBrightness,
		Seed:            defaultSeed,
	}
}

func applyOptions(ledCount int, opts ...Option) (Config, error) {
	if ledCount <= 0 {
		return Config{}, fmt.Errorf("pipeline: LED count must be > 0: %d", ledCount)
	}

	cfg := DefaultConfig()
	cfg.LEDCount = ledCount

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// WithGamma sets the gamma exponent used to build the correction LUT
// (default 2.2, must be > 0 and finite).
func WithGamma(gamma float64) Option {
	return func(cfg *Config) error {
		if gamma <= 0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
			return fmt.Errorf("pipeline: gamma must be > 0 and finite: %f", gamma)
		}

		cfg.Gamma = gamma

		return nil
	}
}

// WithGammaCorrection enables or disables the gamma-correction stage
// (default enabled). When disabled the stage is the identity function.
func WithGammaCorrection(enabled bool) Option {
	return func(cfg *Config) error {
		cfg.GammaEnabled = enabled
		return nil
	}
}

// WithBayerDither enables or disables the spatial Bayer stage (default
// enabled). Only the LWOS pipeline has this stage.
func WithBayerDither(enabled bool) Option {
	return func(cfg *Config) error {
		cfg.BayerEnabled = enabled
		return nil
	}
}

// WithTemporalDither enables or disables temporal dithering (default
// enabled). With it disabled, the Emotiscope and SensoryBridge pipelines
// take their stateless no-dither quantisation paths and the LWOS pipeline
// skips its frame-alternating stage.
func WithTemporalDither(enabled bool) Option {
	return func(cfg *Config) error {
		cfg.TemporalEnabled = enabled
		return nil
	}
}

// WithBrightness sets the multiplicative brightness scalar in [0, 1]
// (default 1).
func WithBrightness(brightness float64) Option {
	return func(cfg *Config) error {
		if brightness < 0 || brightness > 1 || math.IsNaN(brightness) {
			return fmt.Errorf("pipeline: brightness must be in [0, 1]: %f", brightness)
		}

		cfg.Brightness = brightness

		return nil
	}
}

// WithIncandescentMix sets the warm-white filter blend strength in [0, 1]
// (default 0, filter off).
func WithIncandescentMix(mix float64) Option {
	return func(cfg *Config) error {
		if mix < 0 || mix > 1 || math.IsNaN(mix) {
			return fmt.Errorf("pipeline: incandescent mix must be in [0, 1]: %f", mix)
		}

		cfg.IncandescentMix = mix

		return nil
	}
}

// WithSeed sets the seed for reproducible quantiser state (default 1).
func WithSeed(seed uint64) Option {
	return func(cfg *Config) error {
		cfg.Seed = seed
		return nil
	}
}
