package pipeline

import (
	"github.com/cwbudde/algo-ledsim/led"
	"github.com/cwbudde/algo-ledsim/quantise/sigmadelta"
)

// Emotiscope simulates the Emotiscope controller: gamma correction in the
// float domain followed by sigma-delta error-accumulation dithering.
type Emotiscope struct {
	cfg     Config
	lut     *gammaLUT
	quant   *sigmadelta.Quantiser
	scratch led.Frame
}

// NewEmotiscope creates the Emotiscope pipeline for ledCount LEDs.
func NewEmotiscope(ledCount int, opts ...Option) (*Emotiscope, error) {
	cfg, err := applyOptions(ledCount, opts...)
	if err != nil {
		return nil, err
	}

	quant, err := sigmadelta.New(cfg.LEDCount, cfg.Seed)
	if err != nil {
		return nil, err
	}

	return &Emotiscope{
		cfg:     cfg,
		lut:     newGammaLUT(cfg.Gamma),
		quant:   quant,
		scratch: led.NewFrame(cfg.LEDCount),
	}, nil
}

// ProcessFrame gamma-corrects, clips, and quantises one frame.
func (p *Emotiscope) ProcessFrame(src led.Frame) (led.FrameU8, error) {
	if err := led.CheckShape(p.cfg.LEDCount, len(src)); err != nil {
		return nil, err
	}

	for idx, v := range src {
		v = led.Clamp01(v)
		if p.cfg.GammaEnabled {
			v = p.lut.apply(v)
		}

		p.scratch[idx] = v
	}

	dst := led.NewFrameU8(p.cfg.LEDCount)

	var err error
	if p.cfg.TemporalEnabled {
		err = p.quant.QuantiseVectorised(dst, p.scratch)
	} else {
		err = p.quant.QuantiseNoDither(dst, p.scratch)
	}

	if err != nil {
		return nil, err
	}

	return dst, nil
}

// Reset reinitialises the dither error state from the configured seed.
func (p *Emotiscope) Reset() {
	p.quant.Reset(p.cfg.Seed)
}

// Name returns the pipeline identifier.
func (p *Emotiscope) Name() string { return "emotiscope" }

// Description returns a human-readable summary of the stage chain.
func (p *Emotiscope) Description() string {
	return "Emotiscope: float gamma LUT -> sigma-delta error-accumulation dither"
}

// Config returns the configuration the pipeline was built with.
func (p *Emotiscope) Config() Config { return p.cfg }
