package pipeline

import (
	"github.com/cwbudde/algo-ledsim/led"
	"github.com/cwbudde/algo-ledsim/quantise/fourphase"
)

// Warm-white filter channel attenuation at full mix. The filter pulls the
// white point toward an incandescent bulb by cutting green ~15% and blue
// ~25%, blended by the configured mix factor.
const (
	incandescentGreenCut = 0.15
	incandescentBlueCut  = 0.25
)

// SensoryBridge simulates the SensoryBridge controller: incandescent
// warm-white filtering and brightness scaling in the float domain, gamma
// correction, then 4-phase threshold dithering.
type SensoryBridge struct {
	cfg     Config
	lut     *gammaLUT
	quant   *fourphase.Quantiser
	scratch led.Frame

	greenScale float32
	blueScale  float32
}

// NewSensoryBridge creates the SensoryBridge pipeline for ledCount LEDs.
func NewSensoryBridge(ledCount int, opts ...Option) (*SensoryBridge, error) {
	cfg, err := applyOptions(ledCount, opts...)
	if err != nil {
		return nil, err
	}

	quant, err := fourphase.New(cfg.LEDCount)
	if err != nil {
		return nil, err
	}

	return &SensoryBridge{
		cfg:        cfg,
		lut:        newGammaLUT(cfg.Gamma),
		quant:      quant,
		scratch:    led.NewFrame(cfg.LEDCount),
		greenScale: float32(1.0 - incandescentGreenCut*cfg.IncandescentMix),
		blueScale:  float32(1.0 - incandescentBlueCut*cfg.IncandescentMix),
	}, nil
}

// ProcessFrame filters, scales, gamma-corrects, clips, and quantises one
// frame.
func (p *SensoryBridge) ProcessFrame(src led.Frame) (led.FrameU8, error) {
	if err := led.CheckShape(p.cfg.LEDCount, len(src)); err != nil {
		return nil, err
	}

	brightness := float32(p.cfg.Brightness)

	for idx, v := range src {
		switch idx % led.Channels {
		case 1:
			v *= p.greenScale
		case 2:
			v *= p.blueScale
		}

		v = led.Clamp01(v * brightness)
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

// Reset returns the noise-origin and step counters to zero.
func (p *SensoryBridge) Reset() {
	p.quant.Reset()
}

// Name returns the pipeline identifier.
func (p *SensoryBridge) Name() string { return "sensorybridge" }

// Description returns a human-readable summary of the stage chain.
func (p *SensoryBridge) Description() string {
	return "SensoryBridge: incandescent filter -> brightness -> float gamma LUT -> 4-phase threshold dither"
}

// Config returns the configuration the pipeline was built with.
func (p *SensoryBridge) Config() Config { return p.cfg }
