package pipeline

import (
	"math"

	"github.com/cwbudde/algo-ledsim/led"
	"github.com/cwbudde/algo-ledsim/quantise/bayer"
)

// LWOS simulates the LightwaveOS post-render chain: the frame is rounded
// to 8 bits, gamma-corrected through the firmware's 256-entry integer LUT,
// then spatially dithered with the 4x4 Bayer matrix and temporally
// dithered with the frame-alternating LSB toggle.
type LWOS struct {
	cfg      Config
	lut      *gammaLUT8
	temporal *bayer.TemporalModel
}

// NewLWOS creates the LWOS pipeline for ledCount LEDs.
func NewLWOS(ledCount int, opts ...Option) (*LWOS, error) {
	cfg, err := applyOptions(ledCount, opts...)
	if err != nil {
		return nil, err
	}

	return &LWOS{
		cfg:      cfg,
		lut:      newGammaLUT8(cfg.Gamma),
		temporal: bayer.NewTemporalModel(),
	}, nil
}

// ProcessFrame quantises, gamma-corrects, and dithers one frame.
func (p *LWOS) ProcessFrame(src led.Frame) (led.FrameU8, error) {
	if err := led.CheckShape(p.cfg.LEDCount, len(src)); err != nil {
		return nil, err
	}

	dst := led.NewFrameU8(p.cfg.LEDCount)

	// The firmware chain operates on 8-bit buffers; entry into the chain
	// is a plain rounding quantisation.
	for idx, v := range src {
		dst[idx] = led.ClampU8(int(math.Round(float64(led.Clamp01(v) * 255.0))))
	}

	if p.cfg.GammaEnabled {
		for idx, v := range dst {
			dst[idx] = p.lut.table[v]
		}
	}

	if p.cfg.BayerEnabled {
		bayer.ApplyInPlace(dst)
	}

	if p.cfg.TemporalEnabled {
		p.temporal.ApplyInPlace(dst)
	}

	return dst, nil
}

// Reset rewinds the temporal frame counter. The Bayer stage is stateless.
func (p *LWOS) Reset() {
	p.temporal.Reset()
}

// Name returns the pipeline identifier.
func (p *LWOS) Name() string { return "lwos" }

// Description returns a human-readable summary of the stage chain.
func (p *LWOS) Description() string {
	return "LightwaveOS: u8 gamma LUT -> 4x4 Bayer ordered dither -> temporal LSB toggle"
}

// Config returns the configuration the pipeline was built with.
func (p *LWOS) Config() Config { return p.cfg }
