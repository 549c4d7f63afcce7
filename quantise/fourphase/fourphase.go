// Package fourphase implements the SensoryBridge 4-phase temporal
// threshold quantiser.
//
// Each channel carries an 8-bit wrapping "noise origin" counter that
// advances once per frame, shifting a four-entry fractional threshold
// pattern along the strip. A component rounds up when its fractional part
// reaches the threshold at its shifted position, so the rounding phase
// cycles both spatially and temporally.
package fourphase

import (
	"fmt"

	"github.com/cwbudde/algo-ledsim/led"
)

// DitherTable holds the four fractional thresholds indexed by
// (noise origin + LED index) mod 4.
var DitherTable = [4]float32{0.25, 0.50, 0.75, 1.00}

// The dithered path scales by 254, not 255. This is a deliberate firmware
// quirk: the top code is reserved so a threshold round-up never overflows.
const (
	ditherScale   = 254.0
	noDitherScale = 255.0
)

// State is a snapshot of the quantiser's persistent counters.
type State struct {
	NoiseOriginR uint8
	NoiseOriginG uint8
	NoiseOriginB uint8
	DitherStep   uint8
}

// Quantiser holds the per-channel noise origins and the step counter.
type Quantiser struct {
	numLEDs int
	state   State
}

// New creates a quantiser for numLEDs LEDs with all counters at zero.
func New(numLEDs int) (*Quantiser, error) {
	if numLEDs <= 0 {
		return nil, fmt.Errorf("fourphase: LED count must be > 0: %d", numLEDs)
	}

	return &Quantiser{numLEDs: numLEDs}, nil
}

// Reset returns all counters to zero.
func (q *Quantiser) Reset() {
	q.state = State{}
}

// NumLEDs returns the configured LED count.
func (q *Quantiser) NumLEDs() int { return q.numLEDs }

// State returns a snapshot of the persistent counters.
func (q *Quantiser) State() State { return q.state }

// SetState overwrites the persistent counters, for state syncing in tests.
func (q *Quantiser) SetState(s State) { q.state = s }

func (q *Quantiser) checkShape(dst led.FrameU8, src led.Frame) error {
	if err := led.CheckShape(q.numLEDs, len(src)); err != nil {
		return err
	}

	return led.CheckShape(q.numLEDs, len(dst))
}

// advance steps the counters exactly as the firmware does at the top of
// every frame: the (otherwise unused) dither step wraps mod 4 and each
// channel origin wraps mod 256.
func (q *Quantiser) advance() {
	// dither_step is tracked but never consulted by the threshold lookup;
	// the firmware increments it anyway, so the simulation does too.
	q.state.DitherStep = (q.state.DitherStep + 1) & 3
	q.state.NoiseOriginR++
	q.state.NoiseOriginG++
	q.state.NoiseOriginB++
}

// QuantiseOracle is the literal reference implementation and defines
// ground truth for [Quantiser.QuantiseVectorised].
func (q *Quantiser) QuantiseOracle(dst led.FrameU8, src led.Frame) error {
	if err := q.checkShape(dst, src); err != nil {
		return err
	}

	q.advance()

	origins := [led.Channels]uint8{
		q.state.NoiseOriginR,
		q.state.NoiseOriginG,
		q.state.NoiseOriginB,
	}

	for i := range q.numLEDs {
		for ch := range led.Channels {
			idx := led.Idx(i, ch)

			scaled := src[idx] * ditherScale
			whole := int32(scaled)
			fract := scaled - float32(whole)

			threshold := DitherTable[(int(origins[ch])+i)%4]
			if fract >= threshold {
				whole++
			}

			dst[idx] = led.ClampU8(int(whole))
		}
	}

	return nil
}

// QuantiseVectorised is the performance-oriented implementation: one flat
// pass with the per-channel threshold phase hoisted out of the loop. It is
// bit-for-bit equivalent to [Quantiser.QuantiseOracle].
func (q *Quantiser) QuantiseVectorised(dst led.FrameU8, src led.Frame) error {
	if err := q.checkShape(dst, src); err != nil {
		return err
	}

	q.advance()

	// The threshold index only depends on (origin + i) mod 4, so each
	// channel reduces to a fixed 4-entry phase pattern.
	var phases [led.Channels][4]float32
	for ch, origin := range [led.Channels]uint8{
		q.state.NoiseOriginR,
		q.state.NoiseOriginG,
		q.state.NoiseOriginB,
	} {
		for p := range 4 {
			phases[ch][p] = DitherTable[(int(origin)+p)%4]
		}
	}

	for idx, v := range src {
		i := idx / led.Channels
		ch := idx % led.Channels

		scaled := v * ditherScale
		whole := int32(scaled)
		fract := scaled - float32(whole)

		if fract >= phases[ch][i%4] {
			whole++
		}

		dst[idx] = led.ClampU8(int(whole))
	}

	return nil
}

// QuantiseNoDither is the path taken when dithering is disabled: scale by
// 255 and truncate. It does not touch the persistent counters.
func (q *Quantiser) QuantiseNoDither(dst led.FrameU8, src led.Frame) error {
	if err := q.checkShape(dst, src); err != nil {
		return err
	}

	for idx, v := range src {
		dst[idx] = led.ClampU8(int(v * noDitherScale))
	}

	return nil
}
