// Package sigmadelta implements the Emotiscope sigma-delta temporal
// dithering quantiser.
//
// Each component carries a persistent error accumulator. Quantisation
// truncates the scaled input, and the truncation error (when above the
// deadband) accumulates across frames until it reaches one full output
// step, at which point the output is bumped by one and the accumulator
// gives that step back. Time-averaged output therefore converges on the
// ideal value even though every individual frame is 8-bit.
package sigmadelta

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-ledsim/led"
)

// ErrorThreshold is the deadband below which per-frame truncation error is
// discarded instead of accumulated. Matches the Emotiscope firmware.
const ErrorThreshold = 0.055

const scale = 255.0

// Quantiser holds the persistent per-component error state.
type Quantiser struct {
	numLEDs     int
	seed        uint64
	ditherError []float32
}

// New creates a quantiser for numLEDs LEDs. The error accumulators are
// initialised uniformly in [0, 1) from the seeded generator so that
// component phases are decorrelated from frame zero, as the firmware does
// at boot.
func New(numLEDs int, seed uint64) (*Quantiser, error) {
	if numLEDs <= 0 {
		return nil, fmt.Errorf("sigmadelta: LED count must be > 0: %d", numLEDs)
	}

	q := &Quantiser{
		numLEDs:     numLEDs,
		ditherError: make([]float32, numLEDs*led.Channels),
	}
	q.Reset(seed)

	return q, nil
}

// Reset reinitialises the error accumulators from the given seed.
func (q *Quantiser) Reset(seed uint64) {
	q.seed = seed
	rng := rand.New(rand.NewPCG(seed, seed))

	for i := range q.ditherError {
		q.ditherError[i] = rng.Float32()
	}
}

// NumLEDs returns the configured LED count.
func (q *Quantiser) NumLEDs() int { return q.numLEDs }

// Seed returns the seed used for the current error state.
func (q *Quantiser) Seed() uint64 { return q.seed }

// Errors exposes the persistent error accumulators. The slice aliases the
// internal state; callers may read or overwrite it to sync two instances.
func (q *Quantiser) Errors() []float32 { return q.ditherError }

func (q *Quantiser) checkShape(dst led.FrameU8, src led.Frame) error {
	if err := led.CheckShape(q.numLEDs, len(src)); err != nil {
		return err
	}

	return led.CheckShape(q.numLEDs, len(dst))
}

// QuantiseOracle is the literal reference implementation. It mirrors the
// firmware loop step for step and defines ground truth for
// [Quantiser.QuantiseVectorised].
func (q *Quantiser) QuantiseOracle(dst led.FrameU8, src led.Frame) error {
	if err := q.checkShape(dst, src); err != nil {
		return err
	}

	for i := range q.numLEDs {
		for ch := range led.Channels {
			idx := led.Idx(i, ch)

			scaled := src[idx] * scale
			whole := int32(scaled) // truncation, not rounding
			err := scaled - float32(whole)

			if err >= ErrorThreshold {
				q.ditherError[idx] += err
			}

			if q.ditherError[idx] >= 1.0 {
				whole++ // one extra photon
				q.ditherError[idx] -= 1.0
			}

			dst[idx] = led.ClampU8(int(whole))
		}
	}

	return nil
}

// QuantiseVectorised is the performance-oriented implementation: a single
// flat pass over the component buffer. It performs the identical float32
// operations in the identical order per component and is bit-for-bit
// equivalent to [Quantiser.QuantiseOracle] for any input and prior state.
func (q *Quantiser) QuantiseVectorised(dst led.FrameU8, src led.Frame) error {
	if err := q.checkShape(dst, src); err != nil {
		return err
	}

	derr := q.ditherError

	for idx, v := range src {
		scaled := v * scale
		whole := int32(scaled)
		err := scaled - float32(whole)

		acc := derr[idx]
		if err >= ErrorThreshold {
			acc += err
		}

		if acc >= 1.0 {
			whole++
			acc -= 1.0
		}

		derr[idx] = acc
		dst[idx] = led.ClampU8(int(whole))
	}

	return nil
}

// QuantiseNoDither is the path taken when temporal dithering is disabled:
// plain rounding with no persistent state.
func (q *Quantiser) QuantiseNoDither(dst led.FrameU8, src led.Frame) error {
	if err := q.checkShape(dst, src); err != nil {
		return err
	}

	for idx, v := range src {
		dst[idx] = led.ClampU8(int(math.Round(float64(v * scale))))
	}

	return nil
}
