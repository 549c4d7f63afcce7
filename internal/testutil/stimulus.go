package testutil

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-ledsim/led"
)

// GrayscaleRamp generates a frame whose LEDs sweep linearly from 0.0 to
// 1.0 across the strip, identical on all three channels.
func GrayscaleRamp(numLEDs int) led.Frame {
	out := led.NewFrame(numLEDs)

	for i := range numLEDs {
		v := float32(i) / float32(numLEDs-1)
		for ch := range led.Channels {
			out[led.Idx(i, ch)] = v
		}
	}

	return out
}

// ConstantFrame generates a frame with the same RGB triplet on every LED.
func ConstantFrame(numLEDs int, r, g, b float32) led.Frame {
	out := led.NewFrame(numLEDs)

	for i := range numLEDs {
		out[led.Idx(i, 0)] = r
		out[led.Idx(i, 1)] = g
		out[led.Idx(i, 2)] = b
	}

	return out
}

// RandomFrame generates a frame with every component drawn uniformly from
// [0, 1) using the given generator.
func RandomFrame(rng *rand.Rand, numLEDs int) led.Frame {
	out := led.NewFrame(numLEDs)
	for idx := range out {
		out[idx] = rng.Float32()
	}

	return out
}

// RandomFrames generates a deterministic sequence of random frames.
func RandomFrames(seed uint64, numLEDs, count int) []led.Frame {
	rng := rand.New(rand.NewPCG(seed, seed))

	out := make([]led.Frame, count)
	for t := range out {
		out[t] = RandomFrame(rng, numLEDs)
	}

	return out
}

// Repeat returns count copies of the same stimulus frame.
func Repeat(frame led.Frame, count int) []led.Frame {
	out := make([]led.Frame, count)
	for t := range out {
		out[t] = frame
	}

	return out
}
