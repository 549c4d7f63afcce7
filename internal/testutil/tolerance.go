package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ledsim/led"
)

// RequireFramesEqual fails t if got and want differ in length or in any
// component value.
func RequireFramesEqual(t *testing.T, got, want led.FrameU8) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for idx := range got {
		if got[idx] != want[idx] {
			t.Fatalf("component %d (LED %d ch %d): got %d, want %d",
				idx, idx/led.Channels, idx%led.Channels, got[idx], want[idx])
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float32, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// MeanPerChannel returns the per-channel mean of a frame sequence.
func MeanPerChannel(frames []led.FrameU8) [led.Channels]float64 {
	var sums [led.Channels]float64

	count := 0

	for _, frame := range frames {
		for idx, v := range frame {
			sums[idx%led.Channels] += float64(v)
		}

		count += frame.NumLEDs()
	}

	if count == 0 {
		return sums
	}

	for ch := range sums {
		sums[ch] /= float64(count)
	}

	return sums
}
