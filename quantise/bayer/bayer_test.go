package bayer

import (
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-ledsim/led"
)

func TestThresholdPattern(t *testing.T) {
	// The strip folds into the 4x4 matrix by row i%4, column (i/4)%4.
	tests := []struct {
		i    int
		want uint8
	}{
		{0, 0},
		{1, 12},
		{2, 3},
		{3, 15},
		{4, 8},
		{5, 4},
		{15, 5},
		{16, 0}, // pattern repeats every 16 LEDs
		{17, 12},
	}
	for _, tt := range tests {
		if got := Threshold(tt.i); got != tt.want {
			t.Errorf("Threshold(%d) = %d, want %d", tt.i, got, tt.want)
		}
	}
}

func TestApplyNeverDecreasesNeverOverflows(t *testing.T) {
	const numLEDs = 64

	rng := rand.New(rand.NewPCG(42, 42))

	src := led.NewFrameU8(numLEDs)
	dst := led.NewFrameU8(numLEDs)

	for pass := range 100 {
		for i := range src {
			src[i] = uint8(rng.UintN(256))
		}

		// One pass pins every component at the saturated top.
		if pass == 0 {
			for i := range src {
				src[i] = 255
			}
		}

		Apply(dst, src)

		for idx := range dst {
			if dst[idx] < src[idx] {
				t.Fatalf("component %d decreased: %d -> %d", idx, src[idx], dst[idx])
			}

			// Compare in int: src[idx]+1 wraps to 0 at 255.
			if int(dst[idx]) > int(src[idx])+1 {
				t.Fatalf("component %d bumped by more than 1: %d -> %d", idx, src[idx], dst[idx])
			}
		}
	}
}

func TestApply255Saturation(t *testing.T) {
	src := led.FrameU8{255, 255, 255}
	dst := led.NewFrameU8(1)

	Apply(dst, src)

	for idx, v := range dst {
		if v != 255 {
			t.Errorf("component %d = %d, want 255 (no overflow)", idx, v)
		}
	}
}

func TestApplyNibbleRule(t *testing.T) {
	// LED 0 has threshold 0: any nonzero low nibble rounds up.
	// LED 1 has threshold 12: only nibbles 13..15 round up.
	src := led.FrameU8{
		0x01, 0x10, 0x0F,
		0x0C, 0x0D, 0x21,
	}
	dst := led.NewFrameU8(2)

	Apply(dst, src)

	want := led.FrameU8{
		0x02, 0x10, 0x10, // nibble 1 > 0; nibble 0; nibble 15 > 0
		0x0C, 0x0E, 0x21, // nibble 12 not > 12; nibble 13 > 12; nibble 1 not > 12
	}
	for idx := range want {
		if dst[idx] != want[idx] {
			t.Errorf("component %d = %#02x, want %#02x", idx, dst[idx], want[idx])
		}
	}
}

func TestApplyInPlaceMatchesApply(t *testing.T) {
	const numLEDs = 32

	rng := rand.New(rand.NewPCG(7, 7))

	src := led.NewFrameU8(numLEDs)
	for i := range src {
		src[i] = uint8(rng.UintN(256))
	}

	dst := led.NewFrameU8(numLEDs)
	Apply(dst, src)

	buf := src.Clone()
	ApplyInPlace(buf)

	for idx := range dst {
		if buf[idx] != dst[idx] {
			t.Fatalf("component %d: in-place %d != out-of-place %d", idx, buf[idx], dst[idx])
		}
	}
}

func TestTemporalEvenFrameToggle(t *testing.T) {
	tm := NewTemporalModel()

	// Low nibbles 3, 4, 11, 12: only 4..11 toggle on even frames.
	src := led.FrameU8{0x13, 0x14, 0x1B, 0x1C, 0x00, 0xFF}
	dst := led.NewFrameU8(2)

	// Frame 0 is even: toggles apply.
	tm.Apply(dst, src)

	want := led.FrameU8{0x13, 0x15, 0x1A, 0x1C, 0x00, 0xFF}
	for idx := range want {
		if dst[idx] != want[idx] {
			t.Errorf("even frame component %d = %#02x, want %#02x", idx, dst[idx], want[idx])
		}
	}

	// Frame 1 is odd: identity.
	tm.Apply(dst, src)

	for idx := range src {
		if dst[idx] != src[idx] {
			t.Errorf("odd frame component %d = %#02x, want %#02x", idx, dst[idx], src[idx])
		}
	}
}

func TestTemporalFrameCountAndReset(t *testing.T) {
	tm := NewTemporalModel()

	buf := led.NewFrameU8(1)
	for range 5 {
		tm.ApplyInPlace(buf)
	}

	if tm.FrameCount() != 5 {
		t.Errorf("FrameCount() = %d, want 5", tm.FrameCount())
	}

	tm.Reset()

	if tm.FrameCount() != 0 {
		t.Errorf("FrameCount() after Reset = %d, want 0", tm.FrameCount())
	}
}

func TestTemporalToggleIsInvolution(t *testing.T) {
	// Applying two even-frame passes restores the original values: the
	// toggle is an XOR.
	tm1 := NewTemporalModel()
	tm2 := NewTemporalModel()

	src := led.FrameU8{0x14, 0x27, 0x3A}

	once := src.Clone()
	tm1.ApplyInPlace(once)

	twice := once.Clone()
	tm2.ApplyInPlace(twice)

	for idx := range src {
		if twice[idx] != src[idx] {
			t.Errorf("component %d: double toggle %#02x, want %#02x", idx, twice[idx], src[idx])
		}
	}
}
