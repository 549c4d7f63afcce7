package led

import (
	"errors"
	"fmt"
)

// Channels is the number of color channels per LED.
const Channels = 3

// Frame is a float LED buffer with components in [0, 1].
type Frame []float32

// FrameU8 is a quantised LED buffer with 8-bit components.
type FrameU8 []uint8

// ErrShapeMismatch is returned when a buffer's LED count does not match the
// configured LED count of the consumer.
var ErrShapeMismatch = errors.New("led: buffer shape mismatch")

// Idx returns the flat index of channel ch of LED i.
func Idx(i, ch int) int {
	return i*Channels + ch
}

// CheckShape validates that a buffer of the given length holds exactly
// numLEDs LED triplets.
func CheckShape(numLEDs, length int) error {
	if length != numLEDs*Channels {
		return fmt.Errorf("%w: got %d components, want %d (%d LEDs)",
			ErrShapeMismatch, length, numLEDs*Channels, numLEDs)
	}

	return nil
}

// NewFrame allocates a zeroed float frame for numLEDs LEDs.
func NewFrame(numLEDs int) Frame {
	return make(Frame, numLEDs*Channels)
}

// NewFrameU8 allocates a zeroed quantised frame for numLEDs LEDs.
func NewFrameU8(numLEDs int) FrameU8 {
	return make(FrameU8, numLEDs*Channels)
}

// NumLEDs returns the LED count of a float frame.
func (f Frame) NumLEDs() int { return len(f) / Channels }

// NumLEDs returns the LED count of a quantised frame.
func (f FrameU8) NumLEDs() int { return len(f) / Channels }

// Clone returns a copy of the frame.
func (f FrameU8) Clone() FrameU8 {
	out := make(FrameU8, len(f))
	copy(out, f)

	return out
}

// Clamp01 clamps a float component to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}

// ClampU8 clamps an integer component to [0, 255].
func ClampU8(v int) uint8 {
	if v < 0 {
		return 0
	}

	if v > 255 {
		return 255
	}

	return uint8(v)
}
