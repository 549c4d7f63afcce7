// Package bayer implements the LWOS ordered-dither stages: a stateless 4x4
// Bayer spatial dither and a stateful temporal LSB-toggle model.
//
// Both stages operate on already quantised 8-bit frames and are composable;
// the LWOS pipeline runs the spatial stage before the temporal one.
package bayer

import "github.com/cwbudde/algo-ledsim/led"

// Matrix is the fixed 4x4 Bayer threshold table used by the firmware.
var Matrix = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Threshold returns the Bayer threshold for LED index i. The strip is
// folded into a 4x4 pattern by position: row i%4, column (i/4)%4.
func Threshold(i int) uint8 {
	return Matrix[i%4][(i/4)%4]
}

// Apply runs the spatial ordered dither: a component is rounded up by one
// when its low nibble exceeds the positional threshold. Values never
// decrease and 255 never overflows. dst and src may alias.
func Apply(dst, src led.FrameU8) {
	numLEDs := src.NumLEDs()

	for i := range numLEDs {
		threshold := Threshold(i)

		for ch := range led.Channels {
			idx := led.Idx(i, ch)

			v := src[idx]
			if v&0x0F > threshold && v < 255 {
				v++
			}

			dst[idx] = v
		}
	}
}

// ApplyInPlace runs the spatial ordered dither on buf directly.
func ApplyInPlace(buf led.FrameU8) {
	Apply(buf, buf)
}

// TemporalModel is the frame-alternating stage: on even frame counts, any
// component whose low nibble lies in [4, 11] has its least-significant bit
// toggled. The frame counter advances on every call.
type TemporalModel struct {
	frameCount uint32
}

// NewTemporalModel creates a temporal model starting at frame zero.
func NewTemporalModel() *TemporalModel {
	return &TemporalModel{}
}

// Apply runs one temporal dithering step and advances the frame counter.
// dst and src may alias.
func (t *TemporalModel) Apply(dst, src led.FrameU8) {
	even := t.frameCount%2 == 0
	t.frameCount++

	if !even {
		copy(dst, src)
		return
	}

	for idx, v := range src {
		nibble := v & 0x0F
		if nibble >= 4 && nibble <= 11 {
			v ^= 1
		}

		dst[idx] = v
	}
}

// ApplyInPlace runs one temporal dithering step on buf directly.
func (t *TemporalModel) ApplyInPlace(buf led.FrameU8) {
	t.Apply(buf, buf)
}

// Reset rewinds the frame counter to zero.
func (t *TemporalModel) Reset() {
	t.frameCount = 0
}

// FrameCount returns the number of frames processed since the last reset.
func (t *TemporalModel) FrameCount() uint32 {
	return t.frameCount
}
