package led

import (
	"errors"
	"testing"
)

func TestIdx(t *testing.T) {
	tests := []struct {
		led, ch, want int
	}{
		{0, 0, 0},
		{0, 2, 2},
		{1, 0, 3},
		{5, 1, 16},
	}
	for _, tt := range tests {
		if got := Idx(tt.led, tt.ch); got != tt.want {
			t.Errorf("Idx(%d, %d) = %d, want %d", tt.led, tt.ch, got, tt.want)
		}
	}
}

func TestCheckShape(t *testing.T) {
	if err := CheckShape(4, 12); err != nil {
		t.Errorf("CheckShape(4, 12) = %v, want nil", err)
	}

	err := CheckShape(4, 11)
	if err == nil {
		t.Fatal("CheckShape(4, 11) should fail")
	}

	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("error %v should wrap ErrShapeMismatch", err)
	}
}

func TestNewFrames(t *testing.T) {
	f := NewFrame(10)
	if len(f) != 30 || f.NumLEDs() != 10 {
		t.Errorf("NewFrame(10): len %d, NumLEDs %d", len(f), f.NumLEDs())
	}

	u := NewFrameU8(10)
	if len(u) != 30 || u.NumLEDs() != 10 {
		t.Errorf("NewFrameU8(10): len %d, NumLEDs %d", len(u), u.NumLEDs())
	}
}

func TestClone(t *testing.T) {
	orig := FrameU8{1, 2, 3}

	clone := orig.Clone()
	clone[0] = 9

	if orig[0] != 1 {
		t.Error("Clone should not share backing storage")
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampU8(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := ClampU8(tt.in); got != tt.want {
			t.Errorf("ClampU8(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
