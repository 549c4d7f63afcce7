package stability

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ledsim/led"
)

func constantFrames(count, numLEDs int, value uint8) []led.FrameU8 {
	out := make([]led.FrameU8, count)
	for t := range out {
		out[t] = led.NewFrameU8(numLEDs)
		for idx := range out[t] {
			out[t][idx] = value
		}
	}

	return out
}

// alternatingFrames toggles every component between lo and hi each frame.
func alternatingFrames(count, numLEDs int, lo, hi uint8) []led.FrameU8 {
	out := make([]led.FrameU8, count)
	for t := range out {
		v := lo
		if t%2 == 1 {
			v = hi
		}

		out[t] = led.NewFrameU8(numLEDs)
		for idx := range out[t] {
			out[t][idx] = v
		}
	}

	return out
}

func TestAnalyzeInsufficientFrames(t *testing.T) {
	for _, frames := range [][]led.FrameU8{nil, {led.NewFrameU8(4)}} {
		_, err := Analyze(frames)
		if !errors.Is(err, ErrInsufficientFrames) {
			t.Errorf("%d frames: got %v, want ErrInsufficientFrames", len(frames), err)
		}
	}
}

func TestAnalyzeShapeMismatch(t *testing.T) {
	frames := []led.FrameU8{led.NewFrameU8(4), led.NewFrameU8(3)}

	_, err := Analyze(frames)
	if !errors.Is(err, led.ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
}

func TestStaticSequence(t *testing.T) {
	res, err := Analyze(constantFrames(8, 4, 100))
	if err != nil {
		t.Fatal(err)
	}

	if res.MeanVariance != 0 {
		t.Errorf("MeanVariance = %v, want 0", res.MeanVariance)
	}

	if res.StabilityScore != 1.0 {
		t.Errorf("StabilityScore = %v, want 1", res.StabilityScore)
	}

	if !math.IsInf(res.TemporalSNR, 1) {
		t.Errorf("TemporalSNR = %v, want +Inf", res.TemporalSNR)
	}

	if res.FlickerEnergy != 0 {
		t.Errorf("FlickerEnergy = %v, want 0", res.FlickerEnergy)
	}
}

func TestAlternatingSequence(t *testing.T) {
	// Every component toggles 100 <-> 102: per-pixel variance is exactly 1
	// and the whole modulation sits at the Nyquist frequency.
	res, err := Analyze(alternatingFrames(8, 4, 100, 102))
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(res.MeanVariance-1.0) > 1e-9 {
		t.Errorf("MeanVariance = %v, want 1", res.MeanVariance)
	}

	want := 1.0 / 1.1
	if math.Abs(res.StabilityScore-want) > 1e-9 {
		t.Errorf("StabilityScore = %v, want %v", res.StabilityScore, want)
	}

	if math.Abs(res.TemporalSNR-101.0) > 1e-9 {
		t.Errorf("TemporalSNR = %v, want 101", res.TemporalSNR)
	}

	if res.FlickerEnergy < 0.99 {
		t.Errorf("FlickerEnergy = %v, want ~1 (all power at Nyquist)", res.FlickerEnergy)
	}
}

func TestSlowDriftHasLowFlicker(t *testing.T) {
	// A slow triangle over 8 frames keeps nearly all spectral power in the
	// fundamental; a frame-rate toggle puts it all at Nyquist.
	levels := []uint8{100, 101, 102, 103, 104, 103, 102, 101}

	slow := make([]led.FrameU8, len(levels))
	for t := range slow {
		slow[t] = led.NewFrameU8(4)
		for idx := range slow[t] {
			slow[t][idx] = levels[t]
		}
	}

	resSlow, err := Analyze(slow)
	if err != nil {
		t.Fatal(err)
	}

	resFast, err := Analyze(alternatingFrames(8, 4, 100, 102))
	if err != nil {
		t.Fatal(err)
	}

	if resSlow.FlickerEnergy > 0.1 {
		t.Errorf("slow drift FlickerEnergy = %v, want < 0.1", resSlow.FlickerEnergy)
	}

	if resSlow.FlickerEnergy >= resFast.FlickerEnergy {
		t.Errorf("slow flicker %v should be below fast flicker %v",
			resSlow.FlickerEnergy, resFast.FlickerEnergy)
	}
}

func TestShortSequenceSkipsFlicker(t *testing.T) {
	// Below 4 frames the spectrum cannot be split into halves; the flicker
	// ratio is the neutral 0 while the variance statistics still apply.
	res, err := Analyze(alternatingFrames(3, 4, 100, 102))
	if err != nil {
		t.Fatal(err)
	}

	if res.FlickerEnergy != 0 {
		t.Errorf("FlickerEnergy = %v, want 0 for a 3-frame sequence", res.FlickerEnergy)
	}

	if res.MeanVariance <= 0 {
		t.Errorf("MeanVariance = %v, want > 0", res.MeanVariance)
	}
}

func TestMoreFlickerLowersScore(t *testing.T) {
	calm, err := Analyze(alternatingFrames(8, 4, 100, 101))
	if err != nil {
		t.Fatal(err)
	}

	noisy, err := Analyze(alternatingFrames(8, 4, 90, 110))
	if err != nil {
		t.Fatal(err)
	}

	if noisy.StabilityScore >= calm.StabilityScore {
		t.Errorf("noisy score %v should be below calm score %v",
			noisy.StabilityScore, calm.StabilityScore)
	}
}
