package banding

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ledsim/led"
)

// ErrNoFrames is returned when the analyzed sequence is empty.
var ErrNoFrames = errors.New("banding: at least 1 frame required")

// Result holds the banding metrics for one frame sequence.
type Result struct {
	// BandingScore in [0, 1]; higher means more visible banding.
	BandingScore float64
	// DerivativeStd is the standard deviation of all LED-to-LED first
	// differences across frames and channels.
	DerivativeStd float64
	// DistinctLevels counts the distinct intensity levels of the per-LED
	// output after averaging across frames and channels.
	DistinctLevels int
	// Entropy is the Shannon entropy (bits) of the 256-bin histogram of
	// all output components.
	Entropy float64
	// FrameCount and LEDCount describe the analyzed sequence.
	FrameCount int
	LEDCount   int
}

// Analyze computes the banding metrics of a quantised frame sequence.
// All frames must share the shape of the first.
func Analyze(frames []led.FrameU8) (Result, error) {
	if len(frames) == 0 {
		return Result{}, ErrNoFrames
	}

	numLEDs := frames[0].NumLEDs()
	if numLEDs < 1 {
		return Result{}, fmt.Errorf("banding: empty frame")
	}

	for i, frame := range frames {
		if err := led.CheckShape(numLEDs, len(frame)); err != nil {
			return Result{}, fmt.Errorf("banding: frame %d: %w", i, err)
		}
	}

	res := Result{
		FrameCount: len(frames),
		LEDCount:   numLEDs,
	}

	res.DerivativeStd = derivativeStd(frames, numLEDs)
	res.DistinctLevels = distinctLevels(frames, numLEDs)
	res.Entropy = histogramEntropy(frames)

	// High derivative spread plus low entropy means the gradient collapsed
	// onto few, widely spaced levels.
	score := (res.DerivativeStd / 50.0) * (1.0 - math.Min(res.Entropy/8.0, 1.0))
	res.BandingScore = math.Min(math.Max(score, 0), 1)

	return res, nil
}

// derivativeStd computes the standard deviation of LED-to-LED first
// differences, pooled over frames and channels.
func derivativeStd(frames []led.FrameU8, numLEDs int) float64 {
	if numLEDs < 2 {
		return 0
	}

	diffs := make([]float64, 0, len(frames)*(numLEDs-1)*led.Channels)

	for _, frame := range frames {
		for i := 0; i < numLEDs-1; i++ {
			for ch := range led.Channels {
				a := float64(frame[led.Idx(i, ch)])
				b := float64(frame[led.Idx(i+1, ch)])
				diffs = append(diffs, b-a)
			}
		}
	}

	if len(diffs) == 0 {
		return 0
	}

	mean := vecmath.Sum(diffs) / float64(len(diffs))

	variance := 0.0
	for _, d := range diffs {
		dev := d - mean
		variance += dev * dev
	}

	return math.Sqrt(variance / float64(len(diffs)))
}

// distinctLevels averages each LED across frames and channels and counts
// the distinct levels of the rounded result.
func distinctLevels(frames []led.FrameU8, numLEDs int) int {
	var seen [256]bool

	count := 0
	samples := float64(len(frames) * led.Channels)

	for i := range numLEDs {
		sum := 0.0
		for _, frame := range frames {
			for ch := range led.Channels {
				sum += float64(frame[led.Idx(i, ch)])
			}
		}

		level := led.ClampU8(int(math.Round(sum / samples)))
		if !seen[level] {
			seen[level] = true
			count++
		}
	}

	return count
}

// histogramEntropy computes the Shannon entropy, in bits, of the 256-bin
// histogram of all components in all frames.
func histogramEntropy(frames []led.FrameU8) float64 {
	var hist [256]int

	total := 0
	for _, frame := range frames {
		for _, v := range frame {
			hist[v]++
		}

		total += len(frame)
	}

	if total == 0 {
		return 0
	}

	entropy := 0.0
	for _, n := range hist {
		if n == 0 {
			continue
		}

		p := float64(n) / float64(total)
		entropy -= p * math.Log2(p)
	}

	return entropy
}
