package stability

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ledsim/led"
)

// ErrInsufficientFrames is returned when fewer than 2 frames are supplied;
// temporal statistics are undefined for a single frame.
var ErrInsufficientFrames = errors.New("stability: at least 2 frames required")

// flickerMinFrames is the shortest sequence whose spectrum can be split
// into lower and upper halves; below it the flicker ratio is reported as
// the neutral 0.
const flickerMinFrames = 4

// Result holds the temporal stability metrics for one frame sequence.
type Result struct {
	// StabilityScore in (0, 1]; 1 means perfectly static output.
	StabilityScore float64
	// MeanVariance is the per-pixel variance across time, averaged over
	// all pixels.
	MeanVariance float64
	// TemporalSNR is the mean-to-std ratio per pixel, averaged over pixels
	// with nonzero variance. +Inf for a perfectly static sequence.
	TemporalSNR float64
	// FlickerEnergy is the fraction of spectral power of the mean-over-LEDs
	// temporal signal lying in the upper half of the spectrum, in [0, 1].
	FlickerEnergy float64
	// FrameCount and LEDCount describe the analyzed sequence.
	FrameCount int
	LEDCount   int
}

// Analyze computes the temporal stability metrics of a quantised frame
// sequence. At least 2 frames are required; all frames must share the
// shape of the first.
func Analyze(frames []led.FrameU8) (Result, error) {
	if len(frames) < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInsufficientFrames, len(frames))
	}

	numLEDs := frames[0].NumLEDs()
	if numLEDs < 1 {
		return Result{}, fmt.Errorf("stability: empty frame")
	}

	for i, frame := range frames {
		if err := led.CheckShape(numLEDs, len(frame)); err != nil {
			return Result{}, fmt.Errorf("stability: frame %d: %w", i, err)
		}
	}

	res := Result{
		FrameCount: len(frames),
		LEDCount:   numLEDs,
	}

	res.MeanVariance, res.TemporalSNR = pixelStatistics(frames, numLEDs)

	flicker, err := flickerEnergy(frames)
	if err != nil {
		return Result{}, err
	}

	res.FlickerEnergy = flicker
	res.StabilityScore = 1.0 / (1.0 + res.MeanVariance/10.0)

	return res, nil
}

// pixelStatistics computes the mean per-pixel temporal variance and the
// temporal SNR. Pixels with zero variance are noiseless and are excluded
// from the SNR average; an all-static sequence reports +Inf.
func pixelStatistics(frames []led.FrameU8, numLEDs int) (meanVariance, snr float64) {
	components := numLEDs * led.Channels
	frameCount := float64(len(frames))

	varianceSum := 0.0
	snrSum := 0.0
	snrCount := 0

	for idx := range components {
		sum := 0.0
		sumSq := 0.0

		for _, frame := range frames {
			v := float64(frame[idx])
			sum += v
			sumSq += v * v
		}

		mean := sum / frameCount

		variance := sumSq/frameCount - mean*mean
		if variance < 0 {
			variance = 0 // cancellation guard
		}

		varianceSum += variance

		if variance > 0 {
			snrSum += mean / math.Sqrt(variance)
			snrCount++
		}
	}

	meanVariance = varianceSum / float64(components)

	if snrCount == 0 {
		return meanVariance, math.Inf(1)
	}

	return meanVariance, snrSum / float64(snrCount)
}

// flickerEnergy computes the fraction of FFT power of the mean-over-LEDs
// temporal signal in the upper half of the positive-frequency spectrum.
// The DC component is removed first so a bright static level does not
// drown the modulation.
func flickerEnergy(frames []led.FrameU8) (float64, error) {
	if len(frames) < flickerMinFrames {
		return 0, nil
	}

	signal := make([]float64, len(frames))
	for t, frame := range frames {
		sum := 0.0
		for _, v := range frame {
			sum += float64(v)
		}

		signal[t] = sum / float64(len(frame))
	}

	dc := vecmath.Sum(signal) / float64(len(signal))

	fftSize := nextPowerOf2(len(signal))

	inData := make([]complex128, fftSize)
	for t, v := range signal {
		inData[t] = complex(v-dc, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("stability: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)

	err = plan.Forward(out, inData)
	if err != nil {
		return 0, fmt.Errorf("stability: FFT failed: %w", err)
	}

	// Positive-frequency bins 1..Nyquist; "upper half" is everything above
	// half of Nyquist.
	binCount := fftSize / 2

	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for k := 1; k <= binCount; k++ {
		re[k-1] = real(out[k])
		im[k-1] = imag(out[k])
	}

	power := make([]float64, binCount)
	vecmath.Power(power, re, im)

	total := vecmath.Sum(power)
	if total <= 0 {
		return 0, nil // static signal, no flicker
	}

	upper := vecmath.Sum(power[binCount/2:])

	return upper / total, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
