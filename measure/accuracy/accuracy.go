package accuracy

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ledsim/led"
)

// ErrNoFrames is returned when the analyzed sequence is empty.
var ErrNoFrames = errors.New("accuracy: at least 1 frame required")

// Result holds the accuracy metrics for one frame sequence against a
// reference frame.
type Result struct {
	// AccuracyScore in (0, 1]; 1 means exact reproduction.
	AccuracyScore float64
	// MAE is the mean absolute error over all frames and components,
	// in 8-bit output units.
	MAE float64
	// RMSError is the root-mean-square error over all frames and components.
	RMSError float64
	// MaxError is the largest single-component error seen in any frame.
	MaxError float64
	// TimeAveragedMAE is the MAE of the per-pixel time-averaged output
	// against the reference.
	TimeAveragedMAE float64
	// FrameCount and LEDCount describe the analyzed sequence.
	FrameCount int
	LEDCount   int
}

// Analyze compares a quantised frame sequence against a high-precision
// reference frame with components in [0, 1]. The reference is scaled to
// the 8-bit output range before comparison. All frames must share the
// reference's shape.
func Analyze(frames []led.FrameU8, reference led.Frame) (Result, error) {
	if len(frames) == 0 {
		return Result{}, ErrNoFrames
	}

	numLEDs := reference.NumLEDs()
	if numLEDs < 1 {
		return Result{}, fmt.Errorf("accuracy: empty reference frame")
	}

	for i, frame := range frames {
		if err := led.CheckShape(numLEDs, len(frame)); err != nil {
			return Result{}, fmt.Errorf("accuracy: frame %d: %w", i, err)
		}
	}

	components := numLEDs * led.Channels

	// Reference in output units.
	ref := make([]float64, components)
	for idx, v := range reference {
		ref[idx] = float64(v)
	}

	vecmath.ScaleBlockInPlace(ref, 255.0)

	diff := make([]float64, components)
	absDiff := make([]float64, components)
	timeSum := make([]float64, components)

	maeSum := 0.0
	sqSum := 0.0
	maxErr := 0.0

	for _, frame := range frames {
		for idx, v := range frame {
			d := float64(v) - ref[idx]
			diff[idx] = d
			absDiff[idx] = math.Abs(d)
			timeSum[idx] += float64(v)
		}

		maeSum += vecmath.Sum(absDiff)

		vecmath.MulBlockInPlace(diff, diff)
		sqSum += vecmath.Sum(diff)

		frameMax := vecmath.MaxAbs(absDiff)
		if frameMax > maxErr {
			maxErr = frameMax
		}
	}

	samples := float64(len(frames) * components)

	res := Result{
		MAE:        maeSum / samples,
		RMSError:   math.Sqrt(sqSum / samples),
		MaxError:   maxErr,
		FrameCount: len(frames),
		LEDCount:   numLEDs,
	}

	vecmath.ScaleBlockInPlace(timeSum, 1.0/float64(len(frames)))

	avgErrSum := 0.0
	for idx, avg := range timeSum {
		avgErrSum += math.Abs(avg - ref[idx])
	}

	res.TimeAveragedMAE = avgErrSum / float64(components)
	res.AccuracyScore = 1.0 / (1.0 + res.MAE/5.0)

	return res, nil
}
