package accuracy_test

import (
	"fmt"

	"github.com/cwbudde/algo-ledsim/led"
	"github.com/cwbudde/algo-ledsim/measure/accuracy"
)

func ExampleAnalyze() {
	// A 127/128 alternation reproduces a mid-grey reference of 127.5
	// output units exactly on average, although no single frame can.
	frames := make([]led.FrameU8, 4)
	for t := range frames {
		v := uint8(127 + t%2)

		frames[t] = led.NewFrameU8(2)
		for idx := range frames[t] {
			frames[t][idx] = v
		}
	}

	reference := led.NewFrame(2)
	for idx := range reference {
		reference[idx] = 0.5
	}

	res, err := accuracy.Analyze(frames, reference)
	if err != nil {
		panic(err)
	}

	fmt.Printf("per-frame MAE: %.2f\n", res.MAE)
	fmt.Printf("time-averaged MAE: %.2f\n", res.TimeAveragedMAE)
	fmt.Printf("accuracy score: %.3f\n", res.AccuracyScore)
	// Output:
	// per-frame MAE: 0.50
	// time-averaged MAE: 0.00
	// accuracy score: 0.909
}
