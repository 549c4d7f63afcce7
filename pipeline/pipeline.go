package pipeline

import "github.com/cwbudde/algo-ledsim/led"

// Pipeline is the uniform contract shared by the three controller
// simulations. ProcessFrame consumes one float frame in [0, 1] and returns
// a freshly allocated 8-bit frame; quantiser state advances by exactly one
// frame per call. Reset restores the state the pipeline had at
// construction, including its configured seed.
type Pipeline interface {
	ProcessFrame(src led.Frame) (led.FrameU8, error)
	Reset()
	Name() string
	Description() string
	Config() Config
}

// ProcessSequence runs every frame of the stimulus through p in order and
// returns the quantised outputs. It is a convenience for building the
// frame sequences the measure packages consume.
func ProcessSequence(p Pipeline, stimulus []led.Frame) ([]led.FrameU8, error) {
	out := make([]led.FrameU8, 0, len(stimulus))

	for _, frame := range stimulus {
		quantised, err := p.ProcessFrame(frame)
		if err != nil {
			return nil, err
		}

		out = append(out, quantised)
	}

	return out, nil
}
