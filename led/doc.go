// Package led defines the frame buffer types shared by the quantisers,
// pipelines, and measurement packages.
//
// A frame is a flat slice of N*3 components in LED-major, channel-minor
// order: frame[i*3+0] is red, frame[i*3+1] green, frame[i*3+2] blue of
// LED i. Float frames hold components in [0, 1]; quantised frames hold
// 8-bit components.
package led
