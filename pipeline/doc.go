// Package pipeline composes the per-controller LED processing chains: a
// gamma-correction stage plus the matching quantiser stage(s) behind a
// uniform frame-processing contract.
//
// Three pipelines are provided, one per simulated controller firmware:
//
//   - [NewEmotiscope]: float gamma LUT, sigma-delta temporal dithering
//   - [NewLWOS]: integer gamma LUT, 4x4 Bayer spatial dither, temporal
//     LSB-toggle model
//   - [NewSensoryBridge]: incandescent filter, brightness, float gamma LUT,
//     4-phase threshold dithering
//
// A pipeline instance is stateful and must process frames in strict
// temporal order from a single goroutine. For parallel throughput, create
// one independent pipeline per worker.
package pipeline
