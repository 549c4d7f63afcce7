// Package stability quantifies frame-to-frame flicker in quantised LED
// frame sequences.
//
// Temporal dithering trades spatial banding for temporal noise; this
// analyzer measures how much. Per-pixel variance across time captures the
// raw modulation depth, the temporal SNR relates each pixel's mean level
// to its fluctuation, and the flicker energy locates the modulation in the
// spectrum: power concentrated in the upper half correlates with visible
// shimmer at typical refresh rates.
package stability
