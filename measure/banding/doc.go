// Package banding quantifies visible brightness stepping in quantised LED
// frame sequences.
//
// Banding appears when quantisation collapses a smooth spatial gradient
// onto too few output levels: the LED-to-LED derivative becomes spiky and
// the value histogram concentrates into a handful of bins. The analyzer
// combines the spatial-derivative spread with histogram entropy into a
// single score where higher means more visible banding.
package banding
