// Package accuracy scores how faithfully a quantised frame sequence
// reproduces a high-precision reference frame.
//
// Per-frame errors capture the instantaneous quantisation noise; the MAE
// of the time-averaged output against the reference captures what the eye
// integrates under temporal dithering and is the number that matters for
// perceived brightness fidelity.
package accuracy
