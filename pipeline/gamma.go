package pipeline

import "math"

// floatLUTSize is the resolution of the float-domain gamma table used by
// the Emotiscope and SensoryBridge pipelines. 2048 entries keep the LUT
// error well below one 8-bit output step.
const floatLUTSize = 2048

// gammaLUT is a float-domain gamma table: input in [0, 1] maps to
// pow(input, gamma) by nearest-entry lookup.
type gammaLUT struct {
	table [floatLUTSize]float32
}

func newGammaLUT(gamma float64) *gammaLUT {
	lut := &gammaLUT{}
	for i := range lut.table {
		lut.table[i] = float32(math.Pow(float64(i)/float64(floatLUTSize-1), gamma))
	}

	return lut
}

// apply maps a clamped [0, 1] component through the table.
func (g *gammaLUT) apply(v float32) float32 {
	if v <= 0 {
		return g.table[0]
	}

	if v >= 1 {
		return g.table[floatLUTSize-1]
	}

	return g.table[int(v*float32(floatLUTSize-1)+0.5)]
}

// gammaLUT8 is the 256-entry integer-domain gamma table used by the LWOS
// pipeline, built exactly as the firmware builds it:
// clip(pow(i/255, gamma)*255 + 0.5, 0, 255).
type gammaLUT8 struct {
	table [256]uint8
}

func newGammaLUT8(gamma float64) *gammaLUT8 {
	lut := &gammaLUT8{}
	for i := range lut.table {
		corrected := math.Pow(float64(i)/255.0, gamma)*255.0 + 0.5

		if corrected < 0 {
			corrected = 0
		}

		if corrected > 255 {
			corrected = 255
		}

		lut.table[i] = uint8(corrected)
	}

	return lut
}
