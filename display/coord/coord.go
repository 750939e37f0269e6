package coord

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	// Width is the canvas width in pixels and the number of response bins.
	Width = 256
	// Height is the usable chart height in pixels.
	Height = 175
	// SurfaceHeight is the full drawing surface height including the
	// label margin below the chart.
	SurfaceHeight = 205
	// SampleRate is the nominal plugin sample rate. Drawing does not use it.
	SampleRate = 48000

	// MinFrequency is the frequency at x = 0.
	MinFrequency = 20.0
	// DBSpan is the level range from full scale to the chart floor.
	DBSpan = 96.0
)

// log1k is the natural log of the 20 Hz .. 20 kHz ratio.
var log1k = math.Log(1000)

// FrequencyToX returns the horizontal pixel position of f on a canvas of
// the given width.
func FrequencyToX(f, width float64) float64 {
	return width * math.Log(f/MinFrequency) / log1k
}

// XToFrequency is the inverse of FrequencyToX.
func XToFrequency(x, width float64) float64 {
	return MinFrequency * math.Pow(1000, x/width)
}

// FractionToY maps a normalised level (1 = full scale, 0 = floor) to a
// vertical pixel position.
func FractionToY(p float64) float64 {
	return Height - Height*p
}

// DBToY maps a level in dBFS to a vertical pixel position.
func DBToY(db float64) float64 {
	return FractionToY(1 + db/DBSpan)
}

// FractionsToY is the block form of FractionToY. dst and p must have the
// same length.
func FractionsToY(dst, p []float64) {
	if len(dst) != len(p) {
		panic("coord: FractionsToY length mismatch")
	}

	gain := make([]float64, len(p))
	for i := range gain {
		gain[i] = -Height
	}

	vecmath.MulBlock(dst, p, gain)

	for i := range dst {
		dst[i] += Height
	}
}

// Round rounds half up, matching the rounding used by browser hosts.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// GridY returns the crisp single-pixel row for a horizontal grid line at db.
func GridY(db float64) float64 {
	return Round(DBToY(db)) + 0.5
}

// GridX returns the rounded column for a vertical guide at f.
func GridX(f, width float64) float64 {
	return Round(FrequencyToX(f, width))
}
