package testutil

import "math/rand"

// FlatLevels returns n bins all set to value.
func FlatLevels(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// RampLevels returns n bins rising linearly from 0 to 1.
func RampLevels(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// DeterministicLevels returns n bins in [0,1) from a fixed seed.
func DeterministicLevels(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}
