package sim

import "math/rand/v2"

// RateSource yields the weekly growth rate to apply at the next update.
// Implementations return a fraction, e.g. 0.013 for +1.3%.
type RateSource interface {
	Next() float64
}

// UniformRate draws rates uniformly from [Min, Max].
type UniformRate struct {
	Min float64
	Max float64
}

// NewUniformRate builds a UniformRate, swapping inverted bounds.
func NewUniformRate(min, max float64) UniformRate {
	if max < min {
		min, max = max, min
	}
	return UniformRate{Min: min, Max: max}
}

func (u UniformRate) Next() float64 {
	return u.Min + rand.Float64()*(u.Max-u.Min)
}
