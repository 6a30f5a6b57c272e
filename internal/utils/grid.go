package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LinearGrid returns n points spanning [lo, hi] inclusive.
func LinearGrid(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// LogGrid returns n logarithmically spaced points spanning [lo, hi]
// inclusive. lo and hi must be positive.
func LogGrid(lo, hi float64, n int) []float64 {
	g := floats.Span(make([]float64, n), math.Log10(lo), math.Log10(hi))
	for i := range g {
		g[i] = math.Pow(10.0, g[i])
	}
	return g
}
