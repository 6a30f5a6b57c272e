// Package quadrature provides fixed Gauss-Legendre node/weight tables on
// [-1, 1], shared read-only by every intensity evaluation.
package quadrature

import "gonum.org/v1/gonum/integrate/quad"

// Table holds Gauss-Legendre nodes and weights on [-1, 1]. The n-point rule
// is exact for polynomial integrands up to degree 2n-1.
type Table struct {
	X []float64
	W []float64
}

// Legendre builds the n-point Gauss-Legendre table.
func Legendre(n int) Table {
	t := Table{X: make([]float64, n), W: make([]float64, n)}
	quad.Legendre{}.FixedLocations(t.X, t.W, -1.0, 1.0)
	return t
}

func (t Table) Len() int { return len(t.X) }
