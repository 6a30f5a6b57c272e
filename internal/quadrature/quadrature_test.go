package quadrature

import (
	"math"
	"testing"

	"micromag/internal/utils"
)

func TestLegendreWeightsSum(t *testing.T) {
	for _, n := range []int{2, 16, 76} {
		tbl := Legendre(n)
		if tbl.Len() != n {
			t.Fatalf("Legendre(%d) has %d nodes", n, tbl.Len())
		}
		if sum := utils.SumSlice(tbl.W); math.Abs(sum-2.0) > 1e-13 {
			t.Fatalf("Legendre(%d) weights sum to %.15g, want 2", n, sum)
		}
	}
}

func TestLegendreSymmetry(t *testing.T) {
	tbl := Legendre(9)
	n := tbl.Len()
	for i := 0; i < n/2; i++ {
		if math.Abs(tbl.X[i]+tbl.X[n-1-i]) > 1e-14 {
			t.Fatalf("nodes not antisymmetric: x[%d]=%.15g, x[%d]=%.15g", i, tbl.X[i], n-1-i, tbl.X[n-1-i])
		}
		if math.Abs(tbl.W[i]-tbl.W[n-1-i]) > 1e-14 {
			t.Fatalf("weights not symmetric: w[%d]=%.15g, w[%d]=%.15g", i, tbl.W[i], n-1-i, tbl.W[n-1-i])
		}
	}
}

func TestLegendrePolynomialExactness(t *testing.T) {
	// the 5-point rule is exact through degree 9
	tbl := Legendre(5)
	sum := 0.0
	for i := range tbl.X {
		sum += tbl.W[i] * math.Pow(tbl.X[i], 8)
	}
	if math.Abs(sum-2.0/9.0) > 1e-14 {
		t.Fatalf("int x^8 over [-1,1]: got %.15g, want %.15g", sum, 2.0/9.0)
	}
}
