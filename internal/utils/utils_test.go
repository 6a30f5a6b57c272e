package utils

import (
	"math"
	"testing"
)

func TestSumSlice(t *testing.T) {
	if got := SumSlice([]int{1, 2, 3, 4}); got != 10 {
		t.Fatalf("SumSlice ints = %d, want 10", got)
	}
	if got := SumSlice([]float64{0.5, 0.25, 0.25}); got != 1.0 {
		t.Fatalf("SumSlice floats = %g, want 1", got)
	}
}

func TestIntersect(t *testing.T) {
	found := Intersect([]string{"nm", "Ang"}, []string{"mT", "nm"})
	if found == nil || *found != "nm" {
		t.Fatalf("Intersect = %v, want nm", found)
	}
	if Intersect([]string{"nm"}, []string{"mT"}) != nil {
		t.Fatal("Intersect found a match in disjoint sets")
	}
}

func TestLinearGrid(t *testing.T) {
	g := LinearGrid(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(g[i]-want[i]) > 1e-15 {
			t.Fatalf("LinearGrid[%d] = %.15g, want %g", i, g[i], want[i])
		}
	}
}

func TestLogGrid(t *testing.T) {
	g := LogGrid(1e-3, 1e1, 5)
	if len(g) != 5 {
		t.Fatalf("LogGrid length %d, want 5", len(g))
	}
	if math.Abs(g[0]-1e-3) > 1e-18 || math.Abs(g[4]-10) > 1e-13 {
		t.Fatalf("LogGrid endpoints %.15g, %.15g", g[0], g[4])
	}
	// constant ratio between neighbours
	r := g[1] / g[0]
	for i := 2; i < len(g); i++ {
		if math.Abs(g[i]/g[i-1]-r) > 1e-12*r {
			t.Fatalf("LogGrid not geometric at %d: %.15g vs %.15g", i, g[i]/g[i-1], r)
		}
	}
}

func TestGetFilename(t *testing.T) {
	if got := GetFilename("data/curves/sample.toml"); got != "sample" {
		t.Fatalf("GetFilename = %q, want sample", got)
	}
}
