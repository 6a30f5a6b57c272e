package kernel

import (
	"math"
	"testing"
)

func TestPolarizationWeightsSpinResolved(t *testing.T) {
	w := PolarizationWeights(1, 1)
	for ch := 0; ch < NumChannels; ch++ {
		want := 0.0
		if ch == UUReal || ch == UUImag {
			want = 1.0
		}
		if w[ch] != want {
			t.Fatalf("fully polarised weights: w[%d] = %g, want %g", ch, w[ch], want)
		}
	}
}

func TestPolarizationWeightsUnpolarised(t *testing.T) {
	w := PolarizationWeights(0.5, 0.5)
	for ch := 0; ch < NumChannels; ch++ {
		if math.Abs(w[ch]-0.5) > 1e-15 {
			t.Fatalf("unpolarised weights: w[%d] = %.15g, want 0.5", ch, w[ch])
		}
	}
}

func TestPolarizationWeightsClipped(t *testing.T) {
	// efficiencies outside [0,1] are folded back before use
	want := PolarizationWeights(0.3, 1)
	if got := PolarizationWeights(-0.3, 1.7); got != want {
		t.Fatalf("clipped weights differ: %v vs %v", got, want)
	}
}

func TestCombineNuclearOnly(t *testing.T) {
	const nuc = 2.5
	sld := CombineCrossSections(0.03, 0.01, 0.02, 0, 0, 0, 0, 0, 0, nuc)
	if sld[DDReal] != nuc || sld[UUReal] != nuc {
		t.Fatalf("nuclear-only non-spin-flip: dd=%.15g uu=%.15g, want %g", sld[DDReal], sld[UUReal], nuc)
	}
	for _, ch := range []int{DDImag, UUImag, DUReal, DUImag, UDReal, UDImag} {
		if sld[ch] != 0 {
			t.Fatalf("nuclear-only channel %d = %.15g, want 0", ch, sld[ch])
		}
	}
}

func TestCombineParallelMagnetisationDropsOut(t *testing.T) {
	// M parallel to q̂ has no Halpern-Johnson component
	x, y, z := 0.03, -0.01, 0.02
	const scale, nuc = 0.7, 1.1
	sld := CombineCrossSections(x, y, z, scale*x, 0, scale*y, 0, scale*z, 0, nuc)
	if math.Abs(sld[DDReal]-nuc) > 1e-14 || math.Abs(sld[UUReal]-nuc) > 1e-14 {
		t.Fatalf("parallel M: dd=%.15g uu=%.15g, want %g", sld[DDReal], sld[UUReal], nuc)
	}
	for _, ch := range []int{DUReal, DUImag, UDReal, UDImag} {
		if math.Abs(sld[ch]) > 1e-14 {
			t.Fatalf("parallel M: spin-flip channel %d = %.15g, want 0", ch, sld[ch])
		}
	}
}

func TestCombineLongitudinalInPlane(t *testing.T) {
	// q in the detector plane (z=0): the longitudinal component is fully
	// perpendicular and splits the non-spin-flip channels.
	const mz, nuc = 0.8, 1.5
	sld := CombineCrossSections(0.04, 0.03, 0, 0, 0, 0, 0, mz, 0, nuc)
	if math.Abs(sld[DDReal]-(nuc-mz)) > 1e-14 {
		t.Fatalf("dd = %.15g, want %g", sld[DDReal], nuc-mz)
	}
	if math.Abs(sld[UUReal]-(nuc+mz)) > 1e-14 {
		t.Fatalf("uu = %.15g, want %g", sld[UUReal], nuc+mz)
	}
}
