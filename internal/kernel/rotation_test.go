package kernel

import (
	"math"
	"testing"
)

func TestRotationPreservesMagnitude(t *testing.T) {
	const q = 0.12
	for _, alpha := range []float64{0, 30, 90, 145} {
		for _, beta := range []float64{0, -60, 90, 210} {
			for _, theta := range []float64{0, math.Pi / 5, math.Pi, 1.7 * math.Pi} {
				sinTheta, cosTheta := math.Sincos(theta)
				x, y, z := RotateToSampleFrame(q, cosTheta, sinTheta, alpha, beta)
				if got := magVec(x, y, z); math.Abs(got-q) > 1e-13 {
					t.Fatalf("rotation changed |q| at alpha=%g beta=%g theta=%g: %.15g", alpha, beta, theta, got)
				}
			}
		}
	}
}

func TestRotationIdentityOrientation(t *testing.T) {
	// alpha = beta = 0: the detector plane is the sample x-y plane.
	const q = 0.05
	theta := math.Pi / 3
	sinTheta, cosTheta := math.Sincos(theta)
	x, y, z := RotateToSampleFrame(q, cosTheta, sinTheta, 0, 0)
	if math.Abs(x-q*cosTheta) > 1e-15 || math.Abs(y-q*sinTheta) > 1e-15 || math.Abs(z) > 1e-15 {
		t.Fatalf("identity orientation: got (%.15g, %.15g, %.15g)", x, y, z)
	}
}
