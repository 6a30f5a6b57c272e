package kernel

import "math"

const fourPiOver3 = 4.0 * math.Pi / 3.0

// j1c is the sphere Bessel kernel 3*(sin x - x cos x)/x^3, with limit 1 at
// x -> 0. The series branch avoids the cancellation of the closed form at
// small arguments.
func j1c(x float64) float64 {
	if math.Abs(x) < 1e-4 {
		x2 := x * x
		return 1.0 - x2/10.0 + x2*x2/280.0
	}
	return 3.0 * (math.Sin(x) - x*math.Cos(x)) / (x * x * x)
}

// CoreShellAmplitude is the scattering amplitude of a core-shell sphere for
// one triple of contrast values. It serves nuclear, longitudinal-magnetic and
// anisotropy-field amplitudes alike; for the anisotropy field only the core
// carries a non-zero contrast.
func CoreShellAmplitude(q, radius, thickness, coreSLD, shellSLD, solventSLD float64) float64 {
	outer := radius + thickness
	coreVol := fourPiOver3 * cube(radius)
	outerVol := fourPiOver3 * cube(outer)
	return coreVol*(coreSLD-shellSLD)*j1c(q*radius) +
		outerVol*(shellSLD-solventSLD)*j1c(q*outer)
}

// FormVolume is the particle volume including the shell.
func FormVolume(radius, thickness float64) float64 {
	return fourPiOver3 * cube(radius+thickness)
}

// EffectiveRadius selects the radius used for excluded-volume and
// polydispersity handling: mode 2 is the core radius, every other mode the
// outer radius.
func EffectiveRadius(mode int, radius, thickness float64) float64 {
	if mode == 2 {
		return radius
	}
	return radius + thickness
}
