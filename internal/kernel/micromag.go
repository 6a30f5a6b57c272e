package kernel

import "math"

// Mz is the longitudinal magnetisation component along the applied field.
// In the approach to saturation it is (almost) field-independent and reflects
// the nanoscale variation of the saturation magnetisation. The misalignment
// caused by perturbing anisotropy or dipolar fields enters the transversal
// components Mx and My, which react to the field. The micromagnetic solution
// implemented below is from Michels et al. PRB 94, 054424 (2016).

const hiFloor = 1e-6 // [T]

// ReducedField is the micromagnetic susceptibility chi(q): the response of
// the transversal magnetisation to a perturbing field against the internal
// field and the exchange stiffness.
// q in [Å^-1], ms and hi in [T], a in [1e-12 J/m]; the factor 10 carries the
// unit conversion together with mu0 in [4 pi 1e-7].
func ReducedField(q, ms, hi, a float64) float64 {
	if hi < hiFloor {
		hi = hiFloor
	}
	return ms / (hi + 2.0*a*4.0*math.Pi/ms*q*q*10.0)
}

// DMILength is the chiral length scale set by the DMI, evaluated for one
// signed projection of the scattering vector. Linear in d and odd in qval.
// ms in [T], d in [1e-3 J/m^2].
func DMILength(ms, d, qval float64) float64 {
	return 2.0 * d * 4.0 * math.Pi / ms / ms * qval
}

// The four transversal magnetisation Fourier components share one
// denominator, 1 + chi*(x^2+y^2)/q^2 - (chi*L_D(z))^2, which can approach
// zero near a DMI-driven resonance. No guard is applied here: callers must
// ensure q != 0, and a near-singular parameter set produces values that
// propagate to the caller as-is.

// MxReal is the real part of the transversal magnetisation along x.
func MxReal(x, y, z, mz, hkx, hky, hi, ms, a, d float64) float64 {
	q := magVec(x, y, z)
	q2 := q * q
	chi := ReducedField(q, ms, hi, a)
	lq := DMILength(ms, d, q)
	lz := DMILength(ms, d, z)
	num := hkx*(1.0+chi*y*y/q2) - ms*mz*x*z/q2*(1.0+chi*lq*lq) - hky*chi*x*y/q2
	return chi * num / (1.0 + chi*(x*x+y*y)/q2 - square(chi*lz))
}

// MxImag is the imaginary part of the transversal magnetisation along x.
// Identically zero for d == 0.
func MxImag(x, y, z, mz, hkx, hky, hi, ms, a, d float64) float64 {
	q := magVec(x, y, z)
	q2 := q * q
	chi := ReducedField(q, ms, hi, a)
	num := ms*mz*(1.0+chi)*DMILength(ms, d, y) + hky*chi*DMILength(ms, d, z)
	return -chi * num / (1.0 + chi*(x*x+y*y)/q2 - square(chi*DMILength(ms, d, z)))
}

// MyReal is the real part of the transversal magnetisation along y.
func MyReal(x, y, z, mz, hkx, hky, hi, ms, a, d float64) float64 {
	q := magVec(x, y, z)
	q2 := q * q
	chi := ReducedField(q, ms, hi, a)
	lq := DMILength(ms, d, q)
	lz := DMILength(ms, d, z)
	num := hky*(1.0+chi*x*x/q2) - ms*mz*y*z/q2*(1.0+chi*lq*lq) - hkx*chi*x*y/q2
	return chi * num / (1.0 + chi*(x*x+y*y)/q2 - square(chi*lz))
}

// MyImag is the imaginary part of the transversal magnetisation along y.
// Identically zero for d == 0.
func MyImag(x, y, z, mz, hkx, hky, hi, ms, a, d float64) float64 {
	q := magVec(x, y, z)
	q2 := q * q
	chi := ReducedField(q, ms, hi, a)
	num := ms*mz*(1.0+chi)*DMILength(ms, d, x) - hkx*chi*DMILength(ms, d, z)
	return chi * num / (1.0 + chi*(x*x+y*y)/q2 - square(chi*DMILength(ms, d, z)))
}

func magVec(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

func square(v float64) float64 { return v * v }

func cube(v float64) float64 { return v * v * v }
