package kernel

import (
	"math"

	"micromag/internal/quadrature"
)

// gauss matches the 76-point table of the reference implementation.
var gauss = quadrature.Legendre(76)

const (
	weightFloor = 1e-8
	qFloor      = 1e-16 // [Å^-1]
)

// orientationAverage integrates the weighted squared channel amplitudes over
// the local easy-axis angle gamma, uniform on [0, 2 pi): an isotropic
// ensemble of randomly oriented, particle-to-particle uncorrelated anisotropy
// axes. For textured materials see Weissmueller et al. PRB 63, 214414 (2001).
// (x, y, z) is the rotated scattering vector; mz, nuc and hkAmp are the
// longitudinal-magnetic, nuclear and anisotropy-field core-shell amplitudes.
func orientationAverage(x, y, z, mz, nuc, hkAmp float64, p Params, weights [NumChannels]float64, tbl quadrature.Table) float64 {
	total := 0.0
	for i := range tbl.X {
		gamma := math.Pi * (tbl.X[i] + 1.0) // 0 .. 2 pi
		sinGamma, cosGamma := math.Sincos(gamma)
		// Only the core of the defect/particle carries an effective
		// anisotropy; for more complex spatial profiles of the anisotropy
		// see Michels PRB 82, 024433 (2010).
		hkx := hkAmp * sinGamma
		hky := hkAmp * cosGamma

		mxr := MxReal(x, y, z, mz, hkx, hky, p.HiField, p.MSat, p.ExchangeA, p.DMI)
		mxi := MxImag(x, y, z, mz, hkx, hky, p.HiField, p.MSat, p.ExchangeA, p.DMI)
		myr := MyReal(x, y, z, mz, hkx, hky, p.HiField, p.MSat, p.ExchangeA, p.DMI)
		myi := MyImag(x, y, z, mz, hkx, hky, p.HiField, p.MSat, p.ExchangeA, p.DMI)

		sld := CombineCrossSections(x, y, z, mxr, mxi, myr, myi, mz, 0, nuc)
		form := 0.0
		for xs := 0; xs < NumChannels; xs++ {
			if weights[xs] > weightFloor {
				form += weights[xs] * sld[xs] * sld[xs]
			}
		}
		total += tbl.W[i] * form
	}
	return total
}

// Iqxy is the 2D scattering intensity at the detector point (qx, qy) [cm^-1].
func Iqxy(qx, qy float64, p Params) float64 {
	return IqxyTable(qx, qy, p, gauss)
}

// IqxyTable is Iqxy with an explicit quadrature table.
func IqxyTable(qx, qy float64, p Params, tbl quadrature.Table) float64 {
	q := magVec(qx, qy, 0)
	if q <= qFloor {
		return 0.0
	}
	cosTheta := qx / q
	sinTheta := qy / q
	x, y, z := RotateToSampleFrame(q, cosTheta, sinTheta, p.Alpha, p.Beta)

	weights := PolarizationWeights(p.UpI, p.UpF)
	mz := CoreShellAmplitude(q, p.Radius, p.Thickness, p.MagCore, p.MagShell, p.MagSolvent)
	nuc := CoreShellAmplitude(q, p.Radius, p.Thickness, p.NucCore, p.NucShell, p.NucSolvent)
	hkAmp := CoreShellAmplitude(q, p.Radius, p.Thickness, p.HkCore, 0, 0)

	// convert from [1e-12 Å^-1] to [cm^-1]
	return 0.5 * 1.0e-4 * orientationAverage(x, y, z, mz, nuc, hkAmp, p, weights, tbl)
}

// Iq is the powder-averaged 1D scattering intensity at |q| [cm^-1]: the
// easy-axis average nested inside a quadrature over the detector-plane
// azimuth. The rotated vector entering the inner average depends on theta,
// so the nesting cannot be hoisted.
func Iq(q float64, p Params) float64 {
	return IqTable(q, p, gauss)
}

// IqTable is Iq with an explicit quadrature table, shared by both loops.
func IqTable(q float64, p Params, tbl quadrature.Table) float64 {
	weights := PolarizationWeights(p.UpI, p.UpF)
	mz := CoreShellAmplitude(q, p.Radius, p.Thickness, p.MagCore, p.MagShell, p.MagSolvent)
	nuc := CoreShellAmplitude(q, p.Radius, p.Thickness, p.NucCore, p.NucShell, p.NucSolvent)
	hkAmp := CoreShellAmplitude(q, p.Radius, p.Thickness, p.HkCore, 0, 0)

	total := 0.0
	for j := range tbl.X {
		theta := math.Pi * (tbl.X[j] + 1.0) // 0 .. 2 pi
		sinTheta, cosTheta := math.Sincos(theta)
		x, y, z := RotateToSampleFrame(q, cosTheta, sinTheta, p.Alpha, p.Beta)
		total += tbl.W[j] * orientationAverage(x, y, z, mz, nuc, hkAmp, p, weights, tbl)
	}
	// convert from [1e-12 Å^-1] to [cm^-1]
	return 0.25 * 1.0e-4 * total
}
