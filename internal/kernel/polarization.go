package kernel

import "math"

// Channel indices into the 8-element cross-section and weight tuples.
// The order is fixed across the combiner and the weight derivation.
const (
	DDReal = iota
	DDImag
	UUReal
	UUImag
	DUReal
	DUImag
	UDReal
	UDImag
	NumChannels
)

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PolarizationWeights derives the eight polarisation channel weights from the
// incident and final polarisation efficiencies. The normalisation by the
// final-analyser acceptance makes spin-resolved measurements add up to the
// unpolarised (or half-polarised) cross section; the incoming side is assumed
// normalised to the hot channel.
func PolarizationWeights(upI, upF float64) [NumChannels]float64 {
	upI = clip(math.Abs(upI), 0.0, 1.0)
	upF = clip(math.Abs(upF), 0.0, 1.0)
	norm := upF
	if upF < 0.5 {
		norm = 1.0 - upF
	}

	var w [NumChannels]float64
	w[DDReal] = (1.0 - upI) * (1.0 - upF) / norm
	w[DDImag] = w[DDReal]
	w[UUReal] = upI * upF / norm
	w[UUImag] = w[UUReal]
	w[DUReal] = (1.0 - upI) * upF / norm
	w[DUImag] = w[DUReal]
	w[UDReal] = upI * (1.0 - upF) / norm
	w[UDImag] = w[UDReal]
	return w
}

// CombineCrossSections maps the magnetisation Fourier components and the
// nuclear amplitude onto the eight polarised channel amplitudes. The
// transversal magnetisation is a priori in the sample frame. Only the
// Halpern-Johnson vector M - (M.q̂)q̂, the part of the magnetisation
// perpendicular to the scattering vector, scatters.
func CombineCrossSections(x, y, z, mxReal, mxImag, myReal, myImag, mzReal, mzImag, nuc float64) [NumChannels]float64 {
	q := magVec(x, y, z)
	ux, uy, uz := x/q, y/q, z/q

	dotReal := mxReal*ux + myReal*uy + mzReal*uz
	dotImag := mxImag*ux + myImag*uy + mzImag*uz
	perpRealX := mxReal - dotReal*ux
	perpRealY := myReal - dotReal*uy
	perpRealZ := mzReal - dotReal*uz
	perpImagX := mxImag - dotImag*ux
	perpImagY := myImag - dotImag*uy
	perpImagZ := mzImag - dotImag*uz

	var sld [NumChannels]float64
	sld[DDReal] = nuc - perpRealZ
	sld[DDImag] = perpImagZ
	sld[UUReal] = nuc + perpRealZ
	sld[UUImag] = -perpImagZ
	sld[DUReal] = perpRealX + perpImagY
	sld[DUImag] = perpImagX - perpRealY
	sld[UDReal] = perpRealX - perpImagY
	sld[UDImag] = perpImagX + perpRealY
	return sld
}
