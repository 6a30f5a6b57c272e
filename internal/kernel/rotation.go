package kernel

import "math"

// RotateToSampleFrame rotates a scattering vector of magnitude q and detector
// plane orientation (cosTheta, sinTheta) into the sample frame. The magnetic
// field is along (0,0,1); the detector orientation precesses in a cone around
// it with inclination theta. alpha and beta are in [deg].
func RotateToSampleFrame(q, cosTheta, sinTheta, alpha, beta float64) (x, y, z float64) {
	sinAlpha, cosAlpha := math.Sincos(alpha * math.Pi / 180.0)
	sinBeta, cosBeta := math.Sincos(beta * math.Pi / 180.0)

	x = q * cosAlpha * cosTheta
	y = q * (cosTheta*sinAlpha*sinBeta + cosBeta*sinTheta)
	z = q * (-cosBeta*cosTheta*sinAlpha + sinBeta*sinTheta)
	return
}
