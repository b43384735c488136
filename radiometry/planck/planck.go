// Package planck evaluates Planck's radiation law for wavelengths in microns
// and absolute temperatures in Kelvin.
//
// The functions in this package perform no validation. Callers that accept
// untrusted input should run [ValidateWavelength] or [ValidateWavelengths]
// first; the radiator package does this on every call.
//
// # Numeric behaviour
//
// All arithmetic is float64. Nothing is clamped: when C2/(lambda*T) is large
// the exponential dominates and the result underflows toward zero, and at
// T = 0 the exponential is +Inf and the exitance is exactly 0.
package planck

import "math"

// Exitance returns blackbody spectral exitance [W/m^2/um] at wavelength [um]
// and temperature [K]:
//
//	M(lambda) = C1 / lambda^5 / (exp(C2 / (lambda*T)) - 1)
func Exitance(wavelength, temperature float64) float64 {
	return C1 / math.Pow(wavelength, 5) / (mathExp(C2/(wavelength*temperature)) - 1)
}

// ExitanceTo computes [Exitance] for each wavelength into dst.
//
// This is the zero-allocation path; every element is evaluated independently
// so dst[i] == Exitance(wavelengths[i], temperature). Panics if lengths differ.
func ExitanceTo(dst, wavelengths []float64, temperature float64) {
	if len(dst) != len(wavelengths) {
		panic("planck: dst and wavelengths must have same length")
	}
	for i, w := range wavelengths {
		dst[i] = Exitance(w, temperature)
	}
}
