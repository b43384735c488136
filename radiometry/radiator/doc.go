// Package radiator models blackbody and graybody radiators as immutable,
// validated values and evaluates their spectral exitance and radiance.
//
// Radiators are created through [NewBlackbody] and [NewGraybody], which
// validate their inputs once and convert them to float64. The resulting
// values have no setters and are safe to copy, compare with == and share
// between goroutines.
//
// # Scalars and slices
//
// Every evaluation comes in three shapes:
//
//   - Exitance / Radiance take one wavelength and return one value.
//   - ExitanceSlice / RadianceSlice return a new slice of the same length and
//     order as the input. A length-1 input gives a length-1 result.
//   - ExitanceInto / RadianceInto write into a caller-owned slice and do not
//     allocate.
//
// Wavelengths are in microns and must all be > 0. The whole input is checked
// before anything is computed, so an error never comes with partial results.
//
// # Variants
//
// A [Graybody] scales [Blackbody] exitance by its emissivity. Radiance is
// always derived from the variant's own exitance, divided by pi.
package radiator
