package planck

import (
	"errors"
	"fmt"
)

// ErrNonPositiveWavelength is returned when a wavelength is not strictly positive.
var ErrNonPositiveWavelength = errors.New("wavelength(s) must be > 0 [microns]")

var (
	errGridPoints = errors.New("grid needs at least 2 points")
	errGridBounds = errors.New("grid bounds must satisfy 0 < lo <= hi")
)

// ValidateWavelength checks that wavelength is strictly positive.
// NaN is rejected.
func ValidateWavelength(wavelength float64) error {
	if !(wavelength > 0) {
		return fmt.Errorf("%w (got %v)", ErrNonPositiveWavelength, wavelength)
	}
	return nil
}

// ValidateWavelengths checks every element before any computation happens.
// The first offending element is reported together with its index.
func ValidateWavelengths(wavelengths []float64) error {
	for i, w := range wavelengths {
		if !(w > 0) {
			return fmt.Errorf("%w (got %v at index %d)", ErrNonPositiveWavelength, w, i)
		}
	}
	return nil
}
