package radiator

import (
	"math"

	"github.com/cwbudde/algo-radiometry/radiometry/planck"
)

func validateTemperature(t float64) (float64, error) {
	if !(t >= 0) {
		return 0, invalid(FieldAbsoluteTemperature, "must be >= 0", t)
	}
	if math.IsInf(t, 1) {
		return 0, invalid(FieldAbsoluteTemperature, "must be finite", t)
	}
	if t == 0 {
		t = 0 // drop the sign of -0
	}
	return t, nil
}

func validateEmissivity(e float64) (float64, error) {
	if !(e >= 0) {
		return 0, invalid(FieldEmissivity, "must be >= 0", e)
	}
	if e > 1 {
		return 0, invalid(FieldEmissivity, "must be <= 1", e)
	}
	if e == 0 {
		e = 0
	}
	return e, nil
}

func validateWavelength(w float64) error {
	if err := planck.ValidateWavelength(w); err != nil {
		return &InvalidParameterError{Field: FieldWavelength, Constraint: "must be > 0", Value: w, Err: err}
	}
	return nil
}

func validateWavelengths(ws []float64) error {
	if err := planck.ValidateWavelengths(ws); err != nil {
		return &InvalidParameterError{Field: FieldWavelength, Constraint: "must be > 0", Value: math.NaN(), Err: err}
	}
	return nil
}

func validateInto(dst, ws []float64) error {
	if len(dst) != len(ws) {
		return invalid(FieldDestination, "must have same length as wavelengths", float64(len(dst)))
	}
	return validateWavelengths(ws)
}
