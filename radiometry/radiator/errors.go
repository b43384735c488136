package radiator

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter classifies every validation failure in this package.
var ErrInvalidParameter = errors.New("invalid parameter")

// Field names reported by [InvalidParameterError].
const (
	FieldAbsoluteTemperature = "absolute_temperature"
	FieldEmissivity          = "emissivity"
	FieldWavelength          = "wavelength"
	FieldDestination         = "dst"
)

// InvalidParameterError reports the offending field and the violated constraint.
type InvalidParameterError struct {
	Field      string
	Constraint string
	Value      float64
	Err        error // Optional: underlying cause
}

func (e *InvalidParameterError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%v %s: %v", ErrInvalidParameter, e.Field, e.Err)
	}
	return fmt.Sprintf("%v %s: %s (got %v)", ErrInvalidParameter, e.Field, e.Constraint, e.Value)
}

// Is matches [ErrInvalidParameter].
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func (e *InvalidParameterError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func invalid(field, constraint string, value float64) error {
	return &InvalidParameterError{Field: field, Constraint: constraint, Value: value}
}
