package radiator

import (
	"fmt"

	"github.com/cwbudde/algo-radiometry/radiometry/planck"
)

// Blackbody is an ideal radiator with emissivity 1.
//
// The zero value is a valid blackbody at 0 K.
type Blackbody struct {
	temperature float64
}

// NewBlackbody validates absoluteTemperature [K] and returns a blackbody.
// The temperature must be finite and >= 0.
func NewBlackbody[T Real](absoluteTemperature T) (Blackbody, error) {
	t, err := validateTemperature(float64(absoluteTemperature))
	if err != nil {
		return Blackbody{}, err
	}
	return Blackbody{temperature: t}, nil
}

// MustBlackbody is like [NewBlackbody] but panics on invalid input.
func MustBlackbody[T Real](absoluteTemperature T) Blackbody {
	b, err := NewBlackbody(absoluteTemperature)
	if err != nil {
		panic(err)
	}
	return b
}

// AbsoluteTemperature returns the temperature in Kelvin.
func (b Blackbody) AbsoluteTemperature() float64 { return b.temperature }

// Exitance returns spectral exitance [W/m^2/um] at wavelength [um].
func (b Blackbody) Exitance(wavelength float64) (float64, error) {
	if err := validateWavelength(wavelength); err != nil {
		return 0, err
	}
	return planck.Exitance(wavelength, b.temperature), nil
}

// ExitanceSlice returns spectral exitance for each wavelength in a new slice.
func (b Blackbody) ExitanceSlice(wavelengths []float64) ([]float64, error) {
	if err := validateWavelengths(wavelengths); err != nil {
		return nil, err
	}
	out := make([]float64, len(wavelengths))
	planck.ExitanceTo(out, wavelengths, b.temperature)
	return out, nil
}

// ExitanceInto writes spectral exitance for each wavelength into dst.
// dst is not modified when an error is returned.
func (b Blackbody) ExitanceInto(dst, wavelengths []float64) error {
	if err := validateInto(dst, wavelengths); err != nil {
		return err
	}
	planck.ExitanceTo(dst, wavelengths, b.temperature)
	return nil
}

// Radiance returns spectral radiance, Exitance / pi.
func (b Blackbody) Radiance(wavelength float64) (float64, error) {
	return radianceOf(b, wavelength)
}

// RadianceSlice returns spectral radiance for each wavelength in a new slice.
func (b Blackbody) RadianceSlice(wavelengths []float64) ([]float64, error) {
	return radianceSliceOf(b, wavelengths)
}

// RadianceInto writes spectral radiance for each wavelength into dst.
func (b Blackbody) RadianceInto(dst, wavelengths []float64) error {
	return radianceInto(b, dst, wavelengths)
}

// Equal reports whether both blackbodies have the same temperature.
func (b Blackbody) Equal(other Blackbody) bool { return b == other }

func (b Blackbody) String() string {
	return fmt.Sprintf("Blackbody at an absolute temperature of %v [K]", b.temperature)
}
