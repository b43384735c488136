package radiator

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Graybody is a radiator whose exitance is a constant fraction, the
// emissivity, of blackbody exitance at the same temperature.
type Graybody struct {
	body       Blackbody
	emissivity float64
}

// NewGraybody validates absoluteTemperature [K] and emissivity and returns a
// graybody. The temperature must be finite and >= 0, the emissivity in [0, 1].
func NewGraybody[T, E Real](absoluteTemperature T, emissivity E) (Graybody, error) {
	body, err := NewBlackbody(absoluteTemperature)
	if err != nil {
		return Graybody{}, err
	}
	eps, err := validateEmissivity(float64(emissivity))
	if err != nil {
		return Graybody{}, err
	}
	return Graybody{body: body, emissivity: eps}, nil
}

// MustGraybody is like [NewGraybody] but panics on invalid input.
func MustGraybody[T, E Real](absoluteTemperature T, emissivity E) Graybody {
	g, err := NewGraybody(absoluteTemperature, emissivity)
	if err != nil {
		panic(err)
	}
	return g
}

// AbsoluteTemperature returns the temperature in Kelvin.
func (g Graybody) AbsoluteTemperature() float64 { return g.body.temperature }

// Emissivity returns the dimensionless emissivity.
func (g Graybody) Emissivity() float64 { return g.emissivity }

// Blackbody returns the ideal radiator at the same temperature.
func (g Graybody) Blackbody() Blackbody { return g.body }

// Exitance returns emissivity times blackbody exitance at wavelength [um].
func (g Graybody) Exitance(wavelength float64) (float64, error) {
	m, err := g.body.Exitance(wavelength)
	if err != nil {
		return 0, err
	}
	return g.emissivity * m, nil
}

// ExitanceSlice returns graybody exitance for each wavelength in a new slice.
func (g Graybody) ExitanceSlice(wavelengths []float64) ([]float64, error) {
	out, err := g.body.ExitanceSlice(wavelengths)
	if err != nil {
		return nil, err
	}
	vecmath.ScaleBlockInPlace(out, g.emissivity)
	return out, nil
}

// ExitanceInto writes graybody exitance for each wavelength into dst.
// dst is not modified when an error is returned.
func (g Graybody) ExitanceInto(dst, wavelengths []float64) error {
	if err := g.body.ExitanceInto(dst, wavelengths); err != nil {
		return err
	}
	vecmath.ScaleBlockInPlace(dst, g.emissivity)
	return nil
}

// Radiance returns spectral radiance, Exitance / pi.
func (g Graybody) Radiance(wavelength float64) (float64, error) {
	return radianceOf(g, wavelength)
}

// RadianceSlice returns spectral radiance for each wavelength in a new slice.
func (g Graybody) RadianceSlice(wavelengths []float64) ([]float64, error) {
	return radianceSliceOf(g, wavelengths)
}

// RadianceInto writes spectral radiance for each wavelength into dst.
func (g Graybody) RadianceInto(dst, wavelengths []float64) error {
	return radianceInto(g, dst, wavelengths)
}

// Equal reports whether both graybodies have the same temperature and emissivity.
func (g Graybody) Equal(other Graybody) bool { return g == other }

func (g Graybody) String() string {
	return fmt.Sprintf("Graybody with an emissivity of %v at an absolute temperature of %v [K]",
		g.emissivity, g.body.temperature)
}
