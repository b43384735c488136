package radiator

import (
	"fmt"
	"math"
)

// Exitancer evaluates spectral exitance [W/m^2/um] for wavelengths in microns.
type Exitancer interface {
	Exitance(wavelength float64) (float64, error)
	ExitanceSlice(wavelengths []float64) ([]float64, error)
	ExitanceInto(dst, wavelengths []float64) error
}

// Radiator is the capability shared by [Blackbody] and [Graybody].
type Radiator interface {
	Exitancer
	fmt.Stringer

	AbsoluteTemperature() float64
	Radiance(wavelength float64) (float64, error)
	RadianceSlice(wavelengths []float64) ([]float64, error)
	RadianceInto(dst, wavelengths []float64) error
}

var (
	_ Radiator = Blackbody{}
	_ Radiator = Graybody{}
)

// Radiance is always derived from the variant's exitance so both stay in sync.

func radianceOf(e Exitancer, wavelength float64) (float64, error) {
	m, err := e.Exitance(wavelength)
	if err != nil {
		return 0, err
	}
	return m / math.Pi, nil
}

func radianceSliceOf(e Exitancer, wavelengths []float64) ([]float64, error) {
	out, err := e.ExitanceSlice(wavelengths)
	if err != nil {
		return nil, err
	}
	divPi(out)
	return out, nil
}

func radianceInto(e Exitancer, dst, wavelengths []float64) error {
	if err := e.ExitanceInto(dst, wavelengths); err != nil {
		return err
	}
	divPi(dst)
	return nil
}

// divPi divides in place; scaling by 1/pi would not round the same way.
func divPi(x []float64) {
	for i := range x {
		x[i] /= math.Pi
	}
}
