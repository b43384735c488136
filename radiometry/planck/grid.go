package planck

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GridOption configures wavelength grid generation.
type GridOption func(*gridConfig)

type gridConfig struct {
	endpoint bool
}

func defaultGridConfig() gridConfig {
	return gridConfig{endpoint: true}
}

// WithEndpoint controls whether hi is the last grid point (default true).
// Without the endpoint the grid covers [lo, hi) with spacing (hi-lo)/n.
func WithEndpoint(include bool) GridOption {
	return func(c *gridConfig) {
		c.endpoint = include
	}
}

// Grid returns n evenly spaced wavelengths [um] between lo and hi.
func Grid(lo, hi float64, n int, opts ...GridOption) ([]float64, error) {
	if n < 2 {
		return nil, errGridPoints
	}
	if !(lo > 0) || !(hi >= lo) || math.IsInf(hi, 1) {
		return nil, errGridBounds
	}

	cfg := defaultGridConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.endpoint {
		return floats.Span(make([]float64, n), lo, hi), nil
	}
	return floats.Span(make([]float64, n+1), lo, hi)[:n:n], nil
}

// PeakWavelength returns the wavelength [um] of maximum spectral exitance at
// temperature [K] according to Wien's displacement law. Returns +Inf for T = 0.
func PeakWavelength(temperature float64) float64 {
	if temperature == 0 {
		return math.Inf(1)
	}
	return WienDisplacement / temperature
}

// PeakIndex returns the index of the largest value, or -1 for empty input.
func PeakIndex(values []float64) int {
	if len(values) == 0 {
		return -1
	}
	return floats.MaxIdx(values)
}
