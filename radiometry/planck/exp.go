//go:build !fastmath

package planck

import "math"

// Approximate reports whether the fastmath build tag replaced math.Exp.
const Approximate = false

func mathExp(x float64) float64 {
	return math.Exp(x)
}
