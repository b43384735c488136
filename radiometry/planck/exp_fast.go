//go:build fastmath

package planck

import "github.com/meko-christian/algo-approx"

// Approximate reports whether the fastmath build tag replaced math.Exp.
const Approximate = true

// mathExp computes e^x using fast approximation.
// Results no longer match the closed form to full double precision.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
