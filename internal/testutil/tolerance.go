// Package testutil holds assertions shared by the radiometry package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RelDiff returns |got-want| / |want|, or |got-want| when want is zero.
func RelDiff(got, want float64) float64 {
	diff := math.Abs(got - want)
	if want == 0 {
		return diff
	}
	return diff / math.Abs(want)
}

// RequireRelNearlyEqual fails t if got and want differ by more than rtol
// relative to want.
func RequireRelNearlyEqual(t *testing.T, got, want, rtol float64) {
	t.Helper()
	if d := RelDiff(got, want); d > rtol {
		t.Fatalf("got %v, want %v (rel diff %v > rtol %v)", got, want, d, rtol)
	}
}

// RequireSliceRelNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds rtol (relative tolerance).
func RequireSliceRelNearlyEqual(t *testing.T, got, want []float64, rtol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := RelDiff(got[i], want[i]); d > rtol {
			t.Fatalf("index %d: got %v, want %v (rel diff %v > rtol %v)", i, got[i], want[i], d, rtol)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxRelDiff returns the maximum relative difference between two slices.
// Returns an error if the slices differ in length.
func MaxRelDiff(got, want []float64) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	maxDiff := 0.0
	for i := range got {
		if d := RelDiff(got[i], want[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
