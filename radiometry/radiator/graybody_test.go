package radiator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-radiometry/internal/testutil"
	"github.com/cwbudde/algo-radiometry/radiometry/planck"
)

func mustGrid(t *testing.T, lo, hi float64, n int) []float64 {
	t.Helper()
	w, err := planck.Grid(lo, hi, n)
	require.NoError(t, err)
	return w
}

func TestNewGraybodyCoercesToFloat(t *testing.T) {
	g, err := NewGraybody(300, 0.6)
	require.NoError(t, err)
	require.Equal(t, 300.0, g.AbsoluteTemperature())
	require.Equal(t, 0.6, g.Emissivity())
	require.Equal(t, MustBlackbody(300), g.Blackbody())

	g, err = NewGraybody(int64(280), 1)
	require.NoError(t, err)
	require.Equal(t, 280.0, g.AbsoluteTemperature())
	require.Equal(t, 1.0, g.Emissivity())
}

func TestNewGraybodyValidEmissivity(t *testing.T) {
	for _, eps := range []float64{0, 0.2, 0.6, 1} {
		g, err := NewGraybody(300.0, eps)
		require.NoError(t, err)
		require.Equal(t, eps, g.Emissivity())
	}
}

func TestNewGraybodyInvalidEmissivity(t *testing.T) {
	tests := []struct {
		name       string
		eps        float64
		constraint string
	}{
		{name: "tiny negative", eps: -1e-6, constraint: "must be >= 0"},
		{name: "negative", eps: -0.1, constraint: "must be >= 0"},
		{name: "minus one", eps: -1, constraint: "must be >= 0"},
		{name: "nan", eps: math.NaN(), constraint: "must be >= 0"},
		{name: "just above one", eps: 1.000001, constraint: "must be <= 1"},
		{name: "two", eps: 2, constraint: "must be <= 1"},
		{name: "inf", eps: math.Inf(1), constraint: "must be <= 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGraybody(300.0, tt.eps)
			require.ErrorIs(t, err, ErrInvalidParameter)
			require.Equal(t, Graybody{}, g)

			var ipe *InvalidParameterError
			require.True(t, errors.As(err, &ipe))
			require.Equal(t, FieldEmissivity, ipe.Field)
			require.Equal(t, tt.constraint, ipe.Constraint)
			require.Contains(t, err.Error(), "emissivity")
		})
	}
}

func TestNewGraybodyInvalidTemperature(t *testing.T) {
	for _, temp := range []float64{-1, -0.0001} {
		_, err := NewGraybody(temp, 0.5)
		var ipe *InvalidParameterError
		require.ErrorAs(t, err, &ipe)
		require.Equal(t, FieldAbsoluteTemperature, ipe.Field)
	}
}

func TestGraybodyEquality(t *testing.T) {
	a := MustGraybody(300, 0.6)
	require.True(t, a == MustGraybody(300.0, 0.6))
	require.True(t, a.Equal(MustGraybody(300.0, 0.6)))
	require.False(t, a.Equal(MustGraybody(300.0, 0.7)))
	require.False(t, a.Equal(MustGraybody(280.0, 0.6)))
}

func TestGraybodyValueCannotBeChangedThroughCopies(t *testing.T) {
	g := MustGraybody(300, 0.6)
	h := g
	require.Equal(t, g, h)

	h = MustGraybody(280, 0.75)
	require.NotEqual(t, g, h)
	require.Equal(t, 300.0, g.AbsoluteTemperature())
	require.Equal(t, 0.6, g.Emissivity())
}

func TestMustGraybodyPanics(t *testing.T) {
	require.Panics(t, func() { MustGraybody(300, 1.5) })
	require.Panics(t, func() { MustGraybody(-1, 0.5) })
}

func TestGraybodyExitanceIsEmissivityTimesBlackbody(t *testing.T) {
	const temp, eps = 300.0, 0.6
	b := MustBlackbody(temp)
	g := MustGraybody(temp, eps)

	gs, err := g.Exitance(10)
	require.NoError(t, err)
	bs, err := b.Exitance(10)
	require.NoError(t, err)
	require.Equal(t, eps*bs, gs)

	w := mustGrid(t, 8, 14, 7)
	gv, err := g.ExitanceSlice(w)
	require.NoError(t, err)
	bv, err := b.ExitanceSlice(w)
	require.NoError(t, err)
	for i := range w {
		require.Equal(t, eps*bv[i], gv[i], "index %d", i)
	}
}

func TestGraybodyExitanceSliceMatchesScalar(t *testing.T) {
	g := MustGraybody(280.0, 0.75)
	w := mustGrid(t, 8, 14, 7)

	vec, err := g.RadianceSlice(w)
	require.NoError(t, err)
	for i := range w {
		s, err := g.Radiance(w[i])
		require.NoError(t, err)
		require.Equal(t, s, vec[i], "index %d", i)
	}
}

func TestGraybodyRadianceUsesScaledExitance(t *testing.T) {
	const temp, eps = 280.0, 0.75
	b := MustBlackbody(temp)
	g := MustGraybody(temp, eps)
	w := []float64{8, 10, 12}

	bv, err := b.ExitanceSlice(w)
	require.NoError(t, err)
	got, err := g.RadianceSlice(w)
	require.NoError(t, err)
	require.Len(t, got, len(w))
	for i := range w {
		require.Equal(t, eps*bv[i]/math.Pi, got[i], "index %d", i)
	}

	ex, err := g.Exitance(10)
	require.NoError(t, err)
	rad, err := g.Radiance(10)
	require.NoError(t, err)
	require.Equal(t, ex/math.Pi, rad)
}

func TestGraybodyRadianceReferenceScenario(t *testing.T) {
	rad, err := MustGraybody(300.0, 0.6).Radiance(10.0)
	require.NoError(t, err)
	ex, err := MustBlackbody(300.0).Exitance(10.0)
	require.NoError(t, err)
	testutil.RequireRelNearlyEqual(t, rad, 0.6*ex/math.Pi, 1e-15)
}

func TestGraybodyEmissivityScaling(t *testing.T) {
	w := []float64{8, 10, 12}
	y1, err := MustGraybody(300, 0.2).ExitanceSlice(w)
	require.NoError(t, err)
	y2, err := MustGraybody(300, 0.8).ExitanceSlice(w)
	require.NoError(t, err)

	ratio := make([]float64, len(w))
	for i := range w {
		ratio[i] = y2[i] / y1[i]
	}
	testutil.RequireSliceRelNearlyEqual(t, ratio, []float64{4, 4, 4}, 1e-12)
}

func TestGraybodyZeroEmissivity(t *testing.T) {
	g := MustGraybody(300.0, 0)
	w := mustGrid(t, 8, 14, 11)

	s, err := g.Exitance(10)
	require.NoError(t, err)
	require.Zero(t, s)

	ex, err := g.ExitanceSlice(w)
	require.NoError(t, err)
	rad, err := g.RadianceSlice(w)
	require.NoError(t, err)
	zeros := make([]float64, len(w))
	require.Equal(t, zeros, ex)
	require.Equal(t, zeros, rad)
}

func TestGraybodyUnitEmissivityMatchesBlackbody(t *testing.T) {
	b := MustBlackbody(300.0)
	g := MustGraybody(300.0, 1)
	w := mustGrid(t, 8, 14, 11)

	for _, rr := range []Radiator{b, g} {
		require.Equal(t, 300.0, rr.AbsoluteTemperature())
	}

	bs, err := b.Exitance(10)
	require.NoError(t, err)
	gs, err := g.Exitance(10)
	require.NoError(t, err)
	require.Equal(t, bs, gs)

	be, err := b.ExitanceSlice(w)
	require.NoError(t, err)
	ge, err := g.ExitanceSlice(w)
	require.NoError(t, err)
	require.Equal(t, be, ge)

	br, err := b.RadianceSlice(w)
	require.NoError(t, err)
	gr, err := g.RadianceSlice(w)
	require.NoError(t, err)
	require.Equal(t, br, gr)
}

func TestGraybodyLengthOneSliceStaysSlice(t *testing.T) {
	y, err := MustGraybody(300, 0.6).RadianceSlice([]float64{10})
	require.NoError(t, err)
	require.Len(t, y, 1)
}

func TestGraybodyRejectsNonPositiveWavelengths(t *testing.T) {
	g := MustGraybody(300, 0.6)

	for _, w := range []float64{0, -1, -0.001} {
		_, err := g.Exitance(w)
		require.ErrorIs(t, err, ErrInvalidParameter)
		require.Contains(t, err.Error(), "wavelength(s) must be > 0")
	}

	dst := []float64{7, 7, 7}
	err := g.ExitanceInto(dst, []float64{10, 0, 12})
	require.ErrorIs(t, err, ErrInvalidParameter)
	require.Equal(t, []float64{7, 7, 7}, dst)

	y, err := g.ExitanceSlice(Wavelengths([]float32{8, -9}))
	require.ErrorIs(t, err, ErrInvalidParameter)
	require.Nil(t, y)
}

func TestGraybodyInto(t *testing.T) {
	g := MustGraybody(300, 0.6)
	w := []float64{8, 10, 12}

	ex := make([]float64, len(w))
	require.NoError(t, g.ExitanceInto(ex, w))
	want, err := g.ExitanceSlice(w)
	require.NoError(t, err)
	require.Equal(t, want, ex)

	rad := make([]float64, len(w))
	require.NoError(t, g.RadianceInto(rad, w))
	wantRad, err := g.RadianceSlice(w)
	require.NoError(t, err)
	require.Equal(t, wantRad, rad)
}

func TestGraybodyString(t *testing.T) {
	require.Equal(t,
		"Graybody with an emissivity of 0.6 at an absolute temperature of 300 [K]",
		MustGraybody(300, 0.6).String())
}
