package fiberoptics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxime2/fiberoptics"
)

// silica returns the coefficients of undoped fused silica.
func silica() fiberoptics.Coefficients {
	return fiberoptics.Coefficients{
		A: []float64{0.6961663, 0.4079426, 0.8974994},
		B: []float64{0.0684043, 0.1162414, 9.8961610},
	}
}

func TestSellmeierGermanium_ZeroIsFirstRow(t *testing.T) {
	c, err := fiberoptics.SellmeierGermanium(0)
	require.NoError(t, err)
	assert.Equal(t, silica(), c)
}

func TestSellmeierFluorine_ZeroIsFirstRow(t *testing.T) {
	c, err := fiberoptics.SellmeierFluorine(0)
	require.NoError(t, err)
	assert.Equal(t, silica(), c)
}

func TestSellmeierDopants_RangeEdges(t *testing.T) {
	_, err := fiberoptics.SellmeierGermanium(15)
	assert.NoError(t, err, "upper bound is inclusive")
	_, err = fiberoptics.SellmeierFluorine(2)
	assert.NoError(t, err, "upper bound is inclusive")

	for _, x := range []float64{-1, 16, math.NaN()} {
		c, err := fiberoptics.SellmeierGermanium(x)
		assert.Error(t, err, "germanium %v", x)
		assert.Nil(t, c.A)

		var ve *fiberoptics.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "SellmeierGermanium", ve.Func)
		assert.Equal(t, "concentration", ve.Field)
	}

	for _, x := range []float64{-0.1, 2.1} {
		_, err := fiberoptics.SellmeierFluorine(x)
		assert.ErrorIs(t, err, fiberoptics.ErrOutOfRange, "fluorine %v", x)
	}
}

func TestSellmeier_ZeroWavelength(t *testing.T) {
	for _, x := range []float64{0, 5.8, 13.5} {
		c, err := fiberoptics.SellmeierGermanium(x)
		require.NoError(t, err)

		n2, err := fiberoptics.Sellmeier(0, c)
		require.NoError(t, err)
		assert.Equal(t, 1.0, n2)
	}
}

// TestSellmeier_Silica compares against the well known index of fused silica
// at 1.55 µm.
func TestSellmeier_Silica(t *testing.T) {
	n2, err := fiberoptics.Sellmeier(1.55, silica())
	require.NoError(t, err)
	assert.InDelta(t, 2.085203717061557, n2, 1e-12)

	n, err := fiberoptics.RefractiveIndex(1.55, silica())
	require.NoError(t, err)
	assert.InDelta(t, 1.4440, n, 1e-4)
	assert.InDelta(t, math.Sqrt(n2), n, 1e-15)
}

// TestSellmeier_GermaniumRaisesIndex: doping the core with germanium raises
// the index, fluorine lowers it.
func TestSellmeier_GermaniumRaisesIndex(t *testing.T) {
	base, err := fiberoptics.Sellmeier(1.55, silica())
	require.NoError(t, err)

	ge, err := fiberoptics.SellmeierGermanium(5.8)
	require.NoError(t, err)
	core, err := fiberoptics.Sellmeier(1.55, ge)
	require.NoError(t, err)

	f, err := fiberoptics.SellmeierFluorine(1)
	require.NoError(t, err)
	clad, err := fiberoptics.Sellmeier(1.55, f)
	require.NoError(t, err)

	assert.Greater(t, core, base)
	assert.Less(t, clad, base)
}

// TestSellmeier_CallerCoefficientsUntouched repeats the calls on the same
// coefficients; squaring must happen on a private copy.
func TestSellmeier_CallerCoefficientsUntouched(t *testing.T) {
	c := silica()
	before := c.Clone()

	first, err := fiberoptics.Sellmeier(1.31, c)
	require.NoError(t, err)
	v1, err := fiberoptics.VerdetConstant(1.31, c)
	require.NoError(t, err)

	second, err := fiberoptics.Sellmeier(1.31, c)
	require.NoError(t, err)
	v2, err := fiberoptics.VerdetConstant(1.31, c)
	require.NoError(t, err)

	assert.Equal(t, before, c)
	assert.Equal(t, first, second)
	assert.Equal(t, v1, v2)
}

// TestSellmeier_Resonance: at λ == b[i] the singularity is returned, not rejected.
func TestSellmeier_Resonance(t *testing.T) {
	c := silica()
	n2, err := fiberoptics.Sellmeier(c.B[0], c)
	require.NoError(t, err)
	assert.True(t, math.IsInf(n2, 0) || math.IsNaN(n2), "got %v", n2)
}

func TestSellmeier_Rejects(t *testing.T) {
	cases := []struct {
		name       string
		wavelength float64
		c          fiberoptics.Coefficients
		want       error
	}{
		{"negative wavelength", -0.1, silica(), fiberoptics.ErrOutOfRange},
		{"NaN wavelength", math.NaN(), silica(), fiberoptics.ErrNotANumber},
		{"Inf wavelength", math.Inf(1), silica(), fiberoptics.ErrNotANumber},
		{"missing a", 1, fiberoptics.Coefficients{B: silica().B}, fiberoptics.ErrMissingCoefficients},
		{"missing b", 1, fiberoptics.Coefficients{A: silica().A}, fiberoptics.ErrMissingCoefficients},
		{"two a terms", 1, fiberoptics.Coefficients{A: []float64{1, 2}, B: silica().B}, fiberoptics.ErrCoefficientCount},
		{"four b terms", 1, fiberoptics.Coefficients{A: silica().A, B: []float64{1, 2, 3, 4}}, fiberoptics.ErrCoefficientCount},
		{"NaN term", 1, fiberoptics.Coefficients{A: []float64{1, math.NaN(), 3}, B: silica().B}, fiberoptics.ErrNotANumber},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n2, err := fiberoptics.Sellmeier(tc.wavelength, tc.c)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, n2)

			v, err := fiberoptics.VerdetConstant(tc.wavelength, tc.c)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, v)

			_, err = fiberoptics.RefractiveIndex(tc.wavelength, tc.c)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
