package fiberoptics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxime2/fiberoptics"
)

func TestSampleProfile(t *testing.T) {
	data := fiberoptics.ProfileData{Shape: fiberoptics.StepDepressedRing, N1: 9, N2: 4, N3: 1, A: 1, B: 1, C: 2}

	pts, err := fiberoptics.SampleProfile(data, 13)
	require.NoError(t, err)
	require.Len(t, pts, 13)

	assert.Equal(t, fiberoptics.Point{X: 0, Y: 3}, pts[0])
	assert.InDelta(t, fiberoptics.ProfileOverscan*data.Radius(), pts[12].X, 1e-12)
	assert.Equal(t, 2.0, pts[12].Y)
	for i, p := range pts {
		assert.Equal(t, fiberoptics.Profile(data, p.X), p.Y, "sample %d", i)
	}
}

func TestSampleProfile_Rejects(t *testing.T) {
	_, err := fiberoptics.SampleProfile(fiberoptics.ProfileData{Shape: fiberoptics.Step, N1: 4, N2: 2, A: 1}, 1)
	assert.ErrorIs(t, err, fiberoptics.ErrWrongCount)

	_, err = fiberoptics.SampleProfile(fiberoptics.ProfileData{Shape: fiberoptics.Step, N1: 4, N2: 2}, 10)
	assert.ErrorIs(t, err, fiberoptics.ErrOutOfRange)
}

func TestSampleDispersion(t *testing.T) {
	pts, err := fiberoptics.SampleDispersion(silica(), 0.8, 1.6, 9)
	require.NoError(t, err)
	require.Len(t, pts, 9)

	assert.Equal(t, 0.8, pts[0].X)
	assert.InDelta(t, 1.6, pts[8].X, 1e-12)
	for _, p := range pts {
		n, err := fiberoptics.RefractiveIndex(p.X, silica())
		require.NoError(t, err)
		assert.Equal(t, n, p.Y)
	}

	// Normal dispersion: the index falls with wavelength in this window.
	for i := 1; i < len(pts); i++ {
		assert.Less(t, pts[i].Y, pts[i-1].Y)
	}
}

func TestSampleDispersion_Rejects(t *testing.T) {
	_, err := fiberoptics.SampleDispersion(silica(), -1, 1, 5)
	assert.ErrorIs(t, err, fiberoptics.ErrOutOfRange)

	_, err = fiberoptics.SampleDispersion(silica(), 1, math.NaN(), 5)
	assert.ErrorIs(t, err, fiberoptics.ErrNotANumber)

	_, err = fiberoptics.SampleDispersion(fiberoptics.Coefficients{}, 1, 2, 5)
	assert.ErrorIs(t, err, fiberoptics.ErrMissingCoefficients)

	_, err = fiberoptics.SampleDispersion(silica(), 1, 2, 0)
	assert.ErrorIs(t, err, fiberoptics.ErrWrongCount)
}
