package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Maxime2/fiberoptics"
)

func testConfig(t *testing.T, args ...string) Config {
	t.Helper()
	cfg, err := loadConfig(args)
	require.NoError(t, err)
	return cfg
}

func TestEvaluate_Step(t *testing.T) {
	cfg := testConfig(t, "--germanium", "5.8", "--fluorine", "1", "--samples", "5")
	tb, err := loadTables(cfg, logr.Discard())
	require.NoError(t, err)

	r, err := evaluate(cfg, tb, logr.Discard())
	require.NoError(t, err)

	assert.InDelta(t, 2.110913413280213, r.Profile.N1, 1e-12)
	assert.InDelta(t, 2.071860415789169, r.Profile.N2, 1e-12)
	assert.InDelta(t, math.Sqrt(r.Profile.N1), r.CoreIndex, 1e-15)
	assert.InDelta(t, math.Sqrt(r.Profile.N2), r.CladdingIndex, 1e-15)
	assert.InDelta(t, 0.1976183126409197, r.NumericalAperture, 1e-12)
	assert.InDelta(t, 2.1167805245329308, r.Cutoff, 1e-12)
	assert.False(t, r.SingleMode, "1.55 µm is below the 2.12 µm cut-off")
	assert.InDelta(t, 5.447495688000124, r.VerdetCore, 1e-9)
	assert.Len(t, r.Samples, 5)
}

func TestEvaluate_DepressedLayerFromFluorine(t *testing.T) {
	cfg := testConfig(t, "--shape", "4", "--b", "3")
	tb, err := loadTables(cfg, logr.Discard())
	require.NoError(t, err)

	r, err := evaluate(cfg, tb, logr.Discard())
	require.NoError(t, err)

	assert.InDelta(t, 2.0598329924826113, r.Profile.N3, 1e-12)
	assert.Less(t, r.Profile.N3, r.Profile.N2)
}

func TestEvaluate_ExplicitIndices(t *testing.T) {
	cfg := testConfig(t, "--n1", "2.0", "--n2", "1.9", "--a", "5")
	tb, err := loadTables(cfg, logr.Discard())
	require.NoError(t, err)

	r, err := evaluate(cfg, tb, logr.Discard())
	require.NoError(t, err)
	assert.InDelta(t, 4.130805931723953, r.Cutoff, 1e-12)
}

func TestEvaluate_Rejects(t *testing.T) {
	for name, args := range map[string][]string{
		"germanium out of range": {"--germanium", "16"},
		"fluorine out of range":  {"--fluorine", "2.5"},
		"bad shape":              {"--shape", "9"},
		"gradient q":             {"--shape", "2", "--q", "1"},
		"negative wavelength":    {"--wavelength", "-1"},
	} {
		cfg := testConfig(t, args...)
		tb, err := loadTables(cfg, logr.Discard())
		require.NoError(t, err)

		_, err = evaluate(cfg, tb, logr.Discard())
		assert.Error(t, err, name)
	}
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-o", "json", "--wavelength", "1.31"}, &out))

	var r Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, 1.31, r.Wavelength)
	assert.Equal(t, fiberoptics.Step, r.Profile.Shape)
	assert.Greater(t, r.Cutoff, 0.0)
}

func TestRun_Text(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--samples", "3"}, &out))

	s := out.String()
	assert.Contains(t, s, "cut-off wavelength")
	assert.Contains(t, s, "radius [µm]")
}

func TestRun_DumpAndReloadTables(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--dump-tables", "-o", "yaml"}, &out))

	var dumps []fiberoptics.Dump
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &dumps))
	require.Len(t, dumps, 2)
	assert.Equal(t, "germanium", dumps[0].Dopant)
	assert.Equal(t, "fluorine", dumps[1].Dopant)
	assert.Equal(t, fiberoptics.GermaniumTable().P, dumps[0].Points)

	ge := dumps[0]

	// A custom table with a narrower range is honored by the range check.
	ge.Max = 5
	path := filepath.Join(t.TempDir(), "ge.json")
	raw, err := json.Marshal(ge)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	err = run([]string{"--germanium-table", path, "--germanium", "5.8"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, fiberoptics.ErrOutOfRange)

	require.NoError(t, run([]string{"--germanium-table", path, "--germanium", "3.1"}, &bytes.Buffer{}))
}
