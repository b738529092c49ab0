// Package query decodes modeler parameters from a URL query string, the
// form in which the web modeler shares a fiber configuration:
//
//	?wavelength=1.55&ge=5.8&f=1&shape=3&a=4.1
package query

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/Maxime2/fiberoptics"
)

// Keys understood by Parse.
const (
	KeyWavelength = "wavelength"
	KeyGermanium  = "ge"
	KeyFluorine   = "f"
	KeyShape      = "shape"
	KeyN1         = "n1"
	KeyN2         = "n2"
	KeyN3         = "n3"
	KeyA          = "a"
	KeyB          = "b"
	KeyC          = "c"
	KeyQ          = "q"
)

// Params holds the decoded values. Only keys listed in Present were in the
// query; the rest are zero.
type Params struct {
	Wavelength float64
	Germanium  float64
	Fluorine   float64
	Profile    fiberoptics.ProfileData
	Present    map[string]bool
}

// Has reports whether key was given in the query.
func (p Params) Has(key string) bool {
	return p.Present[key]
}

// Parse decodes raw, with or without a leading '?'. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func Parse(raw string) (Params, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return Params{}, fmt.Errorf("query: %w", err)
	}

	p := Params{Present: make(map[string]bool)}
	floats := map[string]*float64{
		KeyWavelength: &p.Wavelength,
		KeyGermanium:  &p.Germanium,
		KeyFluorine:   &p.Fluorine,
		KeyN1:         &p.Profile.N1,
		KeyN2:         &p.Profile.N2,
		KeyN3:         &p.Profile.N3,
		KeyA:          &p.Profile.A,
		KeyB:          &p.Profile.B,
		KeyC:          &p.Profile.C,
		KeyQ:          &p.Profile.Q,
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v := strings.TrimSpace(values.Get(key))
		if v == "" {
			continue
		}

		if key == KeyShape {
			shape, err := cast.ToIntE(v)
			if err != nil {
				return Params{}, fmt.Errorf("query: %s=%q: %w", key, v, err)
			}
			p.Profile.Shape = fiberoptics.Shape(shape)
			p.Present[key] = true
			continue
		}

		dst, ok := floats[key]
		if !ok {
			return Params{}, fmt.Errorf("query: unknown key %q", key)
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return Params{}, fmt.Errorf("query: %s=%q: %w", key, v, err)
		}
		*dst = f
		p.Present[key] = true
	}

	return p, nil
}

// Encode renders the inverse of Parse for the keys that are set.
func (p Params) Encode() string {
	values := url.Values{}
	set := func(key string, v float64) {
		if p.Has(key) {
			values.Set(key, cast.ToString(v))
		}
	}
	set(KeyWavelength, p.Wavelength)
	set(KeyGermanium, p.Germanium)
	set(KeyFluorine, p.Fluorine)
	if p.Has(KeyShape) {
		values.Set(KeyShape, cast.ToString(int(p.Profile.Shape)))
	}
	set(KeyN1, p.Profile.N1)
	set(KeyN2, p.Profile.N2)
	set(KeyN3, p.Profile.N3)
	set(KeyA, p.Profile.A)
	set(KeyB, p.Profile.B)
	set(KeyC, p.Profile.C)
	set(KeyQ, p.Profile.Q)
	return values.Encode()
}
