package fiberoptics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ProfileOverscan is how far past the outer radius SampleProfile extends,
// as a multiple of ProfileData.Radius.
const ProfileOverscan = 1.5

var errFewSamples = fmt.Errorf("%w: need at least 2 samples", ErrWrongCount)

// Point is one sample of a curve.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// SampleProfile validates data once and evaluates Profile at n evenly spaced
// radii from the axis to ProfileOverscan times the outer radius. n must be
// at least 2.
func SampleProfile(data ProfileData, n int) ([]Point, error) {
	if ve := checkProfile(data); ve != nil {
		return nil, reject("SampleProfile", ve)
	}
	if n < 2 {
		return nil, reject("SampleProfile", invalid("n", n, errFewSamples))
	}

	xs := floats.Span(make([]float64, n), 0, ProfileOverscan*data.Radius())
	out := make([]Point, n)
	for i, x := range xs {
		out[i] = Point{X: x, Y: Profile(data, x)}
	}
	return out, nil
}

// SampleDispersion evaluates the refractive index of glass c at n evenly
// spaced wavelengths over [from, to] µm.
func SampleDispersion(c Coefficients, from, to float64, n int) ([]Point, error) {
	if ve := checkDispersion(from, c); ve != nil {
		return nil, reject("SampleDispersion", ve)
	}
	if ve := checkWavelength(to); ve != nil {
		return nil, reject("SampleDispersion", ve)
	}
	if n < 2 {
		return nil, reject("SampleDispersion", invalid("n", n, errFewSamples))
	}

	b := squared(c.B)
	xs := floats.Span(make([]float64, n), from, to)
	out := make([]Point, n)
	for i, wl := range xs {
		out[i] = Point{X: wl, Y: math.Sqrt(sellmeier(wl*wl, c.A, b))}
	}
	return out, nil
}
