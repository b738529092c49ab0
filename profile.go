package fiberoptics

import (
	"fmt"
	"math"
)

// Shape selects one of the canonical radial refractive-index profiles.
type Shape int

const (
	// Triangular: linear ramp from N1 at the axis to N2 at radius A.
	Triangular Shape = iota + 1
	// Gradient: power-law ramp N1 + (N2-N1)·(x/A)^Q inside radius A.
	Gradient
	// Step: N1 inside radius A, N2 outside.
	Step
	// StepDepressedCladding: step core, then N3 over [A, A+B), then N2.
	StepDepressedCladding
	// StepDepressedRing: step core, N2 over [A, A+B), N3 ring over
	// [A+B, A+B+C), then N2.
	StepDepressedRing
)

func (s Shape) String() string {
	switch s {
	case Triangular:
		return "triangular"
	case Gradient:
		return "gradient"
	case Step:
		return "step"
	case StepDepressedCladding:
		return "step-depressed-cladding"
	case StepDepressedRing:
		return "step-depressed-ring"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Valid reports whether s is one of the five known shapes.
func (s Shape) Valid() bool {
	return s >= Triangular && s <= StepDepressedRing
}

// ProfileData describes a fiber cross-section. N1, N2 and N3 are squared
// refractive indices (n², as returned by Sellmeier); A, B and C are radii or
// layer thicknesses [µm]. N3 and B are used by shapes 4 and 5, C by shape 5,
// Q by Gradient only.
type ProfileData struct {
	Shape Shape   `json:"shape" yaml:"shape"`
	N1    float64 `json:"n1" yaml:"n1"`
	N2    float64 `json:"n2" yaml:"n2"`
	N3    float64 `json:"n3,omitempty" yaml:"n3,omitempty"`
	A     float64 `json:"a" yaml:"a"`
	B     float64 `json:"b,omitempty" yaml:"b,omitempty"`
	C     float64 `json:"c,omitempty" yaml:"c,omitempty"`
	Q     float64 `json:"q,omitempty" yaml:"q,omitempty"`
}

// Profile returns the refractive index n at radial distance x [µm].
//
// Profile does no validation; it is meant for tight loops over data already
// accepted by Validate. Every segment is half-open, [lo, hi), so at x == A
// the next segment applies. For x < 0 or an unknown shape the result is NaN.
func Profile(data ProfileData, x float64) float64 {
	n2 := math.NaN()

	switch data.Shape {
	case Triangular:
		switch {
		case x >= 0 && x < data.A:
			n2 = data.N1 + (data.N2-data.N1)*(x/data.A)
		case x >= data.A:
			n2 = data.N2
		}
	case Gradient:
		switch {
		case x >= 0 && x < data.A:
			n2 = data.N1 + (data.N2-data.N1)*math.Pow(x/data.A, data.Q)
		case x >= data.A:
			n2 = data.N2
		}
	case Step:
		switch {
		case x >= 0 && x < data.A:
			n2 = data.N1
		case x >= data.A:
			n2 = data.N2
		}
	case StepDepressedCladding:
		switch {
		case x >= 0 && x < data.A:
			n2 = data.N1
		case x >= data.A && x < data.A+data.B:
			n2 = data.N3
		case x >= data.A+data.B:
			n2 = data.N2
		}
	case StepDepressedRing:
		switch {
		case x >= 0 && x < data.A:
			n2 = data.N1
		case x >= data.A && x < data.A+data.B:
			n2 = data.N2
		case x >= data.A+data.B && x < data.A+data.B+data.C:
			n2 = data.N3
		case x >= data.A+data.B+data.C:
			n2 = data.N2
		}
	}

	return math.Sqrt(n2)
}

// Validate checks the whole geometry: a known shape, finite N1 and N2,
// A > 0, Q > 1 for Gradient, finite N3 and B >= 0 for shapes 4 and 5, and
// C >= 0 for shape 5.
func (d ProfileData) Validate() error {
	if ve := checkProfile(d); ve != nil {
		return reject("ProfileData.Validate", ve)
	}
	return nil
}

// ProfileAt is the validated counterpart of Profile for single evaluations.
func ProfileAt(data ProfileData, x float64) (float64, error) {
	if ve := checkProfile(data); ve != nil {
		return 0, reject("ProfileAt", ve)
	}
	if ve := checkFinite("x", x); ve != nil {
		return 0, reject("ProfileAt", ve)
	}
	if x < 0 {
		return 0, reject("ProfileAt", invalid("x", x, ErrOutOfRange))
	}
	return Profile(data, x), nil
}

// Radius returns the outer radius of the modeled structure: A, A+B or A+B+C
// depending on the shape.
func (d ProfileData) Radius() float64 {
	switch d.Shape {
	case StepDepressedCladding:
		return d.A + d.B
	case StepDepressedRing:
		return d.A + d.B + d.C
	default:
		return d.A
	}
}

func checkShape(s Shape) *ValidationError {
	if !s.Valid() {
		return invalid("shape", int(s), ErrBadShape)
	}
	return nil
}

// checkCore holds the checks shared with CutoffWavelength.
func checkCore(d ProfileData) *ValidationError {
	if ve := checkShape(d.Shape); ve != nil {
		return ve
	}
	if ve := checkFinite("n1", d.N1); ve != nil {
		return ve
	}
	if ve := checkFinite("n2", d.N2); ve != nil {
		return ve
	}
	if ve := checkFinite("a", d.A); ve != nil {
		return ve
	}
	if d.A <= 0 {
		return invalid("a", d.A, ErrOutOfRange)
	}
	if d.Shape == Gradient {
		if ve := checkFinite("q", d.Q); ve != nil {
			return ve
		}
		if d.Q <= 1 {
			return invalid("q", d.Q, ErrOutOfRange)
		}
	}
	return nil
}

func checkProfile(d ProfileData) *ValidationError {
	if ve := checkCore(d); ve != nil {
		return ve
	}
	if d.Shape != StepDepressedCladding && d.Shape != StepDepressedRing {
		return nil
	}
	if ve := checkFinite("n3", d.N3); ve != nil {
		return ve
	}
	if ve := checkFinite("b", d.B); ve != nil {
		return ve
	}
	if d.B < 0 {
		return invalid("b", d.B, ErrOutOfRange)
	}
	if d.Shape == StepDepressedRing {
		if ve := checkFinite("c", d.C); ve != nil {
			return ve
		}
		if d.C < 0 {
			return invalid("c", d.C, ErrOutOfRange)
		}
	}
	return nil
}
