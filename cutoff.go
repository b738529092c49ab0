package fiberoptics

import "math"

// StepCutoff is the normalized frequency at which LP11 is cut off in a step
// index fiber (first zero of J0).
const StepCutoff = 2.405

// NumericalAperture returns the numerical aperture of a core with squared
// index n1 in a cladding with squared index n2. No checks are made; for
// n1 < n2 the result is NaN.
func NumericalAperture(n1, n2 float64) float64 {
	return math.Sqrt(n1) * math.Sqrt((n1-n2)/n1)
}

// NormalizedCutoff returns the cut-off normalized frequency Vc for shape:
// StepCutoff for the step-like shapes, scaled by sqrt(3) for Triangular and
// by sqrt((q+2)/q) for Gradient.
func NormalizedCutoff(shape Shape, q float64) float64 {
	switch shape {
	case Triangular:
		return StepCutoff * math.Sqrt(3)
	case Gradient:
		return StepCutoff * math.Sqrt((q+2)/q)
	default:
		return StepCutoff
	}
}

// CutoffWavelength returns the wavelength [µm, same unit as data.A] below
// which the fiber described by data is no longer single-mode:
//
//	λc = NA · 2π·a / Vc
//
// Only the fields the formula reads are checked: the shape, finite N1 and
// N2, A > 0, and Q > 1 for Gradient.
func CutoffWavelength(data ProfileData) (float64, error) {
	if ve := checkCore(data); ve != nil {
		return 0, reject("CutoffWavelength", ve)
	}

	na := NumericalAperture(data.N1, data.N2)
	vc := NormalizedCutoff(data.Shape, data.Q)
	return na * (2 * math.Pi * data.A / vc), nil
}
