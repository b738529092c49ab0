package fiberoptics

import "math"

// The validators below check one property each and return nil when it holds.
// They never log; the public entry points pass failures to reject.

func invalid(field string, value any, err error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: err}
}

// checkFinite rejects NaN and ±Inf.
func checkFinite(field string, v float64) *ValidationError {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, v, ErrNotANumber)
	}
	return nil
}

// checkAllFinite rejects a table with any NaN or ±Inf element.
func checkAllFinite(field string, vs []float64) *ValidationError {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(field, v, ErrNotANumber)
		}
	}
	return nil
}

// checkBetween rejects finite v outside the closed interval [lo, hi].
func checkBetween(field string, v, lo, hi float64) *ValidationError {
	if ve := checkFinite(field, v); ve != nil {
		return ve
	}
	if v < lo || v > hi {
		return invalid(field, v, ErrOutOfRange)
	}
	return nil
}

// checkNodes validates an interpolation node set, in this order:
// presence, tables present, at least two nodes, equal lengths, finite elements.
func checkNodes(nodes *Nodes) *ValidationError {
	if nodes == nil {
		return invalid("nodes", nil, ErrNilNodes)
	}
	if nodes.X == nil || nodes.Y == nil {
		return invalid("nodes", nodes, ErrMissingTable)
	}
	if len(nodes.X) < 2 || len(nodes.Y) < 2 {
		return invalid("len(nodes.x), len(nodes.y)", [2]int{len(nodes.X), len(nodes.Y)}, ErrTooFewNodes)
	}
	if len(nodes.X) != len(nodes.Y) {
		return invalid("len(nodes.x), len(nodes.y)", [2]int{len(nodes.X), len(nodes.Y)}, ErrLengthMismatch)
	}

	return nil
}

// checkCoefficients validates a Sellmeier term set: both tables present,
// exactly three terms each, all finite.
func checkCoefficients(c Coefficients) *ValidationError {
	if c.A == nil {
		return invalid("coefficients.a", nil, ErrMissingCoefficients)
	}
	if c.B == nil {
		return invalid("coefficients.b", nil, ErrMissingCoefficients)
	}
	if len(c.A) != terms {
		return invalid("len(coefficients.a)", len(c.A), ErrCoefficientCount)
	}
	if len(c.B) != terms {
		return invalid("len(coefficients.b)", len(c.B), ErrCoefficientCount)
	}
	if ve := checkAllFinite("coefficients.a", c.A); ve != nil {
		return ve
	}
	return checkAllFinite("coefficients.b", c.B)
}

// checkWavelength requires a finite, non-negative wavelength.
func checkWavelength(wavelength float64) *ValidationError {
	if ve := checkFinite("wavelength", wavelength); ve != nil {
		return ve
	}
	if wavelength < 0 {
		return invalid("wavelength", wavelength, ErrOutOfRange)
	}
	return nil
}
