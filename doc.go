// Package fiberoptics computes refractive-index properties of doped silica
// optical fibers.
//
// Dispersion of the core and cladding glass comes from the three-term
// Sellmeier equation. Its coefficients for germanium (core) and fluorine
// (cladding) doping are interpolated with a Lagrange polynomial through
// measured calibration rows:
//
//	core, err := fiberoptics.SellmeierGermanium(5.8)   // mol%
//	n1, err := fiberoptics.Sellmeier(1.55, core)       // n² at 1.55 µm
//
// Squared indices feed a ProfileData, which describes one of five radial
// profiles and gives the cut-off wavelength:
//
//	data := fiberoptics.ProfileData{Shape: fiberoptics.Step, N1: n1, N2: n2, A: 4.1}
//	lc, err := fiberoptics.CutoffWavelength(data)
//
// # Validation
//
// Every exported computation validates its input, fails on the first
// violation, reports it to the logger installed with SetLogger and returns a
// *ValidationError. Use errors.Is against the category sentinels
// (ErrMalformedInput, ErrWrongCount, ErrNotANumber, ErrOutOfRange) or
// KindOf to branch on the failure.
//
// Profile is the one exception. It is called per point when sampling a
// profile and does no checking at all; validate once with
// ProfileData.Validate (or use SampleProfile / ProfileAt) and then call it
// freely.
//
// No function modifies its arguments and there is no shared mutable state
// apart from the logger, so everything is safe for concurrent use.
package fiberoptics
