package fiberoptics

import "math"

// terms is the number of resonance terms in the Sellmeier equation.
const terms = 3

// Coefficients holds the Sellmeier terms of one glass: amplitudes A and
// resonance wavelengths B [µm]. B is linear; the equation squares it.
type Coefficients struct {
	A []float64 `json:"a" yaml:"a"`
	B []float64 `json:"b" yaml:"b"`
}

// Clone returns a deep copy of c.
func (c Coefficients) Clone() Coefficients {
	return Coefficients{
		A: append([]float64(nil), c.A...),
		B: append([]float64(nil), c.B...),
	}
}

// SellmeierGermanium interpolates the Sellmeier coefficients of silica doped
// with germanium at concentration [mol%], 0 <= concentration <= 15.
func SellmeierGermanium(concentration float64) (Coefficients, error) {
	return GermaniumTable().coefficients("SellmeierGermanium", concentration)
}

// SellmeierFluorine interpolates the Sellmeier coefficients of silica doped
// with fluorine at concentration [mol%], 0 <= concentration <= 2.
func SellmeierFluorine(concentration float64) (Coefficients, error) {
	return FluorineTable().coefficients("SellmeierFluorine", concentration)
}

// Sellmeier evaluates the Sellmeier equation at wavelength [µm] and returns
// the squared refractive index n².
//
// The squared resonance wavelengths are computed into a local array, so
// c.B is never modified. At a resonance (wavelength == B[i]) the result is
// ±Inf or NaN; that is left to the caller to interpret.
func Sellmeier(wavelength float64, c Coefficients) (float64, error) {
	if ve := checkDispersion(wavelength, c); ve != nil {
		return 0, reject("Sellmeier", ve)
	}
	return sellmeier(wavelength*wavelength, c.A, squared(c.B)), nil
}

// RefractiveIndex is the square root of Sellmeier.
func RefractiveIndex(wavelength float64, c Coefficients) (float64, error) {
	if ve := checkDispersion(wavelength, c); ve != nil {
		return 0, reject("RefractiveIndex", ve)
	}
	return math.Sqrt(sellmeier(wavelength*wavelength, c.A, squared(c.B))), nil
}

func checkDispersion(wavelength float64, c Coefficients) *ValidationError {
	if ve := checkWavelength(wavelength); ve != nil {
		return ve
	}
	return checkCoefficients(c)
}

func squared(b []float64) [terms]float64 {
	var out [terms]float64
	for i := range out {
		out[i] = b[i] * b[i]
	}
	return out
}

// sellmeier returns 1 + Σ a[i]·λ²/(λ²-B[i]) for λ² = l2 and squared B.
func sellmeier(l2 float64, a []float64, b [terms]float64) float64 {
	n2 := 1.0
	for i := 0; i < terms; i++ {
		n2 += a[i] * l2 / (l2 - b[i])
	}
	return n2
}
