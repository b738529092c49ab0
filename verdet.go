package fiberoptics

import "math"

// VerdetScale converts λ·|dn/dλ| [dimensionless] into the Verdet constant
// [rad/(T·m)]: e/(2·m_e·c).
const VerdetScale = 293.3396048946175

// VerdetConstant estimates the Verdet constant of glass with coefficients c
// at wavelength [µm] from the dispersion predicted by the Sellmeier equation:
//
//	V = K·λ·|dn/dλ|,  dn/dλ = -Σ a·B²·λ/(λ²-B²)² / n
//
// Input checks are those of Sellmeier; c.B is not modified.
func VerdetConstant(wavelength float64, c Coefficients) (float64, error) {
	if ve := checkDispersion(wavelength, c); ve != nil {
		return 0, reject("VerdetConstant", ve)
	}

	l2 := wavelength * wavelength
	b := squared(c.B)

	top := 0.0
	for i := 0; i < terms; i++ {
		d := l2 - b[i]
		top += c.A[i] * b[i] * wavelength / (d * d)
	}
	bottom := math.Sqrt(sellmeier(l2, c.A, b))

	return VerdetScale * wavelength * math.Abs(top/bottom), nil
}
