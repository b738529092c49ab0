package fiberoptics

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Curve selects one of the six coefficient curves of a DopantTable.
type Curve int

const (
	CurveA1 Curve = iota
	CurveA2
	CurveA3
	CurveB1
	CurveB2
	CurveB3
)

var curveNames = [...]string{"a1", "a2", "a3", "b1", "b2", "b3"}

func (c Curve) String() string {
	if c < CurveA1 || c > CurveB3 {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curveNames[c]
}

// Curves lists every coefficient curve in table order.
func Curves() []Curve {
	return []Curve{CurveA1, CurveA2, CurveA3, CurveB1, CurveB2, CurveB3}
}

// TablePoint is one calibration row: the Sellmeier terms measured for glass
// with the given dopant concentration [mol%].
type TablePoint struct {
	Concentration float64    `json:"concentration" yaml:"concentration"`
	A             [3]float64 `json:"a" yaml:"a"`
	B             [3]float64 `json:"b" yaml:"b"`
}

func (p TablePoint) value(c Curve) float64 {
	if c < CurveB1 {
		return p.A[c]
	}
	return p.B[c-CurveB1]
}

// DopantTable holds calibration rows sorted by concentration, plus the
// declared concentration range callers may ask for. The range may extend
// past the last row; the interpolating polynomial is used there as is.
type DopantTable struct {
	Dopant string
	Min    float64
	Max    float64
	P      []TablePoint
}

// NewTable creates an empty table for dopant with the declared range [lo, hi].
func NewTable(dopant string, lo, hi float64) *DopantTable {
	return &DopantTable{
		Dopant: dopant,
		Min:    lo,
		Max:    hi,
	}
}

// GermaniumTable returns a fresh copy of the germanium (core dopant)
// calibration data, declared for 0..15 mol%.
func GermaniumTable() *DopantTable {
	return &DopantTable{
		Dopant: "germanium",
		Min:    0,
		Max:    15,
		P: []TablePoint{
			{Concentration: 0, A: [3]float64{0.6961663, 0.4079426, 0.8974994}, B: [3]float64{0.0684043, 0.1162414, 9.8961610}},
			{Concentration: 3.1, A: [3]float64{0.7028554, 0.4146307, 0.8974540}, B: [3]float64{0.0727723, 0.1143085, 9.8961610}},
			{Concentration: 5.8, A: [3]float64{0.7088876, 0.4206803, 0.8956551}, B: [3]float64{0.0609053, 0.1254514, 9.8961620}},
			{Concentration: 7.9, A: [3]float64{0.7136824, 0.4254807, 0.8964226}, B: [3]float64{0.0617167, 0.1270814, 9.8961610}},
			{Concentration: 13.5, A: [3]float64{0.711040, 0.451885, 0.704048}, B: [3]float64{0.064270, 0.129408, 9.425478}},
		},
	}
}

// FluorineTable returns a fresh copy of the fluorine (cladding dopant)
// calibration data, declared for 0..2 mol%.
func FluorineTable() *DopantTable {
	return &DopantTable{
		Dopant: "fluorine",
		Min:    0,
		Max:    2,
		P: []TablePoint{
			{Concentration: 0, A: [3]float64{0.6961663, 0.4079426, 0.8974994}, B: [3]float64{0.0684043, 0.1162414, 9.8961610}},
			{Concentration: 1, A: [3]float64{0.69325, 0.39720, 0.86008}, B: [3]float64{0.06724, 0.11714, 9.77610}},
			{Concentration: 2, A: [3]float64{0.67744, 0.40101, 0.87193}, B: [3]float64{0.06135, 0.12030, 9.85630}},
		},
	}
}

// AddPoint inserts p keeping rows sorted by concentration. A row with the
// same concentration is replaced.
func (t *DopantTable) AddPoint(p TablePoint) {
	k, found := slices.BinarySearchFunc(t.P, p, func(a, b TablePoint) int {
		return cmp.Compare(a.Concentration, b.Concentration)
	})
	if found {
		t.P[k] = p
		return
	}
	t.P = slices.Insert(t.P, k, p)
}

// Nodes returns curve c as interpolation nodes over concentration.
func (t *DopantTable) Nodes(c Curve) *Nodes {
	n := &Nodes{
		X: make([]float64, len(t.P)),
		Y: make([]float64, len(t.P)),
	}
	for i, p := range t.P {
		n.X[i] = p.Concentration
		n.Y[i] = p.value(c)
	}
	return n
}

// Coefficients interpolates all six curves at concentration [mol%].
//
// concentration must be finite and inside [t.Min, t.Max]; otherwise the
// result is empty and the error matches ErrNotANumber or ErrOutOfRange.
func (t *DopantTable) Coefficients(concentration float64) (Coefficients, error) {
	return t.coefficients("DopantTable.Coefficients", concentration)
}

func (t *DopantTable) coefficients(fn string, concentration float64) (Coefficients, error) {
	if ve := checkBetween("concentration", concentration, t.Min, t.Max); ve != nil {
		return Coefficients{}, reject(fn, ve)
	}

	out := Coefficients{
		A: make([]float64, terms),
		B: make([]float64, terms),
	}
	for _, c := range Curves() {
		nodes := t.Nodes(c)
		if ve := checkLagrange(concentration, nodes); ve != nil {
			ve.Field = t.Dopant + "." + c.String() + ": " + ve.Field
			return Coefficients{}, reject(fn, ve)
		}
		v := lagrange(concentration, nodes.X, nodes.Y)
		if c < CurveB1 {
			out.A[c] = v
		} else {
			out.B[c-CurveB1] = v
		}
	}
	return out, nil
}

// Len returns the number of calibration rows.
func (t *DopantTable) Len() int {
	return len(t.P)
}

// Range returns the declared concentration range.
func (t *DopantTable) Range() (lo, hi float64) {
	return t.Min, t.Max
}

// Clone returns a deep copy of t.
func (t *DopantTable) Clone() *DopantTable {
	return &DopantTable{
		Dopant: t.Dopant,
		Min:    t.Min,
		Max:    t.Max,
		P:      slices.Clone(t.P),
	}
}

func (t *DopantTable) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dopant table %q: range [%v, %v], %d rows\n", t.Dopant, t.Min, t.Max, len(t.P))
	for _, p := range t.P {
		fmt.Fprintf(&sb, "\t%v\ta=%v\tb=%v\n", p.Concentration, p.A, p.B)
	}
	return sb.String()
}
