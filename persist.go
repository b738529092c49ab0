package fiberoptics

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dump is a serializable representation of a DopantTable.
type Dump struct {
	Dopant string       `json:"dopant" yaml:"dopant"`
	Min    float64      `json:"min" yaml:"min"`
	Max    float64      `json:"max" yaml:"max"`
	Points []TablePoint `json:"points" yaml:"points"`
}

// Format names a table encoding understood by LoadTable and WriteDump.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from a file extension; anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	p := strings.ToLower(path)
	if strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// FromDump restores a table from a dump.
// Points may come from an untrusted source, so they are sorted by
// concentration and checked before t is touched.
func (t *DopantTable) FromDump(d *Dump) error {
	if d == nil {
		return fmt.Errorf("%w: nil dump", ErrBadTable)
	}
	points := slices.Clone(d.Points)
	slices.SortFunc(points, func(a, b TablePoint) int {
		return cmp.Compare(a.Concentration, b.Concentration)
	})

	if err := checkDump(d, points); err != nil {
		return err
	}

	t.Dopant = d.Dopant
	t.Min = d.Min
	t.Max = d.Max
	t.P = points
	return nil
}

func checkDump(d *Dump, sorted []TablePoint) error {
	if len(sorted) < 2 {
		return fmt.Errorf("%w: %q has %d rows, need at least 2", ErrBadTable, d.Dopant, len(sorted))
	}
	if !finite(d.Min) || !finite(d.Max) || d.Min > d.Max {
		return fmt.Errorf("%w: %q range [%v, %v]", ErrBadTable, d.Dopant, d.Min, d.Max)
	}
	for i, p := range sorted {
		if !finite(p.Concentration) {
			return fmt.Errorf("%w: %q row %d concentration %v", ErrBadTable, d.Dopant, i, p.Concentration)
		}
		for k := 0; k < terms; k++ {
			if !finite(p.A[k]) || !finite(p.B[k]) {
				return fmt.Errorf("%w: %q row %d coefficients %v %v", ErrBadTable, d.Dopant, i, p.A, p.B)
			}
		}
		if i > 0 && sorted[i-1].Concentration == p.Concentration {
			return fmt.Errorf("%w: %q duplicate concentration %v", ErrBadTable, d.Dopant, p.Concentration)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Dump generates a serializable dump of the table.
func (t *DopantTable) Dump() *Dump {
	return &Dump{
		Dopant: t.Dopant,
		Min:    t.Min,
		Max:    t.Max,
		Points: slices.Clone(t.P),
	}
}

// MarshalJSON implements the json.Marshaler interface for DopantTable.
func (t *DopantTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for DopantTable.
func (t *DopantTable) UnmarshalJSON(bytes []byte) error {
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}
	return t.FromDump(&dump)
}

// LoadTable decodes a table dump from r.
func LoadTable(r io.Reader, format Format) (*DopantTable, error) {
	var dump Dump
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&dump); err != nil {
			return nil, fmt.Errorf("decode json table: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&dump); err != nil {
			return nil, fmt.Errorf("decode yaml table: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown table format %q", format)
	}

	t := &DopantTable{}
	if err := t.FromDump(&dump); err != nil {
		return nil, err
	}
	return t, nil
}

// WriteDump encodes the table dump to w.
func (t *DopantTable) WriteDump(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t.Dump())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(t.Dump()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown table format %q", format)
	}
}
