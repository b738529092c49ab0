package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"

	"github.com/Maxime2/fiberoptics"
)

// Report is the result of one evaluation.
type Report struct {
	Wavelength        float64                  `json:"wavelength" yaml:"wavelength"`
	Core              fiberoptics.Coefficients `json:"core" yaml:"core"`
	Cladding          fiberoptics.Coefficients `json:"cladding" yaml:"cladding"`
	Profile           fiberoptics.ProfileData  `json:"profile" yaml:"profile"`
	CoreIndex         float64                  `json:"coreIndex" yaml:"coreIndex"`
	CladdingIndex     float64                  `json:"claddingIndex" yaml:"claddingIndex"`
	NumericalAperture float64                  `json:"numericalAperture" yaml:"numericalAperture"`
	Cutoff            float64                  `json:"cutoffWavelength" yaml:"cutoffWavelength"`
	SingleMode        bool                     `json:"singleMode" yaml:"singleMode"`
	VerdetCore        float64                  `json:"verdetCore" yaml:"verdetCore"`
	VerdetCladding    float64                  `json:"verdetCladding" yaml:"verdetCladding"`
	Samples           []fiberoptics.Point      `json:"samples,omitempty" yaml:"samples,omitempty"`
}

// tables are the calibration data in use.
type tables struct {
	germanium *fiberoptics.DopantTable
	fluorine  *fiberoptics.DopantTable
}

func loadTables(cfg Config, log logr.Logger) (tables, error) {
	t := tables{
		germanium: fiberoptics.GermaniumTable(),
		fluorine:  fiberoptics.FluorineTable(),
	}

	load := func(path string, dst **fiberoptics.DopantTable) error {
		if path == "" {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		table, err := fiberoptics.LoadTable(f, fiberoptics.FormatFromPath(path))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.V(1).Info("Loaded calibration table", "path", path, "dopant", table.Dopant, "rows", table.Len())
		*dst = table
		return nil
	}

	if err := load(cfg.GermaniumTable, &t.germanium); err != nil {
		return tables{}, err
	}
	if err := load(cfg.FluorineTable, &t.fluorine); err != nil {
		return tables{}, err
	}
	return t, nil
}

// evaluate plays the part of the modeler UI: it turns the configuration into
// library calls and collects the results.
func evaluate(cfg Config, t tables, log logr.Logger) (*Report, error) {
	core, err := t.germanium.Coefficients(cfg.Germanium)
	if err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	cladding, err := t.fluorine.Coefficients(cfg.Fluorine)
	if err != nil {
		return nil, fmt.Errorf("cladding: %w", err)
	}

	data := fiberoptics.ProfileData{
		Shape: fiberoptics.Shape(cfg.Shape),
		N1:    cfg.N1,
		N2:    cfg.N2,
		N3:    cfg.N3,
		A:     cfg.A,
		B:     cfg.B,
		C:     cfg.C,
		Q:     cfg.Q,
	}
	if data.N1 == 0 {
		if data.N1, err = fiberoptics.Sellmeier(cfg.Wavelength, core); err != nil {
			return nil, fmt.Errorf("core index: %w", err)
		}
	}
	if data.N2 == 0 {
		if data.N2, err = fiberoptics.Sellmeier(cfg.Wavelength, cladding); err != nil {
			return nil, fmt.Errorf("cladding index: %w", err)
		}
	}
	if data.N3 == 0 && (data.Shape == fiberoptics.StepDepressedCladding || data.Shape == fiberoptics.StepDepressedRing) {
		depressed, err := t.fluorine.Coefficients(cfg.DepressedFluorine)
		if err != nil {
			return nil, fmt.Errorf("depressed layer: %w", err)
		}
		if data.N3, err = fiberoptics.Sellmeier(cfg.Wavelength, depressed); err != nil {
			return nil, fmt.Errorf("depressed index: %w", err)
		}
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	r := &Report{
		Wavelength:        cfg.Wavelength,
		Core:              core,
		Cladding:          cladding,
		Profile:           data,
		CoreIndex:         fiberoptics.Profile(data, 0),
		CladdingIndex:     fiberoptics.Profile(data, fiberoptics.ProfileOverscan*data.Radius()),
		NumericalAperture: fiberoptics.NumericalAperture(data.N1, data.N2),
	}
	if r.Cutoff, err = fiberoptics.CutoffWavelength(data); err != nil {
		return nil, err
	}
	r.SingleMode = cfg.Wavelength > r.Cutoff

	if r.VerdetCore, err = fiberoptics.VerdetConstant(cfg.Wavelength, core); err != nil {
		return nil, err
	}
	if r.VerdetCladding, err = fiberoptics.VerdetConstant(cfg.Wavelength, cladding); err != nil {
		return nil, err
	}

	if cfg.Samples > 0 {
		if r.Samples, err = fiberoptics.SampleProfile(data, cfg.Samples); err != nil {
			return nil, err
		}
	}

	log.V(1).Info("Evaluated fiber",
		"shape", data.Shape.String(),
		"cutoff", r.Cutoff,
		"numericalAperture", r.NumericalAperture)
	return r, nil
}

func writeReport(w io.Writer, r *Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "wavelength\t%.4f µm\n", r.Wavelength)
	fmt.Fprintf(tw, "profile\t%s, a=%g µm\n", r.Profile.Shape, r.Profile.A)
	fmt.Fprintf(tw, "core index\t%.6f\n", r.CoreIndex)
	fmt.Fprintf(tw, "cladding index\t%.6f\n", r.CladdingIndex)
	fmt.Fprintf(tw, "numerical aperture\t%.4f\n", r.NumericalAperture)
	fmt.Fprintf(tw, "cut-off wavelength\t%.4f µm\n", r.Cutoff)
	fmt.Fprintf(tw, "single-mode\t%t\n", r.SingleMode)
	fmt.Fprintf(tw, "verdet core\t%.4f rad/(T·m)\n", r.VerdetCore)
	fmt.Fprintf(tw, "verdet cladding\t%.4f rad/(T·m)\n", r.VerdetCladding)
	if len(r.Samples) > 0 {
		fmt.Fprintf(tw, "\nradius [µm]\tindex\n")
		for _, p := range r.Samples {
			fmt.Fprintf(tw, "%.4f\t%.6f\n", p.X, p.Y)
		}
	}
	return tw.Flush()
}

// writeTables prints both tables as one document holding a list of dumps.
func writeTables(w io.Writer, t tables, format string) error {
	dumps := []*fiberoptics.Dump{t.germanium.Dump(), t.fluorine.Dump()}
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dumps)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(dumps); err != nil {
		return err
	}
	return enc.Close()
}
