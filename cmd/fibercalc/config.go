package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Maxime2/fiberoptics"
	"github.com/Maxime2/fiberoptics/internal/query"
)

const envPrefix = "FIBERCALC"

// Config is everything the command needs for one evaluation. Zero N1, N2
// and N3 mean "derive from the dopant concentrations at Wavelength".
type Config struct {
	Wavelength        float64 `mapstructure:"wavelength"`
	Germanium         float64 `mapstructure:"germanium"`
	Fluorine          float64 `mapstructure:"fluorine"`
	DepressedFluorine float64 `mapstructure:"depressed-fluorine"`

	Shape int     `mapstructure:"shape"`
	N1    float64 `mapstructure:"n1"`
	N2    float64 `mapstructure:"n2"`
	N3    float64 `mapstructure:"n3"`
	A     float64 `mapstructure:"a"`
	B     float64 `mapstructure:"b"`
	C     float64 `mapstructure:"c"`
	Q     float64 `mapstructure:"q"`

	Query          string `mapstructure:"query"`
	GermaniumTable string `mapstructure:"germanium-table"`
	FluorineTable  string `mapstructure:"fluorine-table"`

	Samples    int    `mapstructure:"samples"`
	Output     string `mapstructure:"output"`
	DumpTables bool   `mapstructure:"dump-tables"`
	Verbosity  int    `mapstructure:"verbosity"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("fibercalc", pflag.ContinueOnError)
	fs.String("config", "", "YAML config file")

	fs.Float64("wavelength", 1.55, "operating wavelength [µm]")
	fs.Float64("germanium", 3.1, "germanium concentration of the core [mol%]")
	fs.Float64("fluorine", 0, "fluorine concentration of the cladding [mol%]")
	fs.Float64("depressed-fluorine", 2, "fluorine concentration of the depressed layer, shapes 4 and 5 [mol%]")

	fs.Int("shape", int(fiberoptics.Step), "profile: 1 triangular, 2 gradient, 3 step, 4 depressed cladding, 5 depressed ring")
	fs.Float64("n1", 0, "squared core index; 0 derives it from --germanium")
	fs.Float64("n2", 0, "squared cladding index; 0 derives it from --fluorine")
	fs.Float64("n3", 0, "squared depressed index; 0 derives it from --depressed-fluorine")
	fs.Float64("a", 4.1, "core radius [µm]")
	fs.Float64("b", 0, "inner cladding / ring offset thickness [µm]")
	fs.Float64("c", 0, "ring thickness [µm]")
	fs.Float64("q", 2, "gradient profile exponent")

	fs.String("query", "", "modeler URL query, e.g. 'shape=3&a=4.1&ge=5.8'; overrides flags")
	fs.String("germanium-table", "", "custom germanium calibration table (.json or .yaml)")
	fs.String("fluorine-table", "", "custom fluorine calibration table (.json or .yaml)")

	fs.Int("samples", 0, "number of profile samples to print")
	fs.StringP("output", "o", "text", "output format: text, json or yaml")
	fs.Bool("dump-tables", false, "print the calibration tables in use and exit")
	fs.IntP("verbosity", "v", 0, "log verbosity")
	return fs
}

// loadConfig merges, lowest priority first: flag defaults, config file,
// FIBERCALC_* environment, explicit flags, and finally --query.
func loadConfig(args []string) (Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Query != "" {
		if err := cfg.applyQuery(cfg.Query); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyQuery(raw string) error {
	p, err := query.Parse(raw)
	if err != nil {
		return err
	}

	set := func(key string, dst *float64, v float64) {
		if p.Has(key) {
			*dst = v
		}
	}
	set(query.KeyWavelength, &c.Wavelength, p.Wavelength)
	set(query.KeyGermanium, &c.Germanium, p.Germanium)
	set(query.KeyFluorine, &c.Fluorine, p.Fluorine)
	if p.Has(query.KeyShape) {
		c.Shape = int(p.Profile.Shape)
	}
	set(query.KeyN1, &c.N1, p.Profile.N1)
	set(query.KeyN2, &c.N2, p.Profile.N2)
	set(query.KeyN3, &c.N3, p.Profile.N3)
	set(query.KeyA, &c.A, p.Profile.A)
	set(query.KeyB, &c.B, p.Profile.B)
	set(query.KeyC, &c.C, p.Profile.C)
	set(query.KeyQ, &c.Q, p.Profile.Q)
	return nil
}

// Validate checks the command-level options; physical inputs are left to
// the library.
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output must be text, json or yaml, got %q", c.Output)
	}
	if c.Samples < 0 || c.Samples == 1 {
		return fmt.Errorf("samples must be 0 or at least 2, got %d", c.Samples)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must be >= 0, got %d", c.Verbosity)
	}
	return nil
}
