// Command fibercalc evaluates a doped silica fiber: refractive indices from
// dopant concentrations, numerical aperture, cut-off wavelength, Verdet
// constants and, optionally, a sampled radial index profile.
//
//	fibercalc --germanium 5.8 --fluorine 1 --a 4.1 --samples 20
//	fibercalc --query 'shape=2&a=25&q=2&ge=7.9' -o json
//	FIBERCALC_WAVELENGTH=1.31 fibercalc --config fiber.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Maxime2/fiberoptics"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "fibercalc:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	log, sync, err := newLogger(cfg.Verbosity)
	if err != nil {
		return err
	}
	defer sync()
	fiberoptics.SetLogger(log)

	t, err := loadTables(cfg, log)
	if err != nil {
		return err
	}
	if cfg.DumpTables {
		return writeTables(stdout, t, cfg.Output)
	}

	report, err := evaluate(cfg, t, log)
	if err != nil {
		return err
	}
	return writeReport(stdout, report, cfg.Output)
}

// newLogger builds a zap console logger on stderr; verbosity n enables
// logr V(n) messages.
func newLogger(verbosity int) (logr.Logger, func(), error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zc.DisableStacktrace = true

	z, err := zc.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("build logger: %w", err)
	}
	return zapr.NewLogger(z), func() { _ = z.Sync() }, nil
}
