package fiberoptics

import (
	"sync/atomic"

	"github.com/go-logr/logr"
)

var diagnostics atomic.Pointer[logr.Logger]

func init() {
	SetLogger(logr.Discard())
}

// SetLogger installs the sink that receives a diagnostic for every rejected
// input. The default discards everything.
func SetLogger(l logr.Logger) {
	l = l.WithName("fiberoptics")
	diagnostics.Store(&l)
}

// Logger returns the currently installed diagnostic logger.
func Logger() logr.Logger {
	return *diagnostics.Load()
}

// reject stamps the failing public function on ve, reports it and returns it
// as an error.
func reject(fn string, ve *ValidationError) error {
	ve.Func = fn
	Logger().Error(ve.Err, "input rejected",
		"func", fn,
		"field", ve.Field,
		"value", ve.Value,
		"kind", ve.Kind().String())
	return ve
}
