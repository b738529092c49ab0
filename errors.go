package fiberoptics

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "fiberoptics: " so failures are easy to grep
// in logs. Callers match with errors.Is, either against a category sentinel
// (ErrMalformedInput, ErrWrongCount, ErrNotANumber, ErrOutOfRange) or against
// the specific sentinel that wraps it.

var (
	// ErrMalformedInput is the category for absent structured input
	// (nil node tables, nil coefficient slices).
	ErrMalformedInput = errors.New("fiberoptics: malformed input")

	// ErrWrongCount is the category for tables and coefficient slices with
	// the wrong number of elements.
	ErrWrongCount = errors.New("fiberoptics: wrong element count")

	// ErrNotANumber is the category for NaN or ±Inf where a finite value is required.
	ErrNotANumber = errors.New("fiberoptics: not a finite number")

	// ErrOutOfRange is the category for finite values outside their declared range.
	ErrOutOfRange = errors.New("fiberoptics: value out of range")
)

var (
	// ErrNilNodes is returned when no node set was supplied.
	ErrNilNodes = fmt.Errorf("%w: nodes are nil", ErrMalformedInput)

	// ErrMissingTable is returned when nodes.X or nodes.Y is not a table.
	ErrMissingTable = fmt.Errorf("%w: 'nodes.x' or 'nodes.y' does not contain a table", ErrMalformedInput)

	// ErrTooFewNodes is returned when fewer than two nodes are supplied.
	ErrTooFewNodes = fmt.Errorf("%w: a minimum of two nodes must be specified for interpolation", ErrWrongCount)

	// ErrLengthMismatch is returned when the x and y tables differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: value tables are not the same dimension", ErrWrongCount)

	// ErrMissingCoefficients is returned when coefficients.A or coefficients.B is nil.
	ErrMissingCoefficients = fmt.Errorf("%w: coefficient table is missing", ErrMalformedInput)

	// ErrCoefficientCount is returned when a coefficient table does not hold exactly three terms.
	ErrCoefficientCount = fmt.Errorf("%w: exactly three coefficients are required", ErrWrongCount)

	// ErrBadShape is returned for a profile shape outside 1..5.
	ErrBadShape = fmt.Errorf("%w: unknown profile shape", ErrOutOfRange)

	// ErrBadTable is returned by FromDump for calibration data that cannot be interpolated.
	ErrBadTable = fmt.Errorf("%w: invalid calibration table", ErrMalformedInput)
)

// ErrorKind classifies a validation failure.
type ErrorKind int

const (
	// KindNone means the error is nil or not produced by this package.
	KindNone ErrorKind = iota
	// KindMalformed: absent structured input.
	KindMalformed
	// KindCount: wrong element count.
	KindCount
	// KindNotANumber: NaN or infinite scalar.
	KindNotANumber
	// KindOutOfRange: finite scalar outside its declared range.
	KindOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindCount:
		return "count"
	case KindNotANumber:
		return "not-a-number"
	case KindOutOfRange:
		return "out-of-range"
	default:
		return "none"
	}
}

// KindOf reports the category of err.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMalformedInput):
		return KindMalformed
	case errors.Is(err, ErrWrongCount):
		return KindCount
	case errors.Is(err, ErrNotANumber):
		return KindNotANumber
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	default:
		return KindNone
	}
}

// ValidationError describes a rejected input: the public function that
// rejected it, the offending field and the observed value.
type ValidationError struct {
	Func  string
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %v", e.Func, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Kind is shorthand for KindOf(e).
func (e *ValidationError) Kind() ErrorKind { return KindOf(e.Err) }
