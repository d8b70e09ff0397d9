package bigint

import "github.com/pkg/errors"

// Sentinel errors identify the discriminated error kinds of the kernel.
// Callers distinguish them with errors.Is. Most primitives wrap one of
// these (via errors.Wrap/Wrapf), so a %+v format carries a stack trace
// back to the call site; the division-by-zero checks in DivMod,
// divmodDigit and Mod return ErrDivisionByZero bare.
var (
	ErrOutOfMemory          = errors.New("bigint: out of memory")
	ErrDivisionByZero       = errors.New("bigint: division by zero")
	ErrInvalidArgument      = errors.New("bigint: invalid argument")
	ErrMaxIterationsReached = errors.New("bigint: max iterations reached")
	ErrInvalidInput         = errors.New("bigint: invalid input")
)

// wrap attaches call-site context to a sentinel error without losing its
// identity under errors.Is.
func wrap(base error, msg string) error {
	return errors.Wrap(base, msg)
}

func wrapf(base error, format string, args ...interface{}) error {
	return errors.Wrapf(base, format, args...)
}
