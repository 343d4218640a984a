package ratmath

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat         = errors.New("invalid format")
	ErrInvalidCharacter      = errors.New("invalid character")
	ErrOutOfRange            = errors.New("out of range")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrIndeterminateDivision = errors.New("indeterminate division: divisor interval contains zero")
	ErrUndefinedOperation    = errors.New("undefined operation")
	ErrDomain                = errors.New("argument outside function domain")
	ErrConvergenceLimit      = errors.New("convergence limit exceeded")
	ErrNoRepresentableValue  = errors.New("no representable value in interval")
	ErrPathTooLong           = errors.New("stern-brocot path too long")
)

// ParseError reports a malformed input string along with what was expected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidFormat }

func parseErr(input, reason string) error {
	return &ParseError{Input: input, Reason: reason}
}

// InvalidCharacterError reports a digit that is not part of a base system's
// alphabet.
type InvalidCharacterError struct {
	Char rune
	Base int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("character %q is not a digit in base %d", e.Char, e.Base)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// OutOfRangeError reports a digit index outside [0, base).
type OutOfRangeError struct {
	Index int
	Base  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("digit index %d out of range [0,%d)", e.Index, e.Base)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// PathTooLongError means a Stern-Brocot walk exceeded the depth bound. Every
// rational terminates at finite depth, so hitting the bound indicates either
// an unreduced target or an algorithm defect, never an expected user outcome.
type PathTooLongError struct {
	Depth int
}

func (e *PathTooLongError) Error() string {
	return fmt.Sprintf("stern-brocot walk exceeded depth %d", e.Depth)
}

func (e *PathTooLongError) Unwrap() error { return ErrPathTooLong }
