package radix

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrEmptyInput    = errors.New("input cannot be empty")
	ErrInvalidRadix  = fmt.Errorf("radix must be between %d and %d", MinRadix, MaxRadix)
	ErrInvalidDigits = errors.New("invalid digits for radix")
	ErrOverflow      = errors.New("too large for 64-bit signed range")
)

// Kind is a coarse-grained categorization for conversion errors.
type Kind string

const (
	KindEmptyInput    Kind = "empty_input"
	KindInvalidRadix  Kind = "invalid_radix"
	KindInvalidDigits Kind = "invalid_digits"
	KindOverflow      Kind = "overflow"
)

// Error reports a failed engine operation.
type Error struct {
	Op    string // parse, render, convert
	Kind  Kind
	Input string // offending numeral, if any
	Radix int    // radix in effect when the failure happened
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("radix %s", e.Op)
	if e.Input != "" {
		base += fmt.Sprintf(" %q", e.Input)
	}
	if e.Radix != 0 {
		base += fmt.Sprintf(" (base %d)", e.Radix)
	}
	return base + ": " + e.sentinel().Error()
}

// Unwrap exposes the sentinel matching Kind, so errors.Is works.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindEmptyInput:
		return ErrEmptyInput
	case KindInvalidRadix:
		return ErrInvalidRadix
	case KindInvalidDigits:
		return ErrInvalidDigits
	case KindOverflow:
		return ErrOverflow
	}
	return fmt.Errorf("unknown error kind %q", e.Kind)
}

// KindOf returns the kind of err, or "" if err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind helps callers classify errors without string matching.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func newError(op string, kind Kind, input string, r int) *Error {
	return &Error{Op: op, Kind: kind, Input: input, Radix: r}
}
