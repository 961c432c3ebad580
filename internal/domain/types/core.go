package types

import (
	"strconv"

	"radixconv/internal/radix"
)

// Radix is a positional base between radix.MinRadix and radix.MaxRadix.
type Radix int

// Valid reports whether r is a supported base.
func (r Radix) Valid() bool { return radix.CheckRadix(int(r)) == nil }

// String returns the decimal form of the radix.
func (r Radix) String() string { return strconv.Itoa(int(r)) }

// Numeral is a textual number, optionally prefixed with '-'.
type Numeral string

// String returns the string form of the numeral.
func (n Numeral) String() string { return string(n) }
