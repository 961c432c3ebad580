package commands

import (
	"fmt"

	"radixconv/internal/radix"
)

// userMessage turns a conversion failure into the text shown to users.
func userMessage(err error) string {
	switch radix.KindOf(err) {
	case radix.KindEmptyInput:
		return "Input cannot be empty."
	case radix.KindInvalidDigits:
		return "Input contains invalid characters for the source base."
	case radix.KindOverflow:
		return "Number is too large for a 64-bit signed integer."
	case radix.KindInvalidRadix:
		return fmt.Sprintf("Enter base between %d and %d (or 0 to quit).", radix.MinRadix, radix.MaxRadix)
	}
	return err.Error()
}
