package radix

import "strings"

// Convert rewrites numeral from radix src into radix dst.
//
// Surrounding whitespace is ignored. The first failing step decides the
// error: InvalidRadix, EmptyInput, InvalidDigits, then Overflow.
func Convert(numeral string, src, dst int) (string, error) {
	const op = "convert"
	if err := CheckRadix(src); err != nil {
		return "", newError(op, KindInvalidRadix, numeral, src)
	}
	if err := CheckRadix(dst); err != nil {
		return "", newError(op, KindInvalidRadix, numeral, dst)
	}

	numeral = strings.TrimSpace(numeral)
	if numeral == "" {
		return "", newError(op, KindEmptyInput, "", src)
	}
	if !IsValidInput(numeral, src) {
		return "", newError(op, KindInvalidDigits, numeral, src)
	}

	v, err := Parse(numeral, src)
	if err != nil {
		return "", newError(op, KindOf(err), numeral, src)
	}
	return Render(v, dst)
}
