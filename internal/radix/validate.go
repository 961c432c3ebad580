package radix

// IsValidInput reports whether numeral is a well-formed numeral in radix r:
// an optional leading '-' followed by at least one digit whose value is
// below r. It does not look at magnitude.
func IsValidInput(numeral string, r int) bool {
	if numeral == "" || CheckRadix(r) != nil {
		return false
	}
	digits := numeral
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		v, ok := CharToVal(digits[i])
		if !ok || v >= r {
			return false
		}
	}
	return true
}
