package radix

const (
	// MinRadix is the smallest supported base.
	MinRadix = 2
	// MaxRadix is the largest supported base (digits 0-9 then A-Z).
	MaxRadix = 36
)

// CheckRadix returns an InvalidRadix error unless r is in [MinRadix, MaxRadix].
func CheckRadix(r int) error {
	if r < MinRadix || r > MaxRadix {
		return newError("check", KindInvalidRadix, "", r)
	}
	return nil
}

// CharToVal returns the digit value of c. Letters are case-insensitive.
// ok is false for bytes that are not digits in any supported radix.
func CharToVal(c byte) (v int, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return -1, false
}

// ValToChar returns the canonical (uppercase) digit for v.
// Values outside [0, 35] yield '?'.
func ValToChar(v int) byte {
	switch {
	case v >= 0 && v <= 9:
		return byte('0' + v)
	case v >= 10 && v < MaxRadix:
		return byte('A' + v - 10)
	}
	return '?'
}
