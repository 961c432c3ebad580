package radix

import "math"

// Parse reads numeral as a signed integer in radix r.
//
// Callers are expected to have checked numeral with IsValidInput; Parse does
// not make a separate validation pass, but it stops with InvalidDigits on the
// first byte it cannot decode rather than accumulating garbage.
//
// The magnitude is accumulated as a uint64 and the overflow test runs before
// each multiply-add. The result is then mapped into the int64 range, where a
// negative magnitude of exactly 2^63 is math.MinInt64.
func Parse(numeral string, r int) (int64, error) {
	const op = "parse"
	if err := CheckRadix(r); err != nil {
		return 0, newError(op, KindInvalidRadix, numeral, r)
	}
	if numeral == "" {
		return 0, newError(op, KindEmptyInput, numeral, r)
	}

	neg := numeral[0] == '-'
	digits := numeral
	if neg {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, newError(op, KindInvalidDigits, numeral, r)
	}

	base := uint64(r)
	var acc uint64
	for i := 0; i < len(digits); i++ {
		v, ok := CharToVal(digits[i])
		if !ok || v >= r {
			return 0, newError(op, KindInvalidDigits, numeral, r)
		}
		d := uint64(v)
		if acc > (math.MaxUint64-d)/base {
			return 0, newError(op, KindOverflow, numeral, r)
		}
		acc = acc*base + d
	}

	if neg {
		switch {
		case acc == uint64(math.MaxInt64)+1:
			return math.MinInt64, nil
		case acc > math.MaxInt64:
			return 0, newError(op, KindOverflow, numeral, r)
		}
		return -int64(acc), nil
	}
	if acc > math.MaxInt64 {
		return 0, newError(op, KindOverflow, numeral, r)
	}
	return int64(acc), nil
}
