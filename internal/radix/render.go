package radix

// 64 binary digits plus a sign.
const maxRenderLen = 65

// Render writes v in radix r using canonical uppercase digits, with a leading
// '-' for negative values and no leading zeros.
func Render(v int64, r int) (string, error) {
	if err := CheckRadix(r); err != nil {
		return "", newError("render", KindInvalidRadix, "", r)
	}
	if v == 0 {
		return "0", nil
	}

	neg := v < 0
	mag := uint64(v)
	if neg {
		// two's-complement negate in the unsigned domain; exact for MinInt64
		mag = -mag
	}

	var buf [maxRenderLen]byte
	i := len(buf)
	base := uint64(r)
	for mag > 0 {
		i--
		buf[i] = ValToChar(int(mag % base))
		mag /= base
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:]), nil
}
