package radix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"radixconv/internal/radix"
)

func TestCharToVal(t *testing.T) {
	cases := []struct {
		in   byte
		want int
		ok   bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'A', 10, true},
		{'z', 35, true},
		{'Z', 35, true},
		{'-', -1, false},
		{' ', -1, false},
		{'_', -1, false},
		{0xC3, -1, false},
	}
	for _, tc := range cases {
		got, ok := radix.CharToVal(tc.in)
		assert.Equal(t, tc.ok, ok, "ok for %q", tc.in)
		assert.Equal(t, tc.want, got, "value for %q", tc.in)
	}
}

func TestValToChar_Canonical(t *testing.T) {
	const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for v := 0; v < radix.MaxRadix; v++ {
		assert.Equal(t, digits[v], radix.ValToChar(v))

		back, ok := radix.CharToVal(radix.ValToChar(v))
		assert.True(t, ok)
		assert.Equal(t, v, back)
	}
	assert.Equal(t, byte('?'), radix.ValToChar(-1))
	assert.Equal(t, byte('?'), radix.ValToChar(36))
}

func TestCheckRadix(t *testing.T) {
	for r := radix.MinRadix; r <= radix.MaxRadix; r++ {
		assert.NoError(t, radix.CheckRadix(r))
	}
	for _, r := range []int{-1, 0, 1, 37, 62} {
		err := radix.CheckRadix(r)
		assert.ErrorIs(t, err, radix.ErrInvalidRadix, "radix %d", r)
	}
}
