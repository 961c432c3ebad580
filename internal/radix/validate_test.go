package radix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"radixconv/internal/radix"
)

func TestIsValidInput_Basics(t *testing.T) {
	assert.False(t, radix.IsValidInput("", 10))
	assert.False(t, radix.IsValidInput("-", 10))
	assert.True(t, radix.IsValidInput("-0", 10))
	assert.True(t, radix.IsValidInput("0", 2))
	assert.False(t, radix.IsValidInput("--1", 10))
	assert.False(t, radix.IsValidInput("1-", 10))
	assert.False(t, radix.IsValidInput("+1", 10))
	assert.False(t, radix.IsValidInput(" 1", 10))
	assert.False(t, radix.IsValidInput("XYZ", 10))
	assert.True(t, radix.IsValidInput("xyz", 36))
	assert.False(t, radix.IsValidInput("1", 1))
	assert.False(t, radix.IsValidInput("1", 37))
}

func TestIsValidInput_EveryRadix(t *testing.T) {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	for r := radix.MinRadix; r <= radix.MaxRadix; r++ {
		legal := digits[:r]
		assert.True(t, radix.IsValidInput(legal, r), "all legal lower, base %d", r)
		assert.True(t, radix.IsValidInput(strings.ToUpper(legal), r), "all legal upper, base %d", r)
		assert.True(t, radix.IsValidInput("-"+legal, r), "signed, base %d", r)

		if r < radix.MaxRadix {
			bad := string(digits[r])
			assert.False(t, radix.IsValidInput(legal+bad, r), "digit %s in base %d", bad, r)
			assert.False(t, radix.IsValidInput("-"+bad, r), "signed digit %s in base %d", bad, r)
		}
		assert.False(t, radix.IsValidInput(legal+".", r), "undefined char in base %d", r)
	}
}
