package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmountDot2(t *testing.T) {
	assert.Equal(t, "1.10", FormatAmountDot2(1.1))
	assert.Equal(t, "1000.00", FormatAmountDot2(1000.0))
	assert.Equal(t, "0.00", FormatAmountDot2(0))
}

func TestFormatAmountComma2(t *testing.T) {
	assert.Equal(t, "1,00", FormatAmountComma2(1.0))
	assert.Equal(t, "10,50", FormatAmountComma2(10.5))
}

func TestAmountMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1050), AmountMinorUnits(10.50))
	assert.Equal(t, int64(110), AmountMinorUnits(1.1))
	// Scale consistency: doubling the amount doubles the minor units.
	assert.Equal(t, AmountMinorUnits(10.0)*2, AmountMinorUnits(20.0))
	// Binary float residue must not truncate downwards.
	assert.Equal(t, int64(2920), AmountMinorUnits(29.2))
}

func TestPadLeftZero(t *testing.T) {
	assert.Equal(t, "000042", PadLeftZero("42", 6))
	assert.Equal(t, "424242", PadLeftZero("424242", 6))
	assert.Equal(t, "4242424", PadLeftZero("4242424", 6))
}

func TestPadLeftZeroInt(t *testing.T) {
	assert.Equal(t, "06", PadLeftZeroInt(6, 2))
	assert.Equal(t, "12", PadLeftZeroInt(12, 2))
	assert.Equal(t, "000000001", PadLeftZeroInt(1, 9))
}
