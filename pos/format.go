package pos

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmountDot2 renders the amount as a fixed two-decimal string with a
// dot separator ("10.50").
func FormatAmountDot2(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatAmountComma2 renders the amount as a fixed two-decimal string with
// a comma separator ("10,50").
func FormatAmountComma2(amount float64) string {
	return strings.Replace(FormatAmountDot2(amount), ".", ",", 1)
}

// AmountMinorUnits scales the amount to integer minor units (kuruş):
// 10.50 becomes 1050.
func AmountMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// PadLeftZero left-pads s with zeros to the given total length. s is
// returned unchanged when already long enough.
func PadLeftZero(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat("0", length-len(s)) + s
}

// PadLeftZeroInt renders n zero-padded to the given width ("06", "12").
func PadLeftZeroInt(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}
