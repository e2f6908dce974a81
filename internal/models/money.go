package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user supplied amount into a decimal.
// It ignores spaces, apostrophe thousand separators and a trailing or leading
// currency marker. When both '.' and ',' appear, the rightmost one is the
// decimal separator and the other groups thousands; a lone comma is a
// decimal separator unless it repeats.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "'", "")
	for _, marker := range []string{"CHF", "EUR", "USD", "$", "€"} {
		amount = strings.ReplaceAll(amount, marker, "")
	}
	amount = normalizeSeparators(amount)

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", amountStr, err)
	}
	return dec, nil
}

func normalizeSeparators(amount string) string {
	lastComma := strings.LastIndex(amount, ",")
	lastDot := strings.LastIndex(amount, ".")
	switch {
	case lastComma < 0:
		return amount
	case lastDot < 0 && strings.Count(amount, ",") == 1:
		return strings.Replace(amount, ",", ".", 1)
	case lastDot < 0:
		return strings.ReplaceAll(amount, ",", "")
	case lastComma > lastDot:
		amount = strings.ReplaceAll(amount, ".", "")
		return strings.Replace(amount, ",", ".", 1)
	default:
		return strings.ReplaceAll(amount, ",", "")
	}
}

// FormatAmountExact renders amount with at least 2 decimal places, keeping
// any sub-cent digits so that parsing the result yields the same value.
func FormatAmountExact(amount decimal.Decimal) string {
	if amount.Round(2).Equal(amount) {
		return amount.StringFixed(2)
	}
	return amount.String()
}

// FormatAmount formats an amount with exactly 2 decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
