package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "SimpleAmount", input: "123.45", expected: "123.45"},
		{name: "AmountWithComma", input: "123,45", expected: "123.45"},
		{name: "NegativeAmount", input: "-123.45", expected: "-123.45"},
		{name: "WithCurrencySymbol", input: "€123.45", expected: "123.45"},
		{name: "WithCurrencyCode", input: "CHF 123.45", expected: "123.45"},
		{name: "WithSpaces", input: " 123.45 ", expected: "123.45"},
		{name: "WithThousandSeparator", input: "1'234.56", expected: "1234.56"},
		{name: "Integer", input: "2000", expected: "2000"},
		{name: "CommaThousands", input: "1,234.56", expected: "1234.56"},
		{name: "CommaThousandsNoDecimals", input: "1,234,567", expected: "1234567"},
		{name: "DotThousandsCommaDecimal", input: "1.234,56", expected: "1234.56"},
		{name: "CurrencyAndCommaThousands", input: "$1,234.56", expected: "1234.56"},
		{name: "InvalidAmount", input: "not-a-number", expectError: true},
		{name: "Empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "25.50", FormatAmount(decimal.RequireFromString("25.5")))
	assert.Equal(t, "1225.50", FormatAmount(decimal.RequireFromString("1225.5")))
	assert.Equal(t, "-150.00", FormatAmount(decimal.NewFromInt(-150)))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}

func TestFormatAmountExact(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"25.5", "25.50"},
		{"2000", "2000.00"},
		{"0.125", "0.125"},
		{"-3.14159", "-3.14159"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.input)
			got := FormatAmountExact(amount)
			assert.Equal(t, tt.expected, got)

			back, err := ParseAmount(got)
			assert.NoError(t, err)
			assert.True(t, amount.Equal(back), "round trip changed %s to %s", amount, back)
		})
	}
}
