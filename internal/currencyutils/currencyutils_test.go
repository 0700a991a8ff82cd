package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  decimal.Decimal
		hasError  bool
	}{
		{"Simple decimal", "123.45", decimal.RequireFromString("123.45"), false},
		{"Integer", "100", decimal.NewFromInt(100), false},
		{"Negative decimal", "-123.45", decimal.RequireFromString("-123.45"), false},
		{"With comma decimal separator", "123,45", decimal.RequireFromString("123.45"), false},
		{"With thousand separator (comma)", "1,234", decimal.NewFromInt(1234), false},
		{"With thousand separator (apostrophe)", "1'234.56", decimal.RequireFromString("1234.56"), false},
		{"European format", "1.234,56", decimal.RequireFromString("1234.56"), false},
		{"With rupee symbol", "₹1200", decimal.NewFromInt(1200), false},
		{"With rupee code", "Rs. 450", decimal.NewFromInt(450), false},
		{"With currency symbol (USD)", "$123.45", decimal.RequireFromString("123.45"), false},
		{"With currency code", "CHF 123.45", decimal.RequireFromString("123.45"), false},
		{"With spaces", "  123.45  ", decimal.RequireFromString("123.45"), false},
		{"Empty string", "", decimal.Zero, true},
		{"Only a symbol", "₹", decimal.Zero, true},
		{"Malformed decimal", "123.45.67", decimal.Zero, true},
		{"Mixed separators in US order", "1,000.50", decimal.Zero, true},
		{"Non-numeric", "abc", decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)

			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected.String(), result.String())
			}
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1234.56", "1234.56"},
		{"₹ 1 200", "1200"},
		{"1.234,56", "1234.56"},
		{"12,5", "12.5"},
		{"1,234,567", "1234567"},
		{"1'234.56", "1234.56"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.input))
		})
	}
}

func TestWithSymbol(t *testing.T) {
	assert.Equal(t, "12.5 €", WithSymbol("12.5", "€"))
	assert.Equal(t, "12.5", WithSymbol("12.5", ""))
}
