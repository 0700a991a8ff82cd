// Package currencyutils provides the amount normalization and display helpers shared
// by input validation and reports.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]|CHF|INR|Rs\.?`)

// StandardizeAmount converts user-entered amount text to a form decimal.NewFromString
// accepts. Handles patterns like "₹1200", "CHF 1'234.56", "1.234,56" and "12,50".
func StandardizeAmount(amountStr string) string {
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			// Decimal comma (1234,56)
			amountStr = strings.Replace(amountStr, ",", ".", 1)
		} else {
			// Thousand separators (1,234 or 1,234,567)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes as thousand separators (1'234.56)
	return strings.ReplaceAll(amountStr, "'", "")
}

// ParseAmount parses amount text into a decimal value after standardizing it.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount '%s'", amountStr)
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// WithSymbol appends the display currency symbol to a formatted amount:
// "1200.00 ₹". An empty symbol leaves the amount unchanged.
func WithSymbol(amount, symbol string) string {
	if symbol == "" {
		return amount
	}
	return amount + " " + symbol
}

