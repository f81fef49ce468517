package util

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNegativePrice is returned by ParsePrice for values below zero.
var ErrNegativePrice = errors.New("price must not be negative")

// ErrPriceOutOfRange is returned by ParsePrice for values too large to hold.
var ErrPriceOutOfRange = errors.New("price is out of range")

// FormatPrice formats a price with two decimals and a trailing currency symbol,
// e.g. "8.00€".
func FormatPrice(price float64, currency string) string {
	return decimal.NewFromFloat(price).StringFixed(2) + currency
}

// ParsePrice parses user input such as "12.5" into a price. Surrounding spaces
// are ignored; anything else that is not a plain decimal number is rejected.
func ParsePrice(input string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", input, err)
	}
	if d.IsNegative() {
		return 0, ErrNegativePrice
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrPriceOutOfRange
	}
	return f, nil
}

// FormatPriceInput renders a price the way it is offered for editing: no
// trailing zeros, so 8 becomes "8" and 7.5 becomes "7.5".
func FormatPriceInput(price float64) string {
	return decimal.NewFromFloat(price).String()
}

// IntensityMeter draws a three-step bar, e.g. "■■□" for level 2.
func IntensityMeter(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 3 {
		level = 3
	}
	return strings.Repeat("■", level) + strings.Repeat("□", 3-level)
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// OrDash returns s, or "—" when s is blank.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
