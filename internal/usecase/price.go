package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPriceRegex = regexp.MustCompile(`₹\s*(\d[\d,]*(?:\.\d+)?)`)

var rupeePrinter = message.NewPrinter(language.English)

// ParsePrice extracts the first rupee amount from text, e.g. "₹12,345.50" -> 12345.5.
// It returns nil when no amount is present or the amount is not a finite number.
func ParsePrice(text string) *float64 {
	m := currencyPriceRegex.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v < 0 {
		return nil
	}
	return &v
}

// FormatRupees renders a price for display with grouping and two decimals: ₹12,345.00
func FormatRupees(v float64) string {
	return rupeePrinter.Sprintf("₹%.2f", v)
}
