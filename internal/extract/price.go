package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CurrencySymbol prefixes every normalized price string
const CurrencySymbol = "₹"

var (
	priceAreaClass      = regexp.MustCompile(`flex justify-between`)
	amountRegex         = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
	currencyAmountRegex = regexp.MustCompile(`₹\s*(\d[\d,]*(?:\.\d+)?)`)
)

var priceHeuristics = []Heuristic[string]{
	priceFromBoldSpan,
	priceFromCurrencyParagraph,
}

// priceArea is the row holding the price and the buy button
func priceArea(item *goquery.Selection) *goquery.Selection {
	return withClassMatching(item.Find("div"), priceAreaClass).First()
}

// priceFromBoldSpan reads the bold price in the price area
func priceFromBoldSpan(item *goquery.Selection) (string, bool) {
	raw := text(priceArea(item).Find("span.font-bold").First())
	if raw == "" {
		return "", false
	}
	if amount := amountRegex.FindString(raw); amount != "" {
		return CurrencySymbol + amount, true
	}
	return raw, true
}

// priceFromCurrencyParagraph reads the first paragraph in the price area mentioning the currency
func priceFromCurrencyParagraph(item *goquery.Selection) (string, bool) {
	p := priceArea(item).Find("p").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), CurrencySymbol)
	}).First()

	raw := text(p)
	if raw == "" {
		return "", false
	}
	if m := currencyAmountRegex.FindStringSubmatch(raw); m != nil {
		return CurrencySymbol + m[1], true
	}
	return raw, true
}
