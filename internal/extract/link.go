package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	primaryActionClass = regexp.MustCompile(`\btext-primary\b`)
	buyTextRegex       = regexp.MustCompile(`Buy`)
)

// linkHeuristics look in the price area first, then anywhere in the item
var linkHeuristics = []Heuristic[string]{
	inPriceArea(primaryActionHref),
	inPriceArea(buyTextHref),
	primaryActionHref,
	buyTextHref,
}

func inPriceArea(h Heuristic[string]) Heuristic[string] {
	return func(item *goquery.Selection) (string, bool) {
		area := priceArea(item)
		if area.Length() == 0 {
			return "", false
		}
		return h(area)
	}
}

// anchors returns links that point somewhere other than the current page
func anchors(scope *goquery.Selection) *goquery.Selection {
	return scope.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		return href != "" && !strings.HasPrefix(href, "#")
	})
}

// primaryActionHref finds an anchor styled as the primary action
func primaryActionHref(scope *goquery.Selection) (string, bool) {
	return hrefOf(withClassMatching(anchors(scope), primaryActionClass).First())
}

// buyTextHref finds an anchor whose text mentions Buy
func buyTextHref(scope *goquery.Selection) (string, bool) {
	a := anchors(scope).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return buyTextRegex.MatchString(s.Text())
	}).First()
	return hrefOf(a)
}

func hrefOf(a *goquery.Selection) (string, bool) {
	if a.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(a.AttrOr("href", "")), true
}

// resolveLink makes href absolute against the page it was found on
func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil || base == nil || ref.IsAbs() {
		return href
	}
	return base.ResolveReference(ref).String()
}
