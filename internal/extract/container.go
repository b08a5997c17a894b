package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var offerListClass = regexp.MustCompile(`my-4 grid`)

// containerHeuristics locate the <ul> holding the offers, most specific first
var containerHeuristics = []Heuristic[*goquery.Selection]{
	listInStoresSection,
	listInFoundPricesSection,
	firstOfferList,
}

// listInStoresSection finds the list inside the section with id onlineStoresList
func listInStoresSection(root *goquery.Selection) (*goquery.Selection, bool) {
	section := root.Find("section#onlineStoresList").First()
	if section.Length() == 0 {
		return nil, false
	}
	return offerList(section)
}

// listInFoundPricesSection finds the list inside a grid section whose text
// reads like "Found 6 more prices"
func listInFoundPricesSection(root *goquery.Selection) (*goquery.Selection, bool) {
	var found *goquery.Selection
	root.Find("section.grid").EachWithBreak(func(_ int, section *goquery.Selection) bool {
		t := section.Text()
		if !strings.Contains(t, "Found") || !strings.Contains(t, "more prices") {
			return true
		}
		if list, ok := offerList(section); ok {
			found = list
			return false
		}
		return true
	})
	return found, found != nil
}

// firstOfferList takes the first list anywhere on the page with the offer-list classes
func firstOfferList(root *goquery.Selection) (*goquery.Selection, bool) {
	return offerList(root)
}

func offerList(scope *goquery.Selection) (*goquery.Selection, bool) {
	list := withClassMatching(scope.Find("ul"), offerListClass).First()
	return list, list.Length() > 0
}
