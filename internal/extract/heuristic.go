package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heuristic tries to pull one value out of a selection. ok is false when the
// pattern it looks for is absent; a heuristic never fails any other way.
type Heuristic[T any] func(sel *goquery.Selection) (value T, ok bool)

// FirstOf evaluates heuristics in order and returns the first hit
func FirstOf[T any](sel *goquery.Selection, heuristics ...Heuristic[T]) (T, bool) {
	for _, h := range heuristics {
		if v, ok := h(sel); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// withClassMatching keeps elements whose whole class attribute matches re
func withClassMatching(sel *goquery.Selection, re *regexp.Regexp) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && re.MatchString(normalizeSpace(class))
	})
}

// withClasses keeps elements carrying every one of the given classes
func withClasses(sel *goquery.Selection, classes ...string) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		have := strings.Fields(class)
		for _, want := range classes {
			found := false
			for _, c := range have {
				if c == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	})
}

// withNonEmptyAttr keeps elements whose attribute is present and not blank
func withNonEmptyAttr(sel *goquery.Selection, attr string) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr(attr)
		return ok && strings.TrimSpace(v) != ""
	})
}

// text returns the visible text of sel with whitespace collapsed
func text(sel *goquery.Selection) string {
	return normalizeSpace(sel.Text())
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
