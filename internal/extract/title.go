package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// minDesktopTitleLen is the length a desktop title variant must exceed to be preferred
const minDesktopTitleLen = 5

var titleHeuristics = []Heuristic[string]{
	titleFromAttribute,
	titleFromResponsiveSpans,
	titleFromParagraph,
}

// titleFromAttribute reads the title attribute of the first titled paragraph
func titleFromAttribute(item *goquery.Selection) (string, bool) {
	p := withNonEmptyAttr(item.Find("p[title]"), "title").First()
	if p.Length() == 0 {
		return "", false
	}
	title, _ := p.Attr("title")
	return html.UnescapeString(strings.TrimSpace(title)), true
}

// titleFromResponsiveSpans picks between the desktop and mobile variants of the title.
// A desktop variant over minDesktopTitleLen runes wins even when the mobile one is longer.
func titleFromResponsiveSpans(item *goquery.Selection) (string, bool) {
	p := item.Find("p.capitalize").First()
	if p.Length() == 0 {
		return "", false
	}
	spans := p.Find("span")
	desktop := text(withClasses(spans, "hidden", "md:inline").First())
	mobile := text(withClasses(spans, "md:hidden").First())

	switch {
	case utf8.RuneCountInString(desktop) > minDesktopTitleLen:
		return html.UnescapeString(desktop), true
	case mobile != "":
		return html.UnescapeString(mobile), true
	case desktop != "":
		return html.UnescapeString(desktop), true
	}
	return "", false
}

// titleFromParagraph uses the whole capitalized paragraph
func titleFromParagraph(item *goquery.Selection) (string, bool) {
	t := text(item.Find("p.capitalize").First())
	if t == "" {
		return "", false
	}
	return html.UnescapeString(t), true
}
