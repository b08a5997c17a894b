package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	iconContainerClass = regexp.MustCompile(`\bflex\b.*\bitems-center\b`)
	iconClass          = regexp.MustCompile(`\brounded-full\b`)

	// iconFileRegex captures the store name from an icon path such as
	// /stores/reliancedigital1.png or /img/croma_m.webp
	iconFileRegex = regexp.MustCompile(`(?i)/([^/]+?)(?:1|_m)?\.(?:png|jpe?g|webp|svg)`)

	separatorReplacer = strings.NewReplacer("-", " ", "_", " ")
)

// storeIcons returns the round store icons inside the item's icon row
func storeIcons(item *goquery.Selection) *goquery.Selection {
	row := withClassMatching(item.Find("div"), iconContainerClass).First()
	return withClassMatching(row.Find("img"), iconClass)
}

// sellerFromIconAlt reads the store name from the icon's alt text
func sellerFromIconAlt(item *goquery.Selection) (string, bool) {
	icon := withNonEmptyAttr(storeIcons(item), "alt").First()
	if icon.Length() == 0 {
		return "", false
	}
	alt, _ := icon.Attr("alt")
	return strings.TrimSpace(alt), true
}

// sellerFromIconSource derives the store name from the icon file name
func (e *Extractor) sellerFromIconSource(item *goquery.Selection) (string, bool) {
	icon := withNonEmptyAttr(storeIcons(item), "src").First()
	if icon.Length() == 0 {
		return "", false
	}
	src, _ := icon.Attr("src")
	return e.sellerFromIconPath(src)
}

func (e *Extractor) sellerFromIconPath(src string) (string, bool) {
	m := iconFileRegex.FindStringSubmatch(src)
	if m == nil {
		return "", false
	}

	name := normalizeSpace(separatorReplacer.Replace(m[1]))
	if name == "" {
		return "", false
	}
	name = cases.Title(language.Und).String(name)

	if corrected, ok := e.tables.SellerCorrections[name]; ok {
		return corrected, true
	}
	return name, true
}

// sellerFromLink maps the purchase link's destination host to a known retailer.
// Tracking redirects are unwrapped first.
func (e *Extractor) sellerFromLink(link string) (string, bool) {
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return "", false
	}

	target, err := url.Parse(link)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(target.Host)
	for _, w := range e.tables.RedirectWrappers {
		if !strings.Contains(host, w.HostFragment) {
			continue
		}
		if dest := target.Query().Get(w.Param); dest != "" {
			if parsed, err := url.Parse(dest); err == nil {
				target = parsed
			}
		}
		break
	}

	host = strings.ToLower(target.Host)
	if host == "" {
		return "", false
	}
	for _, d := range e.tables.RetailerDomains {
		if strings.Contains(host, d.HostFragment) {
			return d.Seller, true
		}
	}
	return "", false
}
