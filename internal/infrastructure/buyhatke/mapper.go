package buyhatke

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"github.com/pricelens/backend/internal/domain"
)

// nonSlugRegex matches runs of characters that are neither word characters nor hyphens
var nonSlugRegex = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)

// MapToListing converts a product data API body into a CanonicalListing.
// Fields are read permissively: cur_price, site_pos and internalPid may arrive
// as JSON numbers or strings.
func MapToListing(body []byte, site domain.SiteType, siteURL string) (*domain.CanonicalListing, error) {
	if !gjson.ValidBytes(body) {
		return nil, &domain.LookupError{
			Reason: domain.FaultMalformedBody,
			Err:    eris.New("buyhatke: response is not valid JSON"),
		}
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsObject() {
		return nil, &domain.LookupError{
			Reason: domain.FaultUnexpectedShape,
			Err:    eris.New("buyhatke: response has no data object"),
		}
	}

	listing := &domain.CanonicalListing{
		Name:       stringField(data.Get("name")),
		Price:      priceField(data.Get("cur_price")),
		Thumbnails: thumbnails(data),
	}

	sitePos := stringField(data.Get("site_pos"))
	internalPid := stringField(data.Get("internalPid"))
	if listing.Name == "" || sitePos == "" || internalPid == "" {
		return listing, nil
	}

	trackerURL := BuildTrackerURL(siteURL, site, listing.Name, sitePos, internalPid)
	if siteURL != "" && strings.HasPrefix(trackerURL, strings.TrimRight(siteURL, "/")+"/") {
		listing.TrackerURL = trackerURL
	}
	return listing, nil
}

// BuildTrackerURL formats the human-readable tracker page URL for a product
func BuildTrackerURL(siteURL string, site domain.SiteType, name, sitePos, internalPid string) string {
	return fmt.Sprintf("%s/%s-%s-price-in-india-%s-%s",
		strings.TrimRight(siteURL, "/"), site, Slugify(name, internalPid), sitePos, internalPid)
}

// Slugify lower-cases name, collapses every run of non-word characters to a
// single hyphen and trims hyphens from both ends. An empty result becomes
// "product-<internalPid>".
func Slugify(name, internalPid string) string {
	slug := nonSlugRegex.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "product-" + internalPid
	}
	return slug
}

// stringField returns a scalar JSON value as a trimmed string, or "" for null/missing/objects
func stringField(r gjson.Result) string {
	switch r.Type {
	case gjson.String, gjson.Number:
		return strings.TrimSpace(r.String())
	}
	return ""
}

// priceField reads cur_price; invalid, negative or non-finite values are absent
func priceField(r gjson.Result) *float64 {
	var value float64
	switch r.Type {
	case gjson.Number:
		value = r.Float()
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(r.String()), ",", ""), 64)
		if err != nil {
			return nil
		}
		value = parsed
	default:
		return nil
	}

	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return nil
	}
	return &value
}

// thumbnails prefers thumbnailImages and falls back to the single image field
func thumbnails(data gjson.Result) []string {
	images := []string{}
	for _, img := range data.Get("thumbnailImages").Array() {
		if s := stringField(img); s != "" {
			images = append(images, s)
		}
	}
	if len(images) == 0 {
		if s := stringField(data.Get("image")); s != "" {
			images = append(images, s)
		}
	}
	return images
}
