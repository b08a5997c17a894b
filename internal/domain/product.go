package domain

import "strings"

// SiteType identifies which storefront a product URL belongs to
type SiteType string

const (
	SiteAmazon   SiteType = "amazon"
	SiteFlipkart SiteType = "flipkart"
)

// DisplayName returns the capitalized site name ("Amazon", "Flipkart")
func (s SiteType) DisplayName() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// IDKind returns the human name of the site's product identifier
func (s SiteType) IDKind() string {
	if s == SiteAmazon {
		return "ASIN"
	}
	return "PID"
}

// ProductRef is the parsed form of a user-supplied product URL
type ProductRef struct {
	SiteType  SiteType `json:"siteType"`
	RawURL    string   `json:"rawUrl"`
	Domain    string   `json:"domain"`
	ProductID string   `json:"productId,omitempty"` // empty when not extractable
}

// CanonicalListing is the normalized product record returned by the catalog API.
// Every field may be missing; consumers must tolerate partial records.
type CanonicalListing struct {
	Name       string   `json:"name,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	TrackerURL string   `json:"trackerUrl,omitempty"`
	Thumbnails []string `json:"thumbnails"`
}

// HasDetails reports whether the listing carries a name or a price
func (l *CanonicalListing) HasDetails() bool {
	return l != nil && (l.Name != "" || l.Price != nil)
}
