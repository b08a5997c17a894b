package domain

import (
	"context"
	"io"
)

// CatalogClient looks up canonical product data by site-specific identifier
type CatalogClient interface {
	LookupProduct(ctx context.Context, productID string, site SiteType) (*CanonicalListing, error)
}

// PageFetcher downloads a tracker page. The caller closes the returned body.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (io.ReadCloser, error)
}

// OfferExtractor turns a tracker page URL into an extraction outcome
type OfferExtractor interface {
	ExtractOffers(ctx context.Context, trackerURL string) ExtractionOutcome
}
