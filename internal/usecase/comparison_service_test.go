package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricelens/backend/internal/domain"
	"github.com/pricelens/backend/internal/extract"
	"github.com/pricelens/backend/internal/infrastructure/buyhatke"
)

// MockCatalogClient is a mock implementation of domain.CatalogClient
type MockCatalogClient struct {
	listing     *domain.CanonicalListing
	lookupError error
	called      bool
	gotID       string
	gotSite     domain.SiteType
}

func (m *MockCatalogClient) LookupProduct(ctx context.Context, productID string, site domain.SiteType) (*domain.CanonicalListing, error) {
	m.called = true
	m.gotID = productID
	m.gotSite = site
	if m.lookupError != nil {
		return nil, m.lookupError
	}
	return m.listing, nil
}

// MockOfferExtractor is a mock implementation of domain.OfferExtractor
type MockOfferExtractor struct {
	outcome domain.ExtractionOutcome
	called  bool
	gotURL  string
}

func (m *MockOfferExtractor) ExtractOffers(ctx context.Context, trackerURL string) domain.ExtractionOutcome {
	m.called = true
	m.gotURL = trackerURL
	return m.outcome
}

const (
	amazonURL  = "https://www.amazon.in/Acme-Phone/dp/B0CHX1W1XY"
	trackerURL = "https://buyhatke.com/amazon-acme-phone-price-in-india-63-98765"
)

func scrapedOffer(seller, price string) domain.Offer {
	o := domain.NewOffer()
	o.Seller = seller
	o.PriceText = price
	return o
}

func TestCompare_Success(t *testing.T) {
	catalog := &MockCatalogClient{listing: &domain.CanonicalListing{
		Name:       "Acme Phone",
		Price:      floatPtr(999),
		TrackerURL: trackerURL,
		Thumbnails: []string{"a.jpg"},
	}}
	extractor := &MockOfferExtractor{outcome: domain.FoundOffers([]domain.Offer{
		scrapedOffer("Croma", "₹1,200"),
		scrapedOffer("Flipkart", "₹950"),
		scrapedOffer("JioMart", "unknown"),
	})}
	service := NewComparisonService(catalog, extractor)

	result := service.Compare(context.Background(), amazonURL)

	assert.Empty(t, result.Error)
	assert.Equal(t, domain.ErrorKindNone, result.ErrorKind)
	assert.Equal(t, amazonURL, result.OriginalInputURL)
	assert.Equal(t, "B0CHX1W1XY", catalog.gotID)
	assert.Equal(t, domain.SiteAmazon, catalog.gotSite)
	assert.Equal(t, trackerURL, extractor.gotURL)

	require.NotNil(t, result.Product)
	assert.Equal(t, "www.amazon.in", result.Product.Domain)
	require.NotNil(t, result.Listing)
	assert.Equal(t, "₹999.00", result.ListingPriceText)

	require.Len(t, result.Offers, 3)
	assert.Equal(t, 1200.0, *result.Offers[0].PriceValue)
	assert.Equal(t, 950.0, *result.Offers[1].PriceValue)
	assert.Nil(t, result.Offers[2].PriceValue, "unpriced offers are still returned")
	for _, o := range result.Offers {
		assert.False(t, o.IsOriginal)
	}

	require.NotNil(t, result.BestOffer)
	assert.Equal(t, "Flipkart", result.BestOffer.Seller)
	assert.Equal(t, 950.0, *result.BestOffer.PriceValue)
}

func TestCompare_OriginalIsBest(t *testing.T) {
	catalog := &MockCatalogClient{listing: &domain.CanonicalListing{Name: "Acme Phone", Price: floatPtr(900), TrackerURL: trackerURL}}
	extractor := &MockOfferExtractor{outcome: domain.FoundOffers([]domain.Offer{
		scrapedOffer("Croma", "₹1,200"),
		scrapedOffer("Flipkart", "₹950"),
	})}

	result := NewComparisonService(catalog, extractor).Compare(context.Background(), amazonURL)

	require.NotNil(t, result.BestOffer)
	assert.True(t, result.BestOffer.IsOriginal)
	assert.Equal(t, "Amazon", result.BestOffer.Seller)
	assert.Equal(t, "₹900.00", result.BestOffer.PriceText)
	assert.Equal(t, amazonURL, result.BestOffer.Link)
}

func TestCompare_InputErrors(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantMessage string
	}{
		{"empty", "", "Please enter a product URL."},
		{"unsupported", "https://www.croma.com/x", "URL does not appear to be a valid Amazon or Flipkart link."},
		{"no id", "https://www.flipkart.com/acme/p/itm1", "Could not extract Product ID (PID) from the Flipkart URL. Please check the link."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &MockCatalogClient{}
			extractor := &MockOfferExtractor{}

			result := NewComparisonService(catalog, extractor).Compare(context.Background(), tt.url)

			assert.Equal(t, domain.ErrorKindInput, result.ErrorKind)
			assert.Equal(t, tt.wantMessage, result.Error)
			assert.Equal(t, tt.url, result.OriginalInputURL)
			assert.NotNil(t, result.Offers)
			assert.False(t, catalog.called)
			assert.False(t, extractor.called)
		})
	}
}

func TestCompare_CatalogFaults(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			name:        "timeout",
			err:         &domain.LookupError{Reason: domain.FaultTimeout, Err: context.DeadlineExceeded},
			wantMessage: "Price tracking service is unreachable. Please try again later.",
		},
		{
			name:        "transport",
			err:         &domain.LookupError{Reason: domain.FaultTransport, Err: errors.New("connection refused")},
			wantMessage: "Price tracking service is unreachable. Please try again later.",
		},
		{
			name:        "bad status",
			err:         &domain.LookupError{Reason: domain.FaultBadStatus, StatusCode: 500, Err: errors.New("status 500")},
			wantMessage: "Failed to fetch product details for B0CHX1W1XY. Product might not be tracked or data is incomplete.",
		},
		{
			name:        "unexpected shape",
			err:         &domain.LookupError{Reason: domain.FaultUnexpectedShape, Err: errors.New("data is not an object")},
			wantMessage: "Failed to fetch product details for B0CHX1W1XY. Product might not be tracked or data is incomplete.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := &MockOfferExtractor{}
			service := NewComparisonService(&MockCatalogClient{lookupError: tt.err}, extractor)

			result := service.Compare(context.Background(), amazonURL)

			assert.Equal(t, domain.ErrorKindUpstream, result.ErrorKind)
			assert.Equal(t, tt.wantMessage, result.Error)
			assert.Nil(t, result.Listing)
			assert.Nil(t, result.BestOffer)
			assert.NotNil(t, result.Product)
			assert.False(t, extractor.called)
		})
	}
}

func TestCompare_ListingWithoutDetails(t *testing.T) {
	extractor := &MockOfferExtractor{}
	service := NewComparisonService(&MockCatalogClient{listing: &domain.CanonicalListing{Thumbnails: []string{"a.jpg"}}}, extractor)

	result := service.Compare(context.Background(), amazonURL)

	assert.Equal(t, domain.ErrorKindUpstream, result.ErrorKind)
	assert.Contains(t, result.Error, "B0CHX1W1XY")
	require.NotNil(t, result.Listing)
	assert.Equal(t, []string{"a.jpg"}, result.Listing.Thumbnails)
	assert.Nil(t, result.BestOffer)
	assert.False(t, extractor.called)
}

func TestCompare_TrimsInputURL(t *testing.T) {
	catalog := &MockCatalogClient{listing: &domain.CanonicalListing{Name: "Acme Phone", Price: floatPtr(499)}}

	result := NewComparisonService(catalog, &MockOfferExtractor{}).Compare(context.Background(), "  "+amazonURL+"\n")

	assert.Equal(t, amazonURL, result.OriginalInputURL)
	assert.Equal(t, "B0CHX1W1XY", catalog.gotID)
}

func TestCompare_NoTrackerURL(t *testing.T) {
	catalog := &MockCatalogClient{listing: &domain.CanonicalListing{Name: "Acme Phone", Price: floatPtr(499)}}
	extractor := &MockOfferExtractor{}

	result := NewComparisonService(catalog, extractor).Compare(context.Background(), amazonURL)

	assert.Equal(t, "Could not construct tracker URL. Cannot fetch alternatives.", result.Error)
	assert.False(t, extractor.called, "no extraction without a tracker URL")
	require.NotNil(t, result.Listing)
	assert.Equal(t, "Acme Phone", result.Listing.Name)
	assert.Empty(t, result.Offers)
	require.NotNil(t, result.BestOffer)
	assert.True(t, result.BestOffer.IsOriginal)
}

func TestCompare_ScrapeError(t *testing.T) {
	catalog := &MockCatalogClient{listing: &domain.CanonicalListing{Name: "Acme Phone", TrackerURL: trackerURL}}
	extractor := &MockOfferExtractor{outcome: domain.FailedExtraction(errors.New("boom"))}

	result := NewComparisonService(catalog, extractor).Compare(context.Background(), amazonURL)

	assert.Equal(t, domain.ErrorKindScrape, result.ErrorKind)
	assert.Equal(t, "Could not fetch alternative prices (scraping error).", result.Error)
	require.NotNil(t, result.Listing)
	assert.NotNil(t, result.Offers)
	assert.Empty(t, result.Offers)
	assert.Nil(t, result.BestOffer, "listing has no price")
}

func TestCompare_ScrapeEmpty(t *testing.T) {
	catalog := &MockCatalogClient{listing: &domain.CanonicalListing{Name: "Acme Phone", Price: floatPtr(999), TrackerURL: trackerURL}}
	extractor := &MockOfferExtractor{outcome: domain.EmptyExtraction()}

	result := NewComparisonService(catalog, extractor).Compare(context.Background(), amazonURL)

	assert.Empty(t, result.Error)
	assert.Equal(t, "No alternative prices found on the tracker page.", result.Notice)
	assert.Empty(t, result.Offers)
	require.NotNil(t, result.BestOffer)
	assert.True(t, result.BestOffer.IsOriginal)
}

// End to end against a fake tracker: the catalog answers but the tracker page times out.
func TestCompare_TrackerTimeoutKeepsListing(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/productData") {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"name":"Acme Phone X++","cur_price":12999,"site_pos":63,"internalPid":"98765"}}`))
			return
		}
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := buyhatke.NewClient(buyhatke.ClientConfig{
		APIURL:  server.URL + "/api/productData",
		SiteURL: server.URL,
		Timeout: 100 * time.Millisecond,
	})
	service := NewComparisonService(client, NewAlternativeOfferService(client, extract.NewExtractor(extract.DefaultTables())))

	result := service.Compare(context.Background(), amazonURL)

	assert.Equal(t, domain.ErrorKindScrape, result.ErrorKind)
	assert.Equal(t, "Could not fetch alternative prices (scraping error).", result.Error)
	require.NotNil(t, result.Listing)
	assert.Equal(t, "Acme Phone X++", result.Listing.Name)
	assert.Equal(t, server.URL+"/amazon-acme-phone-x-price-in-india-63-98765", result.Listing.TrackerURL)
	assert.Equal(t, "₹12,999.00", result.ListingPriceText)
	assert.NotNil(t, result.Offers)
	assert.Empty(t, result.Offers)
}

func TestCompare_EndToEndOffers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/productData" {
			assert.Equal(t, "63", r.URL.Query().Get("pos"))
			assert.Equal(t, "B0CHX1W1XY", r.URL.Query().Get("pid"))
			_, _ = w.Write([]byte(`{"data":{"name":"Acme Phone","cur_price":999,"site_pos":63,"internalPid":"98765"}}`))
			return
		}
		_, _ = w.Write([]byte(offersPage))
	}))
	defer server.Close()

	client := buyhatke.NewClient(buyhatke.ClientConfig{APIURL: server.URL + "/api/productData", SiteURL: server.URL})
	service := NewComparisonService(client, NewAlternativeOfferService(client, extract.NewExtractor(extract.DefaultTables())))

	result := service.Compare(context.Background(), amazonURL)

	require.Empty(t, result.Error)
	require.Len(t, result.Offers, 1)
	assert.Equal(t, server.URL+"/go/croma", result.Offers[0].Link)
	require.NotNil(t, result.BestOffer)
	assert.Equal(t, "Croma", result.BestOffer.Seller)
	assert.Equal(t, 950.0, *result.BestOffer.PriceValue)
}
