package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pricelens/backend/internal/domain"
)

// User-facing messages
const (
	msgNoTrackerURL      = "Could not construct tracker URL. Cannot fetch alternatives."
	msgScrapeFailed      = "Could not fetch alternative prices (scraping error)."
	msgUnreachable       = "Price tracking service is unreachable. Please try again later."
	msgNoAlternatives    = "No alternative prices found on the tracker page."
	msgDetailsIncomplete = "Failed to fetch product details for %s. Product might not be tracked or data is incomplete."
)

// ComparisonService runs one end-to-end price comparison:
// identifier -> catalog lookup -> tracker scrape -> price normalization -> best offer
type ComparisonService struct {
	catalog   domain.CatalogClient
	extractor domain.OfferExtractor
}

// NewComparisonService creates a new comparison service with dependencies
func NewComparisonService(catalog domain.CatalogClient, extractor domain.OfferExtractor) *ComparisonService {
	return &ComparisonService{
		catalog:   catalog,
		extractor: extractor,
	}
}

// Compare looks up productURL and its alternatives. It never returns an
// error value: every failure is recorded on the result, alongside whatever
// data was gathered before it.
func (s *ComparisonService) Compare(ctx context.Context, productURL string) *domain.ComparisonResult {
	productURL = strings.TrimSpace(productURL)
	result := domain.NewComparisonResult(productURL)

	ref, err := ParseProductRef(productURL)
	if ref != nil {
		result.Product = ref
	}
	if err != nil {
		var inputErr *domain.InputError
		if errors.As(err, &inputErr) {
			zap.L().Info("compare: rejected input", zap.String("reason", string(inputErr.Reason)), zap.String("url", productURL))
		}
		result.Fail(domain.ErrorKindInput, err.Error())
		return result
	}

	logger := zap.L().With(zap.String("site", string(ref.SiteType)), zap.String("pid", ref.ProductID))

	listing, err := s.catalog.LookupProduct(ctx, ref.ProductID, ref.SiteType)
	if err != nil {
		var lookupErr *domain.LookupError
		if errors.As(err, &lookupErr) && lookupErr.Reason.Unreachable() {
			logger.Warn("compare: catalog unreachable", zap.Error(err))
			result.Fail(domain.ErrorKindUpstream, msgUnreachable)
			return result
		}
		logger.Warn("compare: catalog lookup failed", zap.Error(err))
		result.Fail(domain.ErrorKindUpstream, fmt.Sprintf(msgDetailsIncomplete, ref.ProductID))
		return result
	}
	if !listing.HasDetails() {
		logger.Warn("compare: catalog returned no name or price")
		result.Listing = listing
		result.Fail(domain.ErrorKindUpstream, fmt.Sprintf(msgDetailsIncomplete, ref.ProductID))
		return result
	}

	result.Listing = listing
	if listing.Price != nil {
		result.ListingPriceText = FormatRupees(*listing.Price)
	}
	original := NewOriginalOffer(ref, listing, result.ListingPriceText)

	if listing.TrackerURL == "" {
		result.Fail(domain.ErrorKindScrape, msgNoTrackerURL)
		result.BestOffer = SelectBest(&original, nil)
		return result
	}

	outcome := s.extractor.ExtractOffers(ctx, listing.TrackerURL)
	switch outcome.Status {
	case domain.ExtractionError:
		logger.Warn("compare: scraping alternatives failed", zap.Error(outcome.Err))
		result.Fail(domain.ErrorKindScrape, msgScrapeFailed)
	case domain.ExtractionEmpty:
		result.Notice = msgNoAlternatives
	case domain.ExtractionOffers:
		result.Offers = normalizePrices(outcome.Offers)
		if len(result.Offers) == 0 {
			result.Notice = msgNoAlternatives
		}
	}

	result.BestOffer = SelectBest(&original, result.Offers)
	if result.BestOffer != nil {
		logger.Info("compare: best offer selected",
			zap.String("seller", result.BestOffer.Seller),
			zap.Float64("price", *result.BestOffer.PriceValue),
			zap.Int("offers", len(result.Offers)),
		)
	}
	return result
}

// normalizePrices fills PriceValue from PriceText on a copy of offers
func normalizePrices(offers []domain.Offer) []domain.Offer {
	out := make([]domain.Offer, len(offers))
	for i, o := range offers {
		o.PriceValue = ParsePrice(o.PriceText)
		out[i] = o
	}
	return out
}
