// Package extract pulls competing offers out of a price tracker's HTML page.
//
// The page markup is third-party and drifts without notice, so every field is
// resolved by an ordered list of heuristics, most specific first. A field
// whose heuristics all miss keeps its default; nothing here fails because a
// selector stopped matching.
package extract

import (
	"errors"
	"io"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pricelens/backend/internal/domain"
)

var (
	// ErrNoOfferList means no list of offers was found on the page
	ErrNoOfferList = errors.New("offer list not found")

	// ErrNoOfferItems means the offer list was found but had no items
	ErrNoOfferItems = errors.New("offer list has no items")
)

// Extractor turns tracker page HTML into offers. It holds only read-only
// tables and is safe for concurrent use.
type Extractor struct {
	tables Tables
}

// NewExtractor creates an extractor using the given lookup tables
func NewExtractor(tables Tables) *Extractor {
	return &Extractor{tables: tables}
}

// Extract parses an HTML document and classifies the result. pageURL is used
// to resolve relative purchase links.
func (e *Extractor) Extract(r io.Reader, pageURL string) (outcome domain.ExtractionOutcome) {
	defer func() {
		if rec := recover(); rec != nil {
			zap.L().Error("extract: panic while parsing tracker page", zap.Any("panic", rec), zap.String("url", pageURL))
			outcome = domain.FailedExtraction(eris.Errorf("extract: panic while parsing: %v", rec))
		}
	}()

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.FailedExtraction(eris.Wrap(err, "extract: parse html"))
	}

	offers, err := e.ExtractDocument(doc, pageURL)
	switch {
	case errors.Is(err, ErrNoOfferList):
		zap.L().Warn("extract: offer list not found, page layout may have changed", zap.String("url", pageURL))
		return domain.EmptyExtraction()
	case errors.Is(err, ErrNoOfferItems):
		zap.L().Info("extract: offer list is empty", zap.String("url", pageURL))
		return domain.EmptyExtraction()
	case err != nil:
		return domain.FailedExtraction(err)
	}

	return domain.FoundOffers(offers)
}

// ExtractDocument extracts offers from an already parsed document
func (e *Extractor) ExtractDocument(doc *goquery.Document, pageURL string) ([]domain.Offer, error) {
	list, ok := FirstOf(doc.Selection, containerHeuristics...)
	if !ok {
		return nil, ErrNoOfferList
	}

	items := list.ChildrenFiltered("li")
	if items.Length() == 0 {
		return nil, ErrNoOfferItems
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	offers := make([]domain.Offer, 0, items.Length())
	items.Each(func(i int, item *goquery.Selection) {
		offer := e.extractOffer(item, base)
		if !offer.HasSellerOrPrice() {
			zap.L().Debug("extract: dropping item without seller or price", zap.Int("index", i))
			return
		}
		offers = append(offers, offer)
	})

	zap.L().Info("extract: processed offer list",
		zap.Int("items", items.Length()),
		zap.Int("offers", len(offers)),
	)
	return offers, nil
}

// extractOffer resolves each field of one list item
func (e *Extractor) extractOffer(item *goquery.Selection, base *url.URL) domain.Offer {
	offer := domain.NewOffer()

	if seller, ok := FirstOf[string](item, sellerFromIconAlt, e.sellerFromIconSource); ok {
		offer.Seller = seller
	}
	if title, ok := FirstOf(item, titleHeuristics...); ok {
		offer.Title = title
	}
	if price, ok := FirstOf(item, priceHeuristics...); ok {
		offer.PriceText = price
	}
	if href, ok := FirstOf(item, linkHeuristics...); ok {
		offer.Link = resolveLink(base, href)
	}

	// the link is only known once the other fields are resolved
	if offer.Seller == domain.DefaultSeller && offer.Link != domain.DefaultLink {
		if seller, ok := e.sellerFromLink(offer.Link); ok {
			offer.Seller = seller
		}
	}

	return offer
}
