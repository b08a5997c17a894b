package usecase

import (
	"github.com/pricelens/backend/internal/domain"
)

// NewOriginalOffer synthesizes the offer for the listing the user started from
func NewOriginalOffer(ref *domain.ProductRef, listing *domain.CanonicalListing, priceText string) domain.Offer {
	offer := domain.NewOffer()
	offer.Seller = ref.SiteType.DisplayName()
	offer.Link = ref.RawURL
	offer.IsOriginal = true

	if listing != nil {
		if listing.Name != "" {
			offer.Title = listing.Name
		}
		offer.PriceValue = listing.Price
	}
	if priceText != "" {
		offer.PriceText = priceText
	}
	return offer
}

// SelectBest returns the cheapest offer. The original is considered first so
// it wins ties; offers without a price value are skipped. It returns nil when
// nothing has a price.
func SelectBest(original *domain.Offer, offers []domain.Offer) *domain.Offer {
	var best *domain.Offer

	consider := func(o *domain.Offer) {
		if o == nil || o.PriceValue == nil {
			return
		}
		if best == nil || *o.PriceValue < *best.PriceValue {
			best = o
		}
	}

	consider(original)
	for i := range offers {
		consider(&offers[i])
	}

	if best == nil {
		return nil
	}
	chosen := *best
	return &chosen
}
