package domain

// Offer defaults used when a field could not be resolved from the page
const (
	DefaultSeller    = "unknown"
	DefaultTitle     = "unknown"
	DefaultPriceText = "unknown"
	DefaultLink      = "#"
)

// Offer is one seller's price record, either scraped or synthesized from the original listing
type Offer struct {
	Seller     string   `json:"seller"`
	Title      string   `json:"title"`
	PriceText  string   `json:"price"`
	PriceValue *float64 `json:"priceValue,omitempty"`
	Link       string   `json:"link"`
	IsOriginal bool     `json:"isOriginal"`
}

// NewOffer returns an Offer with every field set to its default
func NewOffer() Offer {
	return Offer{
		Seller:    DefaultSeller,
		Title:     DefaultTitle,
		PriceText: DefaultPriceText,
		Link:      DefaultLink,
	}
}

// HasSellerOrPrice reports whether the seller or the price was resolved
func (o Offer) HasSellerOrPrice() bool {
	return o.Seller != DefaultSeller || o.PriceText != DefaultPriceText
}

// ExtractionStatus is the tag of an ExtractionOutcome
type ExtractionStatus int

const (
	// ExtractionError means the tracker page could not be fetched or parsed
	ExtractionError ExtractionStatus = iota
	// ExtractionEmpty means the page loaded but no offer list or items were present
	ExtractionEmpty
	// ExtractionOffers means the offer list was found and processed
	ExtractionOffers
)

func (s ExtractionStatus) String() string {
	switch s {
	case ExtractionError:
		return "error"
	case ExtractionEmpty:
		return "empty"
	case ExtractionOffers:
		return "offers"
	}
	return "unknown"
}

// ExtractionOutcome is the three-way result of scraping a tracker page.
// Offers is only meaningful for ExtractionOffers and may be empty after filtering.
type ExtractionOutcome struct {
	Status ExtractionStatus
	Offers []Offer
	Err    error
}

// FailedExtraction builds an ExtractionError outcome
func FailedExtraction(err error) ExtractionOutcome {
	return ExtractionOutcome{Status: ExtractionError, Err: err}
}

// EmptyExtraction builds an ExtractionEmpty outcome
func EmptyExtraction() ExtractionOutcome {
	return ExtractionOutcome{Status: ExtractionEmpty}
}

// FoundOffers builds an ExtractionOffers outcome
func FoundOffers(offers []Offer) ExtractionOutcome {
	if offers == nil {
		offers = []Offer{}
	}
	return ExtractionOutcome{Status: ExtractionOffers, Offers: offers}
}
