package domain

// ErrorKind classifies the error carried by a ComparisonResult
type ErrorKind string

const (
	ErrorKindNone     ErrorKind = ""
	ErrorKindInput    ErrorKind = "input"
	ErrorKindUpstream ErrorKind = "upstream"
	ErrorKindScrape   ErrorKind = "scrape"
)

// ComparisonResult is everything the presentation layer needs to render one lookup
type ComparisonResult struct {
	Error            string            `json:"error,omitempty"`
	ErrorKind        ErrorKind         `json:"errorKind,omitempty"`
	Notice           string            `json:"notice,omitempty"`
	Product          *ProductRef       `json:"product,omitempty"`
	Listing          *CanonicalListing `json:"listing,omitempty"`
	ListingPriceText string            `json:"listingPrice,omitempty"`
	Offers           []Offer           `json:"offers"`
	BestOffer        *Offer            `json:"bestOffer,omitempty"`
	OriginalInputURL string            `json:"originalInputUrl"`
}

// NewComparisonResult returns an empty result for the given input URL
func NewComparisonResult(inputURL string) *ComparisonResult {
	return &ComparisonResult{
		Offers:           []Offer{},
		OriginalInputURL: inputURL,
	}
}

// Fail records an error of the given kind
func (r *ComparisonResult) Fail(kind ErrorKind, message string) {
	r.ErrorKind = kind
	r.Error = message
}
