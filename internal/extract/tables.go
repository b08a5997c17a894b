package extract

// RetailerDomain maps a host fragment to the seller shown for it
type RetailerDomain struct {
	HostFragment string
	Seller       string
}

// RedirectWrapper describes a tracking host that wraps the real destination in a query parameter
type RedirectWrapper struct {
	HostFragment string
	Param        string
}

// Tables is the static lookup data used by the seller heuristics.
// It is read-only once handed to an Extractor.
type Tables struct {
	// SellerCorrections maps a title-cased name derived from an icon file name to its proper spelling
	SellerCorrections map[string]string
	// RetailerDomains is checked in order; first fragment contained in the host wins
	RetailerDomains []RetailerDomain
	RedirectWrappers []RedirectWrapper
}

// DefaultTables returns the lookup data for the retailers the tracker lists
func DefaultTables() Tables {
	return Tables{
		SellerCorrections: map[string]string{
			"Vsales":          "Vijay Sales",
			"Flipkart":        "Flipkart",
			"Amazon":          "Amazon",
			"Jiomart":         "JioMart",
			"Reliancedigital": "Reliance Digital",
			"Tatacliq":        "Tata CLiQ",
			"Croma":           "Croma",
		},
		RetailerDomains: []RetailerDomain{
			{HostFragment: "amazon.in", Seller: "Amazon"},
			{HostFragment: "amazon.com", Seller: "Amazon"},
			{HostFragment: "flipkart.com", Seller: "Flipkart"},
			{HostFragment: "croma.com", Seller: "Croma"},
			{HostFragment: "jiomart.com", Seller: "JioMart"},
			{HostFragment: "vijaysales.com", Seller: "Vijay Sales"},
			{HostFragment: "reliancedigital.in", Seller: "Reliance Digital"},
			{HostFragment: "tatacliq.com", Seller: "Tata CLiQ"},
			{HostFragment: "shopclues.com", Seller: "ShopClues"},
			{HostFragment: "paytmmall.com", Seller: "Paytm Mall"},
		},
		RedirectWrappers: []RedirectWrapper{
			{HostFragment: "tracking.buyhatke.com", Param: "link"},
		},
	}
}
