package usecase

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pricelens/backend/internal/domain"
)

// Package-level compiled regex patterns for identifier extraction
var (
	amazonIDRegex   = regexp.MustCompile(`/(?:dp|gp/product)/([A-Z0-9]{10})`)
	flipkartIDRegex = regexp.MustCompile(`pid=([A-Z0-9]+)`)
)

// ExtractAmazonID returns the ASIN from a /dp/ or /gp/product/ path, or "" if there is none
func ExtractAmazonID(rawURL string) string {
	if m := amazonIDRegex.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// ExtractFlipkartID returns the pid query parameter. When the URL does not
// parse or has no pid parameter, the raw string is scanned for pid=.
func ExtractFlipkartID(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if pid := u.Query().Get("pid"); pid != "" {
			return pid
		}
	}
	if m := flipkartIDRegex.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// ParseProductRef detects the storefront of a product URL and extracts its
// identifier. Every failure is an *domain.InputError with a message fit for the user.
func ParseProductRef(rawURL string) (*domain.ProductRef, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, &domain.InputError{
			Reason:  domain.InputEmpty,
			Message: "Please enter a product URL.",
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &domain.InputError{
			Reason:  domain.InputUnparseable,
			Message: "Could not process the provided URL. Please ensure it's a valid Amazon or Flipkart product link.",
		}
	}

	host := strings.ToLower(u.Host)
	ref := &domain.ProductRef{RawURL: rawURL, Domain: host}

	switch {
	case strings.Contains(host, "amazon."):
		ref.SiteType = domain.SiteAmazon
		ref.ProductID = ExtractAmazonID(rawURL)
	case strings.Contains(host, "flipkart.com"):
		ref.SiteType = domain.SiteFlipkart
		ref.ProductID = ExtractFlipkartID(rawURL)
	default:
		return nil, &domain.InputError{
			Reason:  domain.InputUnsupported,
			Message: "URL does not appear to be a valid Amazon or Flipkart link.",
		}
	}

	if ref.ProductID == "" {
		return ref, &domain.InputError{
			Reason: domain.InputNoID,
			Message: fmt.Sprintf("Could not extract Product ID (%s) from the %s URL. Please check the link.",
				ref.SiteType.IDKind(), ref.SiteType.DisplayName()),
		}
	}

	return ref, nil
}
