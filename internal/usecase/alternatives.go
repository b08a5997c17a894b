package usecase

import (
	"context"
	"net/url"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pricelens/backend/internal/domain"
	"github.com/pricelens/backend/internal/extract"
)

// AlternativeOfferService downloads a tracker page and extracts the competing offers on it
type AlternativeOfferService struct {
	fetcher   domain.PageFetcher
	extractor *extract.Extractor
}

// NewAlternativeOfferService creates a new alternative offer service
func NewAlternativeOfferService(fetcher domain.PageFetcher, extractor *extract.Extractor) *AlternativeOfferService {
	return &AlternativeOfferService{
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// ExtractOffers fetches trackerURL and classifies what was found on it.
// Transport failures and invalid URLs are reported as ExtractionError.
func (s *AlternativeOfferService) ExtractOffers(ctx context.Context, trackerURL string) domain.ExtractionOutcome {
	u, err := url.Parse(trackerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		zap.L().Error("alternatives: invalid tracker url", zap.String("url", trackerURL))
		return domain.FailedExtraction(eris.Errorf("invalid tracker url %q", trackerURL))
	}

	body, err := s.fetcher.FetchPage(ctx, trackerURL)
	if err != nil {
		zap.L().Error("alternatives: fetching tracker page failed", zap.String("url", trackerURL), zap.Error(err))
		return domain.FailedExtraction(err)
	}
	defer body.Close()

	outcome := s.extractor.Extract(body, trackerURL)
	zap.L().Info("alternatives: extraction finished",
		zap.String("url", trackerURL),
		zap.Stringer("status", outcome.Status),
		zap.Int("offers", len(outcome.Offers)),
	)
	return outcome
}
