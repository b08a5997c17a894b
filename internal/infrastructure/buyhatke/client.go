package buyhatke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pricelens/backend/internal/domain"
)

// DefaultUserAgent is sent on every outbound request unless overridden
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// sitePositions maps a storefront to the tracker's fixed site-position code
var sitePositions = map[domain.SiteType]int{
	domain.SiteAmazon:   63,
	domain.SiteFlipkart: 2,
}

// ClientConfig configures the tracker client
type ClientConfig struct {
	APIURL    string // product data endpoint
	SiteURL   string // tracker site root used to build page URLs
	UserAgent string
	Timeout   time.Duration
	RateLimit rate.Limit // requests per second across both endpoints
	Burst     int
}

// Client talks to the price tracker: its product data API and its HTML pages.
// Requests are never retried; a failure is reported to the caller immediately.
type Client struct {
	httpClient  *http.Client
	apiURL      string
	siteURL     string
	userAgent   string
	timeout     time.Duration
	rateLimiter *rate.Limiter
}

// NewClient creates a new tracker client
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiURL:      cfg.APIURL,
		siteURL:     cfg.SiteURL,
		userAgent:   userAgent,
		timeout:     timeout,
		rateLimiter: rate.NewLimiter(limit, burst),
	}
}

// doRequest executes a GET with the configured user agent. The limiter wait
// and the request share one deadline of c.timeout, detached from the
// caller's cancellation. The returned body releases the deadline on Close.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)

	if err := c.rateLimiter.Wait(ctx); err != nil {
		cancel()
		// Wait fails early when the next token lies past the deadline
		return nil, eris.Wrapf(context.DeadlineExceeded, "buyhatke: rate limiter: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		cancel()
		return nil, eris.Wrap(err, "buyhatke: create request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, eris.Wrap(err, "buyhatke: do request")
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

// LookupProduct queries the product data API and normalizes the response.
// A response lacking the fields needed for the tracker URL still yields a
// listing; only its TrackerURL is left empty.
func (c *Client) LookupProduct(ctx context.Context, productID string, site domain.SiteType) (*domain.CanonicalListing, error) {
	pos, ok := sitePositions[site]
	if !ok {
		return nil, &domain.InputError{
			Reason:  domain.InputUnsupported,
			Message: fmt.Sprintf("unsupported site type: %q", site),
		}
	}

	params := url.Values{}
	params.Set("pos", fmt.Sprintf("%d", pos))
	params.Set("pid", productID)
	reqURL := fmt.Sprintf("%s?%s", c.apiURL, params.Encode())

	log := zap.L().With(zap.String("site", string(site)), zap.String("pid", productID))
	log.Info("buyhatke: querying product data", zap.String("url", reqURL))

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		reason := classifyTransportError(err)
		log.Warn("buyhatke: product data request failed", zap.String("reason", string(reason)), zap.Error(err))
		return nil, &domain.LookupError{Reason: reason, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		reason := classifyTransportError(err)
		log.Warn("buyhatke: reading product data failed", zap.String("reason", string(reason)), zap.Error(err))
		return nil, &domain.LookupError{Reason: reason, Err: eris.Wrap(err, "buyhatke: read body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("buyhatke: product data API error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(body, 200)),
		)
		return nil, &domain.LookupError{
			Reason:     domain.FaultBadStatus,
			StatusCode: resp.StatusCode,
			Err:        eris.Errorf("buyhatke: status %d", resp.StatusCode),
		}
	}

	listing, err := MapToListing(body, site, c.siteURL)
	if err != nil {
		log.Warn("buyhatke: unusable product data", zap.Error(err), zap.String("body", truncate(body, 200)))
		return nil, err
	}

	if listing.TrackerURL == "" {
		log.Warn("buyhatke: missing fields for tracker URL, returning partial data")
	}
	return listing, nil
}

// FetchPage downloads a tracker HTML page. Non-2xx responses are reported as
// a FetchError and their body is closed.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (io.ReadCloser, error) {
	zap.L().Info("buyhatke: downloading tracker page", zap.String("url", pageURL))

	resp, err := c.doRequest(ctx, pageURL)
	if err != nil {
		return nil, &domain.FetchError{Reason: classifyTransportError(err), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &domain.FetchError{
			Reason:     domain.FaultBadStatus,
			StatusCode: resp.StatusCode,
			Err:        eris.Errorf("buyhatke: page status %d", resp.StatusCode),
		}
	}

	zap.L().Debug("buyhatke: tracker page downloaded", zap.Int("status", resp.StatusCode))
	return resp.Body, nil
}

// classifyTransportError separates timeouts from other transport failures
func classifyTransportError(err error) domain.FaultReason {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.FaultTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.FaultTimeout
	}
	return domain.FaultTransport
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
