// Package app wires configuration into the comparison service and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pricelens/backend/config"
	httpDelivery "github.com/pricelens/backend/internal/delivery/http"
	"github.com/pricelens/backend/internal/extract"
	"github.com/pricelens/backend/internal/infrastructure/buyhatke"
	"github.com/pricelens/backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// NewComparisonService builds the tracker client, the extractor and the service around them
func NewComparisonService(cfg *config.Config) *usecase.ComparisonService {
	client := buyhatke.NewClient(buyhatke.ClientConfig{
		APIURL:    cfg.Tracker.APIURL,
		SiteURL:   cfg.Tracker.SiteURL,
		UserAgent: cfg.Tracker.UserAgent,
		Timeout:   cfg.Tracker.Timeout,
		RateLimit: rate.Limit(cfg.RateLimit.UpstreamRPS),
		Burst:     cfg.RateLimit.UpstreamBurst,
	})

	alternatives := usecase.NewAlternativeOfferService(client, extract.NewExtractor(extract.DefaultTables()))
	return usecase.NewComparisonService(client, alternatives)
}

// Serve runs the HTTP server on port until ctx is cancelled
func Serve(ctx context.Context, cfg *config.Config, port string) error {
	handler := httpDelivery.NewHandler(NewComparisonService(cfg))
	router := httpDelivery.SetupRouter(cfg, handler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("server shutdown failed", zap.Error(err))
		}
	}()

	zap.L().Info("starting server",
		zap.String("addr", srv.Addr),
		zap.String("environment", cfg.Server.Environment),
		zap.String("tracker", cfg.Tracker.SiteURL),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return eris.Wrap(err, "server listen")
	}
	return nil
}
