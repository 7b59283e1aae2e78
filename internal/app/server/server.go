// Package server assembles the router and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/TonySyv/yshstob/internal/app/analytics"
	"github.com/TonySyv/yshstob/internal/app/handlers"
	"github.com/TonySyv/yshstob/internal/app/logger"
	"github.com/TonySyv/yshstob/internal/app/middlewares"
	"github.com/TonySyv/yshstob/internal/app/service"
)

const shutdownTimeout = 10 * time.Second

// ShortenerRouter wires every route of the service onto a chi router.
// The catch-all code route is registered last so it can never shadow the
// application routes.
func ShortenerRouter(
	shortenerService service.ShortenerServiceInterface,
	aggregator *analytics.Aggregator,
	pipeline *analytics.Pipeline,
) chi.Router {
	shortenHandler := handlers.NewShortenHandler(shortenerService)
	redirectHandler := handlers.NewRedirectHandler(shortenerService, pipeline)
	analyticsHandler := handlers.NewAnalyticsEventHandler(aggregator)
	speedometerHandler := handlers.NewSpeedometerHandler(aggregator)
	deployMetadataHandler := handlers.NewDeployMetadataHandler(aggregator)
	urlCountHandler := handlers.NewURLCountHandler(shortenerService)
	pingHandler := handlers.NewPingHandler(shortenerService)

	router := chi.NewRouter()
	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middlewares.GzipMiddleware)

	router.Post("/api/shorten", shortenHandler.ServeHTTP)
	router.Get("/api/url-count", urlCountHandler.ServeHTTP)
	router.Get("/speedometer", speedometerHandler.ServeHTTP)
	router.Get("/ping", pingHandler.ServeHTTP)

	router.Group(func(internal chi.Router) {
		internal.Use(middlewares.CheckSubnet)
		internal.Use(middlewares.InternalAuth)
		internal.Post("/analytics/redirect", analyticsHandler.ServeHTTP)
		internal.Patch("/metadata/deploy", deployMetadataHandler.ServeHTTP)
	})

	router.Get("/{code}", redirectHandler.ServeHTTP)
	return router
}

// Run serves the router on addr until the done channel is closed, then
// shuts the server down gracefully.
func Run(addr string, router chi.Router, doneChan chan struct{}) error {
	httpServer := &http.Server{Addr: addr, Handler: router}

	go func() {
		<-doneChan
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorf("error shutting down the server: %v", err)
		}
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
