// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     gateway
// Description: HTTP/JSON and WebSocket gateway for the calculation service
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package gateway serves the calculation service over HTTP/JSON under
// /api/v1 and streams calculations over a WebSocket at /api/v1/live.
package gateway

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/service"
	"github.com/msto63/mRW/pkg/core/config"
	"github.com/msto63/mRW/pkg/core/health"
	"github.com/msto63/mRW/pkg/core/version"
)

// APIPrefix is the path prefix of every route
const APIPrefix = "/api/" + version.API

// Gateway is the HTTP server in front of the service
type Gateway struct {
	service    *service.Service
	health     *health.Registry
	limiter    *RateLimiter
	logger     *mrwlog.Logger
	httpServer *http.Server
	config     config.HTTPConfig
}

// Option configures a Gateway
type Option func(*Gateway)

// WithLogger sets the logger
func WithLogger(logger *mrwlog.Logger) Option {
	return func(g *Gateway) { g.logger = logger }
}

// WithHealth replaces the health registry reported by /health
func WithHealth(reg *health.Registry) Option {
	return func(g *Gateway) { g.health = reg }
}

// New creates the gateway
func New(svc *service.Service, cfg config.HTTPConfig, opts ...Option) *Gateway {
	g := &Gateway{
		service: svc,
		logger:  mrwlog.Discard(),
		config:  cfg,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.WithName("gateway")
	if g.health == nil {
		g.health = health.NewRegistry("gateway", version.Platform)
		g.health.Register(health.AlwaysHealthy("http"))
	}
	if cfg.RateLimit.Requests > 0 {
		g.limiter = NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window.Duration)
	}

	g.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      g.Handler(),
		ReadTimeout:  cfg.ReadTimeout.Duration,
		WriteTimeout: cfg.WriteTimeout.Duration,
	}
	return g
}

// Handler builds the routed handler with its middleware chain
func (g *Gateway) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix(APIPrefix).Subrouter()

	api.HandleFunc("/tools", g.handleTools).Methods(http.MethodGet)
	api.HandleFunc("/tools/{id}", g.handleTool).Methods(http.MethodGet)
	api.HandleFunc("/tools/{id}/calculate", g.handleCalculate).Methods(http.MethodPost)
	api.HandleFunc("/categories", g.handleCategories).Methods(http.MethodGet)
	api.HandleFunc("/history", g.handleHistory).Methods(http.MethodGet)
	api.HandleFunc("/history", g.handleClearHistory).Methods(http.MethodDelete)
	api.HandleFunc("/health", g.handleHealth).Methods(http.MethodGet)
	api.Handle("/live", newLiveHandler(g.service, g.logger))

	r.NotFoundHandler = http.HandlerFunc(g.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(g.handleMethodNotAllowed)

	var h http.Handler = r
	if g.limiter != nil {
		h = rateLimitMiddleware(g.limiter, h)
	}
	h = loggingMiddleware(g.logger, h)
	h = requestIDMiddleware(h)
	if g.config.CORS.Enabled {
		h = cors.New(cors.Options{
			AllowedOrigins: g.config.CORS.AllowedOrigins,
			AllowedMethods: g.config.CORS.AllowedMethods,
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{RequestIDHeader},
		}).Handler(h)
	}
	return h
}

// Serve serves on lis until Shutdown
func (g *Gateway) Serve(lis net.Listener) error {
	g.logger.Info("HTTP gateway listening", mrwlog.Fields{"address": lis.Addr().String()})
	if err := g.httpServer.Serve(lis); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Start listens on the configured address and serves
func (g *Gateway) Start() error {
	g.logger.Info("HTTP gateway starting", mrwlog.Fields{"address": g.httpServer.Addr})
	if err := g.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for running ones until ctx
// is done
func (g *Gateway) Shutdown(ctx context.Context) error {
	if g.limiter != nil {
		g.limiter.Stop()
	}
	return g.httpServer.Shutdown(ctx)
}

// Address returns the configured listen address
func (g *Gateway) Address() string {
	return g.httpServer.Addr
}
