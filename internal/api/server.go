// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the chi router.
  - Only this package and cmd/web are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/hojadevida/internal/admin"
	"github.com/taibuivan/hojadevida/internal/cv"
	"github.com/taibuivan/hojadevida/internal/platform/config"
	"github.com/taibuivan/hojadevida/internal/platform/constants"
	"github.com/taibuivan/hojadevida/internal/platform/middleware"
	"github.com/taibuivan/hojadevida/internal/site"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// RouteRegistrar is implemented by every admin resource handler.
type RouteRegistrar interface {
	RegisterRoutes(router chi.Router)
}

// # Handler Registry

// Handlers groups all HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. Always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. Returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Static holds the embedded stylesheets and images.
	Static fs.FS

	Site *site.Handler
	CV   *cv.Handler

	// Admin is nil when no admin password is configured.
	Admin *AdminHandlers
}

// AdminHandlers is the JSON back office. Resources maps a path under
// /api/v1/admin to its handler.
type AdminHandlers struct {
	Auth        *admin.Handler
	Uploads     *admin.UploadHandler
	Resources   map[string]RouteRegistrar
	Verifier    middleware.TokenVerifier
	Revocations middleware.RevocationChecker
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.NewRateLimiter(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst).Handler)
	r.Use(middleware.PanicRecovery(log))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Assets
	r.Handle(cfg.StaticURL+"*", http.StripPrefix(cfg.StaticURL, http.FileServer(http.FS(h.Static))))
	r.Handle(cfg.MediaURL+"*", http.StripPrefix(cfg.MediaURL, http.FileServer(http.Dir(cfg.MediaRoot))))

	// # PDF Export
	// Rendering runs a browser, so it gets a longer deadline and a tighter per-client budget.
	exportLimiter := middleware.NewRateLimiter(context, constants.ExportRateLimitRPS, constants.ExportRateLimitBurst)
	r.With(exportLimiter.Handler, chimw.Timeout(constants.ExportRequestTimeout)).Get("/descargar-pdf/", h.CV.Download)

	// # Public Pages
	r.Group(func(pages chi.Router) {
		pages.Use(chimw.Timeout(constants.GlobalRequestTimeout))
		h.Site.RegisterRoutes(pages)
		h.CV.RegisterRoutes(pages)
	})

	// # Admin API
	if h.Admin != nil {
		r.Route("/api/v1/admin", func(api chi.Router) {
			api.Use(chimw.Timeout(constants.GlobalRequestTimeout))
			api.Use(middleware.CORS(cfg))
			h.Admin.Auth.RegisterPublicRoutes(api)

			api.Group(func(protected chi.Router) {
				protected.Use(middleware.RequireAdmin(h.Admin.Verifier, h.Admin.Revocations))
				h.Admin.Auth.RegisterRoutes(protected)
				h.Admin.Uploads.RegisterRoutes(protected)

				for path, handler := range h.Admin.Resources {
					protected.Route("/"+strings.Trim(path, "/"), handler.RegisterRoutes)
				}
			})
		})
	}

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
