// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command web is the entry point for the résumé site.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Build the template renderer and PDF pipeline.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/hojadevida/internal/admin"
	"github.com/taibuivan/hojadevida/internal/api"
	"github.com/taibuivan/hojadevida/internal/core/award"
	"github.com/taibuivan/hojadevida/internal/core/course"
	"github.com/taibuivan/hojadevida/internal/core/education"
	"github.com/taibuivan/hojadevida/internal/core/experience"
	"github.com/taibuivan/hojadevida/internal/core/product"
	"github.com/taibuivan/hojadevida/internal/core/profile"
	"github.com/taibuivan/hojadevida/internal/core/sale"
	"github.com/taibuivan/hojadevida/internal/core/siteconfig"
	"github.com/taibuivan/hojadevida/internal/core/tag"
	"github.com/taibuivan/hojadevida/internal/cv"
	"github.com/taibuivan/hojadevida/internal/platform/config"
	"github.com/taibuivan/hojadevida/internal/platform/constants"
	"github.com/taibuivan/hojadevida/internal/platform/media"
	"github.com/taibuivan/hojadevida/internal/platform/migration"
	"github.com/taibuivan/hojadevida/internal/platform/pdfengine"
	pgstore "github.com/taibuivan/hojadevida/internal/platform/postgres"
	redisstore "github.com/taibuivan/hojadevida/internal/platform/redis"
	"github.com/taibuivan/hojadevida/internal/platform/render"
	"github.com/taibuivan/hojadevida/internal/platform/sec"
	"github.com/taibuivan/hojadevida/internal/site"
	"github.com/taibuivan/hojadevida/web"
)

// services holds one service per résumé section.
type services struct {
	profile    *profile.Service
	experience *experience.Service
	education  *education.Service
	course     *course.Service
	award      *award.Service
	product    *product.Service
	sale       *sale.Service
	tag        *tag.Service
	siteConfig *siteconfig.Service
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("pdf_engine", cfg.PDFEngine),
		slog.Bool("admin_enabled", cfg.AdminEnabled()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Rendering ──────────────────────────────────────────────────────
	templates := render.New(web.Templates(), render.Options{
		StaticURL: cfg.StaticURL,
		MediaURL:  cfg.MediaURL,
		Debug:     cfg.Debug,
	})

	engine, err := pdfengine.New(cfg)
	must(log, err, "initialize pdf engine")

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	svc := newServices(pool, log)

	sources := cv.Sources{
		Profiles:    svc.profile,
		Experiences: svc.experience,
		Education:   svc.education,
		Courses:     svc.course,
		Awards:      svc.award,
		Products:    svc.product,
		Sale:        svc.sale,
	}

	linker := media.Linker{
		StaticURL:  cfg.StaticURL,
		StaticRoot: cfg.StaticRoot,
		MediaURL:   cfg.MediaURL,
		MediaRoot:  cfg.MediaRoot,
	}
	// Remote attachments use the default client; the request context bounds them.
	fetcher := &media.Fetcher{
		Root:     cfg.MediaRoot,
		MediaURL: cfg.MediaURL,
	}
	compositor := cv.NewCompositor(templates, linker, engine, fetcher, log)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(context context.Context) error {
			return pgstore.Ping(context, pool)
		},
		CheckCache: func(context context.Context) error {
			return redisstore.Ping(context, rdb)
		},
	}, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Static:    web.Static(),
		Site:      site.NewHandler(svc.profile, svc.siteConfig, sources, templates),
		CV:        cv.NewHandler(svc.siteConfig, cv.NewLoader(sources), compositor, templates),
	}

	if cfg.AdminEnabled() {
		handlers.Admin = newAdminHandlers(cfg, svc, rdb, log)
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	serverCtx, stopServer := context.WithCancel(context.Background())
	defer stopServer()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

func newServices(pool *pgxpool.Pool, log *slog.Logger) services {
	return services{
		profile:    profile.NewService(profile.NewPostgresRepository(pool), log),
		experience: experience.NewService(experience.NewPostgresRepository(pool), log),
		education:  education.NewService(education.NewPostgresRepository(pool), log),
		course:     course.NewService(course.NewPostgresRepository(pool), log),
		award:      award.NewService(award.NewPostgresRepository(pool), log),
		product:    product.NewService(product.NewPostgresRepository(pool), log),
		sale:       sale.NewService(sale.NewPostgresRepository(pool), log),
		tag:        tag.NewService(tag.NewPostgresRepository(pool), log),
		siteConfig: siteconfig.NewService(siteconfig.NewPostgresRepository(pool), log),
	}
}

func newAdminHandlers(cfg *config.Config, svc services, rdb *goredis.Client, log *slog.Logger) *api.AdminHandlers {
	tokens, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	revocations := admin.NewRevocationStore(rdb)
	credentials := admin.Credentials{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash}

	return &api.AdminHandlers{
		Auth:        admin.NewHandler(admin.NewService(credentials, tokens, revocations, log)),
		Uploads:     admin.NewUploadHandler(&media.Store{Root: cfg.MediaRoot, MaxBytes: cfg.MaxUploadBytes}, cfg.MediaURL),
		Verifier:    tokens,
		Revocations: revocations,
		Resources: map[string]api.RouteRegistrar{
			"profile":     profile.NewHandler(svc.profile),
			"experiences": experience.NewHandler(svc.experience),
			"education":   education.NewHandler(svc.education),
			"courses":     course.NewHandler(svc.course),
			"awards":      award.NewHandler(svc.award),
			"products":    product.NewHandler(svc.product),
			"sale-items":  sale.NewHandler(svc.sale),
			"tags":        tag.NewHandler(svc.tag),
			"site-config": siteconfig.NewHandler(svc.siteConfig),
		},
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
