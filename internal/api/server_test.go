// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/api"
	"github.com/taibuivan/hojadevida/internal/cv"
	"github.com/taibuivan/hojadevida/internal/platform/config"
	"github.com/taibuivan/hojadevida/internal/site"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	liveness, readiness := api.NewHealthHandlers(deps, discardLogger())
	cfg := &config.Config{
		ServerPort: "0",
		StaticURL:  "/static/",
		MediaURL:   "/media/",
		MediaRoot:  t.TempDir(),
	}

	server := api.NewServer(context.Background(), cfg, discardLogger(), api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Static:    fstest.MapFS{"css/site.css": {Data: []byte("body{}")}},
		Site:      site.NewHandler(nil, nil, cv.Sources{}, nil),
		CV:        cv.NewHandler(nil, nil, nil, nil),
	})
	return server.Handler()
}

func get(handler http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestHealth(t *testing.T) {
	handler := newServer(t, api.HealthDependencies{})

	recorder := get(handler, "/health")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, recorder.Body.String())
}

func TestReady(t *testing.T) {
	t.Run("all_healthy", func(t *testing.T) {
		handler := newServer(t, api.HealthDependencies{
			CheckDatabase: func(context.Context) error { return nil },
			CheckCache:    func(context.Context) error { return nil },
		})

		recorder := get(handler, "/ready")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"ready"`)
	})

	t.Run("cache_down", func(t *testing.T) {
		handler := newServer(t, api.HealthDependencies{
			CheckDatabase: func(context.Context) error { return nil },
			CheckCache:    func(context.Context) error { return errors.New("connection refused") },
		})

		recorder := get(handler, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
		assert.Contains(t, recorder.Body.String(), "connection refused")
	})
}

func TestStaticAssets(t *testing.T) {
	handler := newServer(t, api.HealthDependencies{})

	recorder := get(handler, "/static/css/site.css")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "body{}", recorder.Body.String())
}

func TestAdminDisabled(t *testing.T) {
	handler := newServer(t, api.HealthDependencies{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/login", strings.NewReader(`{}`))
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
