// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/hojadevida/internal/platform/ctxutil"
	"github.com/taibuivan/hojadevida/internal/platform/middleware"
	"github.com/taibuivan/hojadevida/internal/platform/sec"
)

type fakeVerifier struct{}

func (fakeVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" && token != "revoked" {
		return nil, errors.New("bad token")
	}
	return &sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: token},
		Username:         "ana",
	}, nil
}

type fakeRevocations struct{}

func (fakeRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return tokenID == "revoked", nil
}

func TestRequireAdmin(t *testing.T) {
	var seen string
	handler := middleware.RequireAdmin(fakeVerifier{}, fakeRevocations{})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = ctxutil.GetAdmin(r.Context()).Username
			w.WriteHeader(http.StatusNoContent)
		}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong_scheme", "Basic abc", http.StatusUnauthorized},
		{"invalid_token", "Bearer nope", http.StatusUnauthorized},
		{"revoked_token", "Bearer revoked", http.StatusUnauthorized},
		{"valid_token", "Bearer good", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/v1/admin/profile", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}

	assert.Equal(t, "ana", seen)
}

func TestRateLimiter_Burst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := middleware.NewRateLimiter(ctx, 0.001, 2)
	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/descargar-pdf/", nil)
		request.RemoteAddr = "10.0.0.1:5000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client has its own bucket.
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", middleware.RealIP(request))
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
