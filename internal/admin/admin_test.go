// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/admin"
	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/media"
	"github.com/taibuivan/hojadevida/internal/platform/middleware"
	"github.com/taibuivan/hojadevida/internal/platform/sec"
)

type memoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newMemoryRevocations() *memoryRevocations {
	return &memoryRevocations{revoked: map[string]time.Duration{}}
}

func (store *memoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.revoked[tokenID] = ttl
	return nil
}

func (store *memoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	_, ok := store.revoked[tokenID]
	return ok, nil
}

type fixture struct {
	tokens      *sec.TokenService
	revocations *memoryRevocations
	service     *admin.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	hash, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)

	tokens := sec.NewTokenServiceFromKeys(key, &key.PublicKey, "hojadevida")
	revocations := newMemoryRevocations()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		tokens:      tokens,
		revocations: revocations,
		service:     admin.NewService(admin.Credentials{Username: "ana", PasswordHash: hash}, tokens, revocations, logger),
	}
}

func (f *fixture) router() http.Handler {
	handler := admin.NewHandler(f.service)
	router := chi.NewRouter()
	handler.RegisterPublicRoutes(router)
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAdmin(f.tokens, f.revocations))
		handler.RegisterRoutes(protected)
	})
	return router
}

func TestService_Login(t *testing.T) {
	f := newFixture(t)

	session, err := f.service.Login(context.Background(), "ana", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), session.ExpiresAt, time.Minute)

	claims, err := f.tokens.VerifyToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong_password", "ana", "nope"},
		{"wrong_username", "root", "s3cret-pass"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Login(context.Background(), tt.username, tt.password)
			assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
		})
	}
}

func TestService_Logout(t *testing.T) {
	f := newFixture(t)

	session, err := f.service.Login(context.Background(), "ana", "s3cret-pass")
	require.NoError(t, err)
	claims, err := f.tokens.VerifyToken(session.AccessToken)
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), claims))

	revoked, err := f.revocations.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.InDelta(t, (8 * time.Hour).Seconds(), f.revocations.revoked[claims.ID].Seconds(), 60)
}

func TestHandler_LoginLogoutFlow(t *testing.T) {
	f := newFixture(t)
	router := f.router()

	body := strings.NewReader(`{"username":"ana","password":"s3cret-pass"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/auth/login", body))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data admin.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	token := envelope.Data.AccessToken
	require.NotEmpty(t, token)

	logout := func() int {
		request := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusNoContent, logout())
	assert.Equal(t, http.StatusUnauthorized, logout())
}

func TestHandler_LoginValidation(t *testing.T) {
	router := newFixture(t).router()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"ana"}`)))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"ana","password":"x"}`)))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func multipartUpload(t *testing.T, target, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, target, &body)
	request.Header.Set("Content-Type", form.FormDataContentType())
	return request
}

func TestUploadHandler(t *testing.T) {
	root := t.TempDir()
	router := chi.NewRouter()
	admin.NewUploadHandler(&media.Store{Root: root, MaxBytes: 1 << 20}, "/media/").RegisterRoutes(router)

	t.Run("stores_file", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, multipartUpload(t, "/uploads/cursos", "file", "Diploma Final.pdf", []byte("%PDF-1.4")))
		require.Equal(t, http.StatusCreated, recorder.Code)

		var envelope struct {
			Data struct {
				Ref string `json:"ref"`
				URL string `json:"url"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.True(t, strings.HasPrefix(envelope.Data.Ref, "cursos/"))
		assert.True(t, strings.HasSuffix(envelope.Data.Ref, "-diploma-final.pdf"))
		assert.Equal(t, "/media/"+envelope.Data.Ref, envelope.Data.URL)

		stored, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(envelope.Data.Ref)))
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), stored)
	})

	t.Run("unknown_section", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, multipartUpload(t, "/uploads/otros", "file", "a.pdf", []byte("x")))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing_file_field", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, multipartUpload(t, "/uploads/cursos", "document", "a.pdf", []byte("x")))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
