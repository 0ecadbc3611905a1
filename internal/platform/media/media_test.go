// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/media"
)

func writeFile(t *testing.T, root, rel, body string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func fileURL(path string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func newLinker(t *testing.T) (media.Linker, string, string) {
	t.Helper()
	staticRoot, mediaRoot := t.TempDir(), t.TempDir()
	return media.Linker{StaticURL: "/static/", StaticRoot: staticRoot, MediaURL: "/media/", MediaRoot: mediaRoot}, staticRoot, mediaRoot
}

func TestLinker_Resolve(t *testing.T) {
	linker, staticRoot, mediaRoot := newLinker(t)
	css := writeFile(t, staticRoot, "css/cv.css", "body{}")
	photo := writeFile(t, mediaRoot, "perfil/yo.jpg", "jpg")

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"static", "/static/css/cv.css", fileURL(css)},
		{"media", "/media/perfil/yo.jpg", fileURL(photo)},
		{"media_with_query", "/media/perfil/yo.jpg?v=2", fileURL(photo)},
		{"missing_falls_back", "/media/perfil/otro.jpg", "/media/perfil/otro.jpg"},
		{"traversal_falls_back", "/media/../secret", "/media/../secret"},
		{"remote_passes", "https://cdn.example/a.png", "https://cdn.example/a.png"},
		{"other_path_passes", "/perfil/", "/perfil/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, linker.Resolve(tt.uri))
		})
	}
}

func TestLinker_RewriteHTML(t *testing.T) {
	linker, staticRoot, _ := newLinker(t)
	css := writeFile(t, staticRoot, "css/cv.css", "body{}")

	document := `<html><head><link rel="stylesheet" href="/static/css/cv.css"><style>p > b { content: "x"; }</style></head>` +
		`<body><img src="/media/none.png" alt="a &amp; b"><a href="https://x.example">x</a></body></html>`

	out := string(linker.RewriteHTML([]byte(document)))

	assert.Contains(t, out, `href="`+fileURL(css)+`"`)
	assert.Contains(t, out, `<style>p > b { content: "x"; }</style>`)
	assert.Contains(t, out, `<img src="/media/none.png" alt="a &amp; b">`)
	assert.Contains(t, out, `<a href="https://x.example">x</a>`)
}

func TestFetcher(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "cursos/c.pdf", "%PDF-local")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok.pdf" {
			w.Write([]byte("%PDF-remote"))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := &media.Fetcher{Root: root, MediaURL: "/media/", Client: server.Client()}
	ctx := context.Background()

	body, err := fetcher.Fetch(ctx, "cursos/c.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-local", string(body))

	body, err = fetcher.Fetch(ctx, "/media/cursos/c.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-local", string(body))

	body, err = fetcher.Fetch(ctx, server.URL+"/ok.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-remote", string(body))

	_, err = fetcher.Fetch(ctx, server.URL+"/missing.pdf")
	assert.ErrorContains(t, err, "404")

	_, err = fetcher.Fetch(ctx, "../etc/passwd")
	assert.Error(t, err)
}

func TestFetcher_DefaultClientStopsWithContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	fetcher := &media.Fetcher{Root: t.TempDir()}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := fetcher.Fetch(ctx, server.URL+"/lento.pdf")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStore_Save(t *testing.T) {
	store := &media.Store{Root: t.TempDir(), MaxBytes: 16}

	ref, err := store.Save(media.SectionEducation, "Título Ingeniería.PDF", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "educacion/"))
	assert.True(t, strings.HasSuffix(ref, "-titulo-ingenieria.pdf"))

	body, err := os.ReadFile(filepath.Join(store.Root, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
}

func TestStore_SaveRejects(t *testing.T) {
	store := &media.Store{Root: t.TempDir(), MaxBytes: 4}

	_, err := store.Save("secret", "a.pdf", strings.NewReader("x"))
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	_, err = store.Save(media.SectionSale, "a.jpg", strings.NewReader("too large"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, apperr.StatusOf(err))

	entries, err := os.ReadDir(filepath.Join(store.Root, media.SectionSale))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
