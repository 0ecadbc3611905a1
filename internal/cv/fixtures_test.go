// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cv_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/hojadevida/internal/cv"
	"github.com/taibuivan/hojadevida/internal/platform/render"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// templateFunc records the context of the last render.
type templateFunc func(name string, data render.Context) ([]byte, error)

func (f templateFunc) Render(name string, data render.Context) ([]byte, error) {
	return f(name, data)
}

func staticTemplates(body string) templateFunc {
	return func(string, render.Context) ([]byte, error) { return []byte(body), nil }
}

type identityLinks struct{}

func (identityLinks) RewriteHTML(document []byte) []byte { return document }

// recordingFetcher wraps a fetcher and keeps the order of requested references.
type recordingFetcher struct {
	next cv.AttachmentFetcher

	mu   sync.Mutex
	refs []string
}

func (fetcher *recordingFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	fetcher.mu.Lock()
	fetcher.refs = append(fetcher.refs, ref)
	fetcher.mu.Unlock()
	return fetcher.next.Fetch(ctx, ref)
}
