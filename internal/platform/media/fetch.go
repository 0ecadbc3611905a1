// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// IsRemote reports whether ref is an absolute http(s) URL.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Fetcher loads attachment bytes. Remote references use Client; everything
// else is read relative to Root.
type Fetcher struct {
	Root     string
	MediaURL string
	Client   *http.Client
}

// Fetch returns the content behind ref.
func (fetcher *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if IsRemote(ref) {
		return fetcher.fetchRemote(ctx, ref)
	}
	return fetcher.readLocal(ref)
}

func (fetcher *Fetcher) fetchRemote(ctx context.Context, ref string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("media: build request: %w", err)
	}

	client := fetcher.Client
	if client == nil {
		client = http.DefaultClient
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("media: get %s: %w", ref, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media: get %s: unexpected status %d", ref, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("media: read %s: %w", ref, err)
	}
	return body, nil
}

func (fetcher *Fetcher) readLocal(ref string) ([]byte, error) {
	rel := ref
	if fetcher.MediaURL != "" {
		rel = strings.TrimPrefix(rel, fetcher.MediaURL)
	}
	rel = filepath.FromSlash(strings.TrimPrefix(rel, "/"))

	if !filepath.IsLocal(rel) {
		return nil, fmt.Errorf("media: reference %q escapes the media root", ref)
	}

	body, err := os.ReadFile(filepath.Join(fetcher.Root, rel))
	if err != nil {
		return nil, fmt.Errorf("media: read %s: %w", ref, err)
	}
	return body, nil
}
