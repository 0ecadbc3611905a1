// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pdfengine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/platform/config"
)

func chromeBinaryPath(t *testing.T) string {
	t.Helper()

	if path := os.Getenv("CHROME_PATH"); path != "" {
		return path
	}
	for _, candidate := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}

	t.Skip("chromium binary not found; set CHROME_PATH to run this test")
	return ""
}

func TestNew(t *testing.T) {
	engine, err := New(&config.Config{PDFEngine: config.EngineChromium, PDFTimeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &ChromiumEngine{}, engine)

	engine, err = New(&config.Config{PDFEngine: config.EngineWKHTMLTOPDF})
	require.NoError(t, err)
	assert.IsType(t, &WKHTMLTOPDFEngine{}, engine)

	_, err = New(&config.Config{PDFEngine: "xhtml2pdf"})
	assert.Error(t, err)
}

func TestEngineFunc(t *testing.T) {
	var nilFunc EngineFunc
	_, err := nilFunc.Render(context.Background(), nil)
	assert.Error(t, err)

	failing := EngineFunc(func(context.Context, []byte) ([]byte, error) { return nil, errors.New("boom") })
	_, err = failing.Render(context.Background(), []byte("<html></html>"))
	assert.EqualError(t, err, "boom")
}

func TestAllocatorOptionsFromArgs(t *testing.T) {
	options := allocatorOptionsFromArgs([]string{"--no-sandbox", " ", "--window-size=800,600", "--"})
	assert.Len(t, options, 2)
}

func TestWKHTMLTOPDFEngine_MissingBinary(t *testing.T) {
	engine := &WKHTMLTOPDFEngine{Command: "/nonexistent/wkhtmltopdf"}
	_, err := engine.Render(context.Background(), []byte("<html></html>"))
	assert.ErrorContains(t, err, "wkhtmltopdf")
}

func TestChromiumEngine_Render_Smoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping chromium smoke test in short mode")
	}

	engine := &ChromiumEngine{
		BrowserPath: chromeBinaryPath(t),
		Timeout:     20 * time.Second,
		Args:        []string{"--no-sandbox", "--disable-dev-shm-usage"},
	}
	t.Cleanup(func() { engine.Close() })

	pdf, err := engine.Render(context.Background(), []byte("<html><body><h1>Hoja de Vida</h1></body></html>"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	shared := chromedp.FromContext(engine.browserCtx)
	require.NotNil(t, shared)
	require.NotNil(t, shared.Browser, "browser should be started once and shared")

	_, err = engine.Render(context.Background(), []byte("<html><body>otra</body></html>"))
	require.NoError(t, err)
	assert.Same(t, shared.Browser, chromedp.FromContext(engine.browserCtx).Browser)
}

func TestChromiumEngine_MissingBinary(t *testing.T) {
	engine := &ChromiumEngine{BrowserPath: "/nonexistent/chromium", Timeout: 5 * time.Second}
	t.Cleanup(func() { engine.Close() })

	for range 2 {
		_, err := engine.Render(context.Background(), []byte("<html></html>"))
		assert.ErrorContains(t, err, "start chromium")
		assert.Nil(t, engine.browserCtx)
	}
}

func TestAlive(t *testing.T) {
	assert.False(t, alive(nil))
	assert.False(t, alive(context.Background()))

	cancelled, cancel := chromedp.NewContext(context.Background())
	cancel()
	assert.False(t, alive(cancelled))

	// A context whose browser was never started has nothing to reuse.
	unstarted, cancel := chromedp.NewContext(context.Background())
	defer cancel()
	assert.False(t, alive(unstarted))
}
