// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pdfengine converts a complete HTML document into PDF bytes in a
single pass.

Two engines are available:

  - ChromiumEngine: drives a shared headless Chromium through chromedp.
  - WKHTMLTOPDFEngine: shells out to the wkhtmltopdf binary.

Resource references in the HTML are expected to be absolute (file:// or
http(s)://); the engines do not resolve relative links.
*/
package pdfengine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taibuivan/hojadevida/internal/platform/config"
)

// Engine renders HTML into PDF bytes.
type Engine interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
}

// EngineFunc adapts a function to an [Engine].
type EngineFunc func(ctx context.Context, html []byte) ([]byte, error)

func (f EngineFunc) Render(ctx context.Context, html []byte) ([]byte, error) {
	if f == nil {
		return nil, errors.New("pdfengine: engine func is nil")
	}
	return f(ctx, html)
}

// New builds the engine selected by cfg.PDFEngine.
func New(cfg *config.Config) (Engine, error) {
	switch cfg.PDFEngine {
	case config.EngineChromium:
		return &ChromiumEngine{
			BrowserPath: cfg.ChromePath,
			Args:        cfg.ChromeArgs,
			Timeout:     cfg.PDFTimeout,
		}, nil
	case config.EngineWKHTMLTOPDF:
		return &WKHTMLTOPDFEngine{
			Command: cfg.WKHTMLTOPDFPath,
			Timeout: cfg.PDFTimeout,
		}, nil
	default:
		return nil, fmt.Errorf("pdfengine: unsupported engine %q", cfg.PDFEngine)
	}
}

// withTimeout bounds ctx by timeout when it is positive.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}
