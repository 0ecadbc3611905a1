// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pdfengine

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper in inches, the unit Chromium's print API expects.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	marginInches   = 0.4
)

// ChromiumEngine renders through one browser process shared by every request.
// Each call opens its own tab. The browser starts on first use and is started
// again when it has gone away.
type ChromiumEngine struct {
	BrowserPath string
	Args        []string
	Timeout     time.Duration

	mu            sync.Mutex
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// Render writes html to a temporary file and prints it. Loading from a file
// lets the page reach the file:// resources produced by the link rewriter.
func (engine *ChromiumEngine) Render(ctx context.Context, html []byte) ([]byte, error) {
	browserCtx, err := engine.browser()
	if err != nil {
		return nil, err
	}

	document, err := os.CreateTemp("", "hojadevida-*.html")
	if err != nil {
		return nil, fmt.Errorf("pdfengine: create temp document: %w", err)
	}
	defer os.Remove(document.Name())

	_, writeErr := document.Write(html)
	if closeErr := document.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return nil, fmt.Errorf("pdfengine: write temp document: %w", writeErr)
	}

	path, err := filepath.Abs(document.Name())
	if err != nil {
		return nil, fmt.Errorf("pdfengine: resolve temp document: %w", err)
	}
	target := (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()

	tabCtx, cancelTab := chromedp.NewContext(browserCtx)
	defer cancelTab()

	// The tab lives under the browser context; tie it to the request as well.
	execCtx, cancelExec := withTimeout(tabCtx, engine.Timeout)
	defer cancelExec()
	stop := context.AfterFunc(ctx, cancelExec)
	defer stop()

	var pdf []byte
	err = chromedp.Run(execCtx,
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdfengine: chromium print: %w", err)
	}
	return pdf, nil
}

// Close stops the browser if it was started.
func (engine *ChromiumEngine) Close() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	engine.stop()
	return nil
}

// browser returns the context of the running browser, starting one when
// there is none or the previous one lost its connection.
func (engine *ChromiumEngine) browser() (context.Context, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if alive(engine.browserCtx) {
		return engine.browserCtx, nil
	}
	engine.stop()

	options := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if engine.BrowserPath != "" {
		options = append(options, chromedp.ExecPath(engine.BrowserPath))
	}
	// file:// documents may load sibling file:// images and stylesheets.
	options = append(options, chromedp.Flag("allow-file-access-from-files", true))
	options = append(options, allocatorOptionsFromArgs(engine.Args)...)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), options...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Running no actions launches the process; tabs opened later attach to it.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("pdfengine: start chromium: %w", err)
	}

	engine.allocCancel, engine.browserCtx, engine.browserCancel = allocCancel, browserCtx, browserCancel
	return browserCtx, nil
}

// stop cancels the current browser. The caller holds mu.
func (engine *ChromiumEngine) stop() {
	if engine.browserCancel != nil {
		engine.browserCancel()
	}
	if engine.allocCancel != nil {
		engine.allocCancel()
	}
	engine.allocCancel, engine.browserCtx, engine.browserCancel = nil, nil, nil
}

// alive reports whether browserCtx holds a browser with an open connection.
func alive(browserCtx context.Context) bool {
	if browserCtx == nil || browserCtx.Err() != nil {
		return false
	}

	current := chromedp.FromContext(browserCtx)
	if current == nil || current.Browser == nil {
		return false
	}

	select {
	case <-current.Browser.LostConnection:
		return false
	default:
		return true
	}
}

// allocatorOptionsFromArgs turns "--name=value" or "--flag" strings into allocator flags.
func allocatorOptionsFromArgs(args []string) []chromedp.ExecAllocatorOption {
	options := make([]chromedp.ExecAllocatorOption, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimPrefix(strings.TrimSpace(arg), "--")
		if arg == "" {
			continue
		}
		if name, value, ok := strings.Cut(arg, "="); ok {
			options = append(options, chromedp.Flag(name, value))
			continue
		}
		options = append(options, chromedp.Flag(arg, true))
	}
	return options
}
