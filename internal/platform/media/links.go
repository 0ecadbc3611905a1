// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media locates static assets and uploaded files on disk.

It covers three jobs:

  - Linker: rewrites resource references in rendered HTML so the PDF engine reads local files.
  - Fetcher: loads an attachment from a remote URL or from the media root.
  - Store: saves admin uploads under per-section directories.
*/
package media

import (
	"bytes"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Linker maps URL prefixes to directories on disk.
type Linker struct {
	StaticURL  string
	StaticRoot string
	MediaURL   string
	MediaRoot  string
}

// Resolve translates uri into a file:// URL when it is rooted at the static or
// media prefix and the file exists. Anything else is returned unchanged.
func (linker Linker) Resolve(uri string) string {
	var root, rest string
	switch {
	case linker.MediaURL != "" && strings.HasPrefix(uri, linker.MediaURL):
		root, rest = linker.MediaRoot, strings.TrimPrefix(uri, linker.MediaURL)
	case linker.StaticURL != "" && strings.HasPrefix(uri, linker.StaticURL):
		root, rest = linker.StaticRoot, strings.TrimPrefix(uri, linker.StaticURL)
	default:
		return uri
	}

	// Query strings and fragments are not part of the file name.
	if cut := strings.IndexAny(rest, "?#"); cut >= 0 {
		rest = rest[:cut]
	}
	if unescaped, err := url.PathUnescape(rest); err == nil {
		rest = unescaped
	}

	rest = filepath.FromSlash(strings.TrimPrefix(rest, "/"))
	if !filepath.IsLocal(rest) {
		return uri
	}

	path, err := filepath.Abs(filepath.Join(root, rest))
	if err != nil {
		return uri
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return uri
	}

	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

// RewriteHTML resolves every src and href attribute of document through
// [Linker.Resolve]. Everything except the rewritten tags is copied byte for byte.
func (linker Linker) RewriteHTML(document []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(document))

	tokenizer := html.NewTokenizer(bytes.NewReader(document))
	for {
		kind := tokenizer.Next()
		if kind == html.ErrorToken {
			// io.EOF ends the document; the tokenizer never fails on a bytes.Reader otherwise.
			if tokenizer.Err() != io.EOF {
				out.Write(tokenizer.Raw())
			}
			break
		}

		raw := append([]byte(nil), tokenizer.Raw()...)
		if kind != html.StartTagToken && kind != html.SelfClosingTagToken {
			out.Write(raw)
			continue
		}

		token := tokenizer.Token()
		changed := false
		for i, attr := range token.Attr {
			if attr.Namespace != "" || (attr.Key != "src" && attr.Key != "href") {
				continue
			}
			if resolved := linker.Resolve(attr.Val); resolved != attr.Val {
				token.Attr[i].Val = resolved
				changed = true
			}
		}

		if changed {
			out.WriteString(token.String())
		} else {
			out.Write(raw)
		}
	}

	return out.Bytes()
}
