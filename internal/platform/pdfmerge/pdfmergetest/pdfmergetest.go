// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pdfmergetest builds and inspects small PDF documents in tests.
package pdfmergetest

import (
	"bytes"
	"compress/zlib"
	"io"
	"regexp"
	"strconv"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
)

var (
	objectPattern   = regexp.MustCompile(`(?ms)^(\d+) 0 obj(.*?)endobj`)
	pagePattern     = regexp.MustCompile(`/Type /Page\s`)
	contentsPattern = regexp.MustCompile(`/Contents (\d+) 0 R`)
	usePattern      = regexp.MustCompile(`/(GOFPDITPL\d+) Do`)
	xobjectPattern  = regexp.MustCompile(`/(GOFPDITPL\d+) (\d+) 0 R`)
)

// Document builds a PDF with one page per label, each page showing its label.
func Document(t *testing.T, labels ...string) []byte {
	t.Helper()

	document := fpdf.New("P", "mm", "A4", "")
	document.SetFont("Helvetica", "", 14)
	for _, label := range labels {
		document.AddPage()
		document.Text(20, 30, label)
	}

	var out bytes.Buffer
	require.NoError(t, document.Output(&out))
	return out.Bytes()
}

// ImportedPages returns, in page order, the decoded content of the template
// drawn on each page of a merged document.
func ImportedPages(t *testing.T, merged []byte) []string {
	t.Helper()

	objects := map[int][]byte{}
	var pages []int
	for _, match := range objectPattern.FindAllSubmatch(merged, -1) {
		number, err := strconv.Atoi(string(match[1]))
		require.NoError(t, err)
		objects[number] = match[2]

		if pagePattern.Match(match[2]) {
			pages = append(pages, number)
		}
	}

	templates := map[string]int{}
	for _, match := range xobjectPattern.FindAllSubmatch(merged, -1) {
		number, err := strconv.Atoi(string(match[2]))
		require.NoError(t, err)
		templates[string(match[1])] = number
	}

	contents := make([]string, 0, len(pages))
	for _, page := range pages {
		ref := contentsPattern.FindSubmatch(objects[page])
		require.NotNil(t, ref, "page object %d has no contents", page)
		number, err := strconv.Atoi(string(ref[1]))
		require.NoError(t, err)

		use := usePattern.FindSubmatch(streamOf(objects[number]))
		require.NotNil(t, use, "page object %d draws no template", page)

		template, ok := templates[string(use[1])]
		require.True(t, ok, "template %s is not in the resources", use[1])
		contents = append(contents, string(streamOf(objects[template])))
	}
	return contents
}

// streamOf returns the stream of an object body, inflated when possible.
func streamOf(body []byte) []byte {
	start := bytes.Index(body, []byte("stream"))
	end := bytes.LastIndex(body, []byte("endstream"))
	if start < 0 || end <= start {
		return nil
	}

	data := body[start+len("stream") : end]
	data = bytes.TrimPrefix(data, []byte("\r"))
	data = bytes.TrimPrefix(data, []byte("\n"))

	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return data
	}
	defer reader.Close()

	inflated, err := io.ReadAll(reader)
	if err != nil && len(inflated) == 0 {
		return data
	}
	return inflated
}
