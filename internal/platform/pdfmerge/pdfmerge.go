// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pdfmerge concatenates PDF documents page by page.

Pages are imported as templates with gofpdi and placed onto a fresh fpdf
document at their original MediaBox size. One importer serves a whole merge
so template names and imported objects stay unique across sources. The gofpdi
parser panics on malformed input, so every entry point converts a panic into
an error.
*/
package pdfmerge

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/phpdave11/gofpdi"
)

const mediaBox = "/MediaBox"

// A4 in points, used when a page reports no size.
const (
	a4Width  = 595.28
	a4Height = 841.89
)

var (
	signature = []byte("%PDF")

	// ErrNotPDF is returned for content that does not start with the PDF header.
	ErrNotPDF = errors.New("pdfmerge: missing %PDF signature")
)

// HasPDFSignature reports whether document starts with the PDF header.
func HasPDFSignature(document []byte) bool {
	return bytes.HasPrefix(document, signature)
}

// PageCount parses document and returns its number of pages.
func PageCount(document []byte) (count int, err error) {
	if !HasPDFSignature(document) {
		return 0, ErrNotPDF
	}
	defer recoverAs(&err, "read")

	importer := gofpdi.NewImporter()
	stream := io.ReadSeeker(bytes.NewReader(document))
	importer.SetSourceStream(&stream)

	count = importer.GetNumPages()
	if count < 1 {
		return 0, fmt.Errorf("pdfmerge: document has no pages")
	}
	return count, nil
}

// Check reports whether every page of document can be imported, and returns
// the page count. The import happens on a scratch document.
func Check(document []byte) (int, error) {
	return newImporter(newDocument()).add(document)
}

// Merge concatenates documents in order into one PDF.
func Merge(documents ...[]byte) ([]byte, error) {
	if len(documents) == 0 {
		return nil, errors.New("pdfmerge: nothing to merge")
	}

	merged := newDocument()
	imp := newImporter(merged)
	for i, document := range documents {
		if _, err := imp.add(document); err != nil {
			return nil, fmt.Errorf("pdfmerge: document %d: %w", i+1, err)
		}
	}

	var out bytes.Buffer
	if err := merged.Output(&out); err != nil {
		return nil, fmt.Errorf("pdfmerge: write: %w", err)
	}
	return out.Bytes(), nil
}

func newDocument() *fpdf.Fpdf {
	document := fpdf.New("P", "pt", "A4", "")
	document.SetAutoPageBreak(false, 0)
	return document
}

// importer places the pages of several sources onto one fpdf document.
//
// gofpdi keys a stream source by the address of its reader and hashes every
// imported object by object number and file name. Streams have no file name,
// so each source starts at an object number above the previous ones, and
// every stream stays referenced until the import is done.
type importer struct {
	target  *fpdf.Fpdf
	fpdi    *gofpdi.Importer
	streams []*io.ReadSeeker
	nextID  int
}

func newImporter(target *fpdf.Fpdf) *importer {
	return &importer{target: target, fpdi: gofpdi.NewImporter(), nextID: 1}
}

// add appends every page of document to the target.
func (imp *importer) add(document []byte) (pages int, err error) {
	pages, err = PageCount(document)
	if err != nil {
		return 0, err
	}
	defer recoverAs(&err, "import")

	stream := io.ReadSeeker(bytes.NewReader(document))
	imp.streams = append(imp.streams, &stream)
	imp.fpdi.SetSourceStream(&stream)
	imp.fpdi.SetNextObjectID(imp.nextID)

	sizes := imp.fpdi.GetPageSizes()
	for page := 1; page <= pages; page++ {
		template := imp.fpdi.ImportPage(page, mediaBox)

		imp.target.ImportTemplates(imp.fpdi.PutFormXobjectsUnordered())
		imp.target.ImportObjects(imp.fpdi.GetImportedObjectsUnordered())
		imp.target.ImportObjPos(imp.fpdi.GetImportedObjHashPos())

		width, height := a4Width, a4Height
		if box, ok := sizes[page][mediaBox]; ok && box["w"] > 0 && box["h"] > 0 {
			width, height = box["w"], box["h"]
		}

		imp.target.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})
		name, scaleX, scaleY, x, y := imp.fpdi.UseTemplate(template, 0, 0, width, height)
		imp.target.UseImportedTemplate(name, scaleX, scaleY, x, y)
	}

	for id := range imp.fpdi.GetImportedObjects() {
		imp.nextID = max(imp.nextID, id+1)
	}
	return pages, imp.target.Error()
}

func recoverAs(err *error, action string) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("pdfmerge: %s failed: %v", action, r)
	}
}
