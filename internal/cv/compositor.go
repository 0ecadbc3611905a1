// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/hojadevida/internal/platform/pdfengine"
	"github.com/taibuivan/hojadevida/internal/platform/pdfmerge"
	"github.com/taibuivan/hojadevida/internal/platform/render"
	"github.com/taibuivan/hojadevida/pkg/slice"
)

// RenderError reports that the résumé body could not be produced. No PDF
// bytes accompany it.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "cv: render failed: " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

// AttachmentFetchError reports an attachment left out of the export.
type AttachmentFetchError struct {
	Section Section
	Ref     string
	Err     error
}

func (e *AttachmentFetchError) Error() string {
	return fmt.Sprintf("cv: attachment %s (%s) skipped: %v", e.Ref, e.Section, e.Err)
}
func (e *AttachmentFetchError) Unwrap() error { return e.Err }

type (
	// TemplateRenderer executes a named template.
	TemplateRenderer interface {
		Render(name string, data render.Context) ([]byte, error)
	}
	// LinkRewriter points resource references at local files.
	LinkRewriter interface {
		RewriteHTML(document []byte) []byte
	}
	// AttachmentFetcher loads the bytes behind a stored file reference.
	AttachmentFetcher interface {
		Fetch(ctx context.Context, ref string) ([]byte, error)
	}
)

// Compositor turns a [Document] into the final PDF: the rendered body
// followed by the certificates and product files of visible sections.
type Compositor struct {
	templates TemplateRenderer
	links     LinkRewriter
	engine    pdfengine.Engine
	fetcher   AttachmentFetcher
	logger    *slog.Logger
}

func NewCompositor(templates TemplateRenderer, links LinkRewriter, engine pdfengine.Engine, fetcher AttachmentFetcher, logger *slog.Logger) *Compositor {
	return &Compositor{
		templates: templates,
		links:     links,
		engine:    engine,
		fetcher:   fetcher,
		logger:    logger,
	}
}

type attachment struct {
	section Section
	ref     string
}

// attachments lists non-empty references in export order: education, then
// courses, then products, each in the order the body shows them.
func attachments(document *Document, visibility Visibility) []attachment {
	var all []attachment
	for _, ed := range only(visibility, SectionEducation, document.Education) {
		all = append(all, attachment{SectionEducation, ed.Attachment()})
	}
	for _, c := range only(visibility, SectionCourses, document.Courses) {
		all = append(all, attachment{SectionCourses, c.Attachment()})
	}
	for _, p := range only(visibility, SectionProjects, document.Products) {
		all = append(all, attachment{SectionProjects, p.Attachment()})
	}

	return slice.Filter(all, func(a attachment) bool { return strings.TrimSpace(a.ref) != "" })
}

// Compose renders document and merges its attachments. The only error it
// returns is a [*RenderError]; attachment problems are logged and skipped.
func (compositor *Compositor) Compose(ctx context.Context, document *Document, visibility Visibility) ([]byte, error) {
	html, err := compositor.templates.Render(TemplatePDF, templateContext(document, visibility))
	if err != nil {
		return nil, &RenderError{Err: err}
	}

	body, err := compositor.engine.Render(ctx, compositor.links.RewriteHTML(html))
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	if !pdfmerge.HasPDFSignature(body) {
		return nil, &RenderError{Err: errors.New("engine output is not a PDF")}
	}

	parts := [][]byte{body}
	if visibility.Includes(SectionAttachments) {
		for _, item := range attachments(document, visibility) {
			content, err := compositor.load(ctx, item)
			if err != nil {
				compositor.logger.WarnContext(ctx, "pdf_attachment_skipped",
					slog.String("section", string(item.section)),
					slog.String("ref", item.ref),
					slog.Any("error", err),
				)
				continue
			}
			parts = append(parts, content)
		}
	}

	if len(parts) == 1 {
		return body, nil
	}

	merged, err := pdfmerge.Merge(parts...)
	if err != nil {
		return nil, &RenderError{Err: err}
	}

	compositor.logger.InfoContext(ctx, "pdf_attachments_merged", slog.Int("attachments", len(parts)-1))
	return merged, nil
}

// load fetches one attachment and checks that its pages import cleanly.
func (compositor *Compositor) load(ctx context.Context, item attachment) ([]byte, error) {
	content, err := compositor.fetcher.Fetch(ctx, item.ref)
	if err == nil && !pdfmerge.HasPDFSignature(content) {
		err = pdfmerge.ErrNotPDF
	}
	if err == nil {
		_, err = pdfmerge.Check(content)
	}
	if err != nil {
		return nil, &AttachmentFetchError{Section: item.section, Ref: item.ref, Err: err}
	}
	return content, nil
}
