// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cv

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/hojadevida/internal/core/siteconfig"
	"github.com/taibuivan/hojadevida/internal/platform/constants"
	"github.com/taibuivan/hojadevida/internal/platform/ctxutil"
	"github.com/taibuivan/hojadevida/internal/platform/render"
	"github.com/taibuivan/hojadevida/internal/platform/respond"
)

// TemplateForm is the export options page.
const TemplateForm = "configurar_cv.html"

// FormOption is one checkbox of the export form.
type FormOption struct {
	Name  string
	Label string
}

func formOptions() []FormOption {
	options := make([]FormOption, 0, len(Sections))
	for _, section := range Sections {
		options = append(options, FormOption{Name: constants.HideParamPrefix + string(section), Label: section.Label()})
	}
	return options
}

// ConfigSource returns the site-wide switches, nil when unset.
type ConfigSource interface {
	Current(context context.Context) (*siteconfig.Config, error)
}

// Composer produces the export PDF.
type Composer interface {
	Compose(ctx context.Context, document *Document, visibility Visibility) ([]byte, error)
}

type Handler struct {
	config     ConfigSource
	loader     *Loader
	compositor Composer
	templates  TemplateRenderer
}

func NewHandler(config ConfigSource, loader *Loader, compositor Composer, templates TemplateRenderer) *Handler {
	return &Handler{
		config:     config,
		loader:     loader,
		compositor: compositor,
		templates:  templates,
	}
}

// RegisterRoutes mounts the form page. The download route is mounted
// separately so it can carry its own rate limit.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/generar-cv/", handler.form)
}

func (handler *Handler) form(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.loader.Load(request.Context(), Visibility{})
	if err != nil {
		respond.ErrorText(writer, request, err)
		return
	}

	page, err := handler.templates.Render(TemplateForm, render.Context{
		"perfil":    document.Profile,
		"secciones": formOptions(),
	})
	if err != nil {
		respond.ErrorText(writer, request, err)
		return
	}
	respond.HTML(writer, http.StatusOK, page)
}

// Download answers GET /descargar-pdf/.
func (handler *Handler) Download(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	config, err := handler.config.Current(ctx)
	if err != nil {
		respond.ErrorText(writer, request, err)
		return
	}

	visibility := Resolve(config, ParseHideFlags(request.URL.Query()))

	document, err := handler.loader.Load(ctx, visibility)
	if err != nil {
		respond.ErrorText(writer, request, err)
		return
	}

	body, err := handler.compositor.Compose(ctx, document, visibility)
	if err != nil {
		var renderErr *RenderError
		if errors.As(err, &renderErr) {
			logger.Error("cv_render_failed", slog.Any("error", err))
		} else {
			logger.Error("cv_compose_failed", slog.Any("error", err))
		}
		respond.Text(writer, http.StatusInternalServerError, constants.CVRenderFailedMessage)
		return
	}

	logger.Info("cv_exported", slog.Int("bytes", len(body)))
	respond.PDF(writer, constants.CVFilename, body)
}
