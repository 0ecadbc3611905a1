// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package site serves the public HTML pages of the résumé.
package site

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/hojadevida/internal/core/profile"
	"github.com/taibuivan/hojadevida/internal/core/siteconfig"
	"github.com/taibuivan/hojadevida/internal/cv"
	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/ctxutil"
	"github.com/taibuivan/hojadevida/internal/platform/render"
	"github.com/taibuivan/hojadevida/internal/platform/respond"
)

// Page templates.
const (
	TemplateHome       = "inicio.html"
	TemplateProfile    = "perfil.html"
	TemplateExperience = "experiencia.html"
	TemplateEducation  = "educacion.html"
	TemplateCourses    = "cursos.html"
	TemplateAwards     = "reconocimientos.html"
	TemplateProjects   = "trabajos.html"
	TemplateSale       = "venta.html"
	TemplateContact    = "contacto.html"
	TemplateError      = "error.html"
)

// ProfileSource reads the profile for public pages.
type ProfileSource interface {
	// Current ignores the show_section flag.
	Current(context context.Context) (*profile.Profile, error)
	// Visible honors it.
	Visible(context context.Context) (*profile.Profile, error)
}

type Handler struct {
	profiles  ProfileSource
	config    cv.ConfigSource
	lists     cv.Sources
	templates cv.TemplateRenderer
}

// NewHandler builds the page handler. lists.Profiles is not used; profiles
// covers both profile reads.
func NewHandler(profiles ProfileSource, config cv.ConfigSource, lists cv.Sources, templates cv.TemplateRenderer) *Handler {
	return &Handler{
		profiles:  profiles,
		config:    config,
		lists:     lists,
		templates: templates,
	}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.home)
	router.Get("/perfil/", handler.profile)
	router.Get("/contacto/", handler.contact)

	router.Get("/experiencia/", handler.listing(TemplateExperience, "experiencias",
		func(c *siteconfig.Config) bool { return c.ShowExperience },
		func(ctx context.Context) (any, error) { return handler.lists.Experiences.ListActive(ctx) }))

	router.Get("/educacion/", handler.listing(TemplateEducation, "estudios",
		func(c *siteconfig.Config) bool { return c.ShowEducation },
		func(ctx context.Context) (any, error) { return handler.lists.Education.ListActive(ctx) }))

	router.Get("/cursos/", handler.listing(TemplateCourses, "cursos",
		func(c *siteconfig.Config) bool { return c.ShowCourses },
		func(ctx context.Context) (any, error) { return handler.lists.Courses.ListActive(ctx) }))

	router.Get("/reconocimientos/", handler.listing(TemplateAwards, "reconocimientos",
		func(c *siteconfig.Config) bool { return c.ShowAwards },
		func(ctx context.Context) (any, error) { return handler.lists.Awards.ListActive(ctx) }))

	router.Get("/trabajos/", handler.listing(TemplateProjects, "proyectos",
		func(c *siteconfig.Config) bool { return c.ShowProjects },
		func(ctx context.Context) (any, error) { return handler.lists.Products.ListActive(ctx) }))

	router.Get("/venta/", handler.listing(TemplateSale, "productos",
		func(c *siteconfig.Config) bool { return c.ShowSale },
		func(ctx context.Context) (any, error) { return handler.lists.Sale.ListActive(ctx) }))
}

// settings returns the stored switches, or the all-visible default.
func (handler *Handler) settings(ctx context.Context) (siteconfig.Config, error) {
	config, err := handler.config.Current(ctx)
	if err != nil {
		return siteconfig.Config{}, err
	}
	if config == nil {
		return siteconfig.Default(), nil
	}
	return *config, nil
}

func (handler *Handler) home(writer http.ResponseWriter, request *http.Request) {
	config, err := handler.settings(request.Context())
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	perfil, err := handler.profiles.Visible(request.Context())
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.page(writer, request, TemplateHome, render.Context{"perfil": perfil, "config": config})
}

func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	config, err := handler.settings(request.Context())
	if err != nil {
		handler.fail(writer, request, err)
		return
	}
	if !config.ShowProfile {
		handler.fail(writer, request, apperr.NotFound("Page"))
		return
	}

	perfil, err := handler.profiles.Visible(request.Context())
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.page(writer, request, TemplateProfile, render.Context{"perfil": perfil, "config": config})
}

func (handler *Handler) contact(writer http.ResponseWriter, request *http.Request) {
	config, err := handler.settings(request.Context())
	if err != nil {
		handler.fail(writer, request, err)
		return
	}
	if !config.ShowContact {
		handler.fail(writer, request, apperr.NotFound("Page"))
		return
	}

	perfil, err := handler.profiles.Current(request.Context())
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.page(writer, request, TemplateContact, render.Context{"perfil": perfil, "config": config})
}

// listing serves a page of active records, or 404 while its switch is off.
func (handler *Handler) listing(template, key string, enabled func(*siteconfig.Config) bool, load func(context.Context) (any, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		config, err := handler.settings(ctx)
		if err != nil {
			handler.fail(writer, request, err)
			return
		}
		if !enabled(&config) {
			handler.fail(writer, request, apperr.NotFound("Page"))
			return
		}

		perfil, err := handler.profiles.Current(ctx)
		if err != nil {
			handler.fail(writer, request, err)
			return
		}
		records, err := load(ctx)
		if err != nil {
			handler.fail(writer, request, err)
			return
		}

		handler.page(writer, request, template, render.Context{"perfil": perfil, "config": config, key: records})
	}
}

func (handler *Handler) page(writer http.ResponseWriter, request *http.Request, template string, data render.Context) {
	body, err := handler.templates.Render(template, data)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}
	respond.HTML(writer, http.StatusOK, body)
}

// fail renders the error page for err, falling back to plain text.
func (handler *Handler) fail(writer http.ResponseWriter, request *http.Request, err error) {
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "page_failed",
			slog.String("path", request.URL.Path),
			slog.Any("error", err),
		)
	}

	body, renderErr := handler.templates.Render(TemplateError, render.Context{
		"status":  status,
		"mensaje": http.StatusText(status),
	})
	if renderErr != nil {
		respond.ErrorText(writer, request, err)
		return
	}
	respond.HTML(writer, status, body)
}
