// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cv_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/core/award"
	"github.com/taibuivan/hojadevida/internal/core/course"
	"github.com/taibuivan/hojadevida/internal/core/education"
	"github.com/taibuivan/hojadevida/internal/core/experience"
	"github.com/taibuivan/hojadevida/internal/core/product"
	"github.com/taibuivan/hojadevida/internal/core/profile"
	"github.com/taibuivan/hojadevida/internal/core/sale"
	"github.com/taibuivan/hojadevida/internal/core/siteconfig"
	"github.com/taibuivan/hojadevida/internal/cv"
	"github.com/taibuivan/hojadevida/internal/platform/render"
)

type listFunc[T any] func(context.Context) ([]T, error)

func (f listFunc[T]) ListActive(ctx context.Context) ([]T, error) { return f(ctx) }

func emptyList[T any]() listFunc[T] {
	return func(context.Context) ([]T, error) { return nil, nil }
}

type profileFunc func(context.Context) (*profile.Profile, error)

func (f profileFunc) Current(ctx context.Context) (*profile.Profile, error) { return f(ctx) }

type configFunc func(context.Context) (*siteconfig.Config, error)

func (f configFunc) Current(ctx context.Context) (*siteconfig.Config, error) { return f(ctx) }

type composerFunc func(context.Context, *cv.Document, cv.Visibility) ([]byte, error)

func (f composerFunc) Compose(ctx context.Context, document *cv.Document, visibility cv.Visibility) ([]byte, error) {
	return f(ctx, document, visibility)
}

func newLoader(experiences listFunc[*experience.Experience]) *cv.Loader {
	return cv.NewLoader(cv.Sources{
		Profiles: profileFunc(func(context.Context) (*profile.Profile, error) {
			return &profile.Profile{FirstNames: "Ana", LastNames: "Pérez"}, nil
		}),
		Experiences: experiences,
		Education:   emptyList[*education.Education](),
		Courses:     emptyList[*course.Course](),
		Awards:      emptyList[*award.Award](),
		Products:    emptyList[*product.Product](),
		Sale:        emptyList[*sale.Item](),
	})
}

func newRouter(config cv.ConfigSource, loader *cv.Loader, composer cv.Composer, templates cv.TemplateRenderer) http.Handler {
	handler := cv.NewHandler(config, loader, composer, templates)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	router.Get("/descargar-pdf/", handler.Download)
	return router
}

func noConfig() configFunc {
	return func(context.Context) (*siteconfig.Config, error) { return nil, nil }
}

func TestDownload_ServesPDF(t *testing.T) {
	var seen cv.Visibility
	composer := composerFunc(func(_ context.Context, document *cv.Document, visibility cv.Visibility) ([]byte, error) {
		seen = visibility
		assert.Equal(t, "Ana Pérez", document.Profile.FullName())
		return []byte("%PDF-1.4 body"), nil
	})

	hidden := siteconfig.Default()
	hidden.ShowAwards = false
	config := configFunc(func(context.Context) (*siteconfig.Config, error) { return &hidden, nil })

	router := newRouter(config, newLoader(emptyList[*experience.Experience]()), composer, staticTemplates(""))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/descargar-pdf/?ocultar_foto=on&ocultar_cursos=off", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="Hoja_de_Vida.pdf"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 body", recorder.Body.String())

	assert.False(t, seen.Includes(cv.SectionPhoto))
	assert.True(t, seen.Includes(cv.SectionCourses))
	assert.False(t, seen.Includes(cv.SectionAwards))
}

func TestDownload_RenderFailure(t *testing.T) {
	composer := composerFunc(func(context.Context, *cv.Document, cv.Visibility) ([]byte, error) {
		return nil, &cv.RenderError{Err: errors.New("engine down")}
	})
	router := newRouter(noConfig(), newLoader(emptyList[*experience.Experience]()), composer, staticTemplates(""))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/descargar-pdf/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "text/plain; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "Hubo un error al generar el PDF.", recorder.Body.String())
	assert.Empty(t, recorder.Header().Get("Content-Disposition"))
}

func TestDownload_LoaderFailure(t *testing.T) {
	failing := listFunc[*experience.Experience](func(context.Context) ([]*experience.Experience, error) {
		return nil, errors.New("connection refused")
	})
	composer := composerFunc(func(context.Context, *cv.Document, cv.Visibility) ([]byte, error) {
		t.Fatal("compose must not run")
		return nil, nil
	})
	router := newRouter(noConfig(), newLoader(failing), composer, staticTemplates(""))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/descargar-pdf/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "connection refused")
}

func TestDownload_HiddenSectionNotLoaded(t *testing.T) {
	experiences := listFunc[*experience.Experience](func(context.Context) ([]*experience.Experience, error) {
		t.Fatal("hidden section must not be loaded")
		return nil, nil
	})
	composer := composerFunc(func(context.Context, *cv.Document, cv.Visibility) ([]byte, error) {
		return []byte("%PDF"), nil
	})
	router := newRouter(noConfig(), newLoader(experiences), composer, staticTemplates(""))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/descargar-pdf/?ocultar_experiencia=on", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestForm(t *testing.T) {
	templates := templateFunc(func(name string, data render.Context) ([]byte, error) {
		assert.Equal(t, cv.TemplateForm, name)
		options := data["secciones"].([]cv.FormOption)
		require.Len(t, options, len(cv.Sections))
		assert.Equal(t, cv.FormOption{Name: "ocultar_foto", Label: "Foto"}, options[0])
		return []byte("<form></form>"), nil
	})
	router := newRouter(noConfig(), newLoader(emptyList[*experience.Experience]()), nil, templates)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/generar-cv/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "<form></form>", recorder.Body.String())
}
