// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/hojadevida/internal/platform/request"
	"github.com/taibuivan/hojadevida/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin profile routes. Callers guard them.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getProfile)
	router.Put("/", handler.saveProfile)
	router.Post("/languages", handler.addLanguage)
	router.Delete("/languages/{id}", handler.removeLanguage)
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	p, err := handler.service.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

func (handler *Handler) saveProfile(writer http.ResponseWriter, request *http.Request) {
	var input Profile
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Save(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) addLanguage(writer http.ResponseWriter, request *http.Request) {
	var input LanguageSkill
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddLanguage(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) removeLanguage(writer http.ResponseWriter, request *http.Request) {
	languageID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveLanguage(request.Context(), languageID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
