// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package experience

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/hojadevida/internal/platform/request"
	"github.com/taibuivan/hojadevida/internal/platform/respond"
	"github.com/taibuivan/hojadevida/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin routes. Callers guard them.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listExperiences)
	router.Post("/", handler.createExperience)
	router.Get("/{id}", handler.getExperience)
	router.Put("/{id}", handler.updateExperience)
	router.Delete("/{id}", handler.deleteExperience)
}

func (handler *Handler) listExperiences(writer http.ResponseWriter, request *http.Request) {
	experiences, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	page, meta := pagination.Window(experiences, pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}

func (handler *Handler) getExperience(writer http.ResponseWriter, request *http.Request) {
	experienceID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	e, err := handler.service.Get(request.Context(), experienceID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, e)
}

func (handler *Handler) createExperience(writer http.ResponseWriter, request *http.Request) {
	input := Experience{Active: true}
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateExperience(writer http.ResponseWriter, request *http.Request) {
	experienceID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Experience
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), experienceID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteExperience(writer http.ResponseWriter, request *http.Request) {
	experienceID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), experienceID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
