// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/hojadevida/internal/platform/request"
	"github.com/taibuivan/hojadevida/internal/platform/respond"
	"github.com/taibuivan/hojadevida/internal/platform/validate"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the routes reachable without a token.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/auth/login", handler.login)
}

// RegisterRoutes mounts the routes that need an admin token.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/auth/logout", handler.logout)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
POST /api/v1/admin/auth/login

Response:
  - 200: Session
  - 400: Missing fields
  - 401: Wrong username or password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

/*
POST /api/v1/admin/auth/logout

Response:
  - 204: Token revoked
  - 401: Missing or invalid token
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredAdmin(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
