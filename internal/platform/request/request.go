// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and common body decoding
patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/ctxutil"
	"github.com/taibuivan/hojadevida/internal/platform/sec"
	"github.com/taibuivan/hojadevida/internal/platform/validate"
)

// maxJSONBody bounds admin JSON payloads. Files go through the upload route.
const maxJSONBody = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns validate.ErrInvalidJSON if decoding fails.
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxJSONBody)
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ID parses a positive integer primary key from the named URL parameter.

Returns a 404 error when the parameter is not a valid identifier, since no
row can match it.
*/
func ID(request *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound("Resource")
	}
	return id, nil
}

/*
RequiredAdmin returns the admin claims stored by the auth middleware.

Returns apperr.Unauthorized if the request is not authenticated.
*/
func RequiredAdmin(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAdmin(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
