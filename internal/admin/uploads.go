// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/ctxutil"
	"github.com/taibuivan/hojadevida/internal/platform/media"
	"github.com/taibuivan/hojadevida/internal/platform/render"
	requestutil "github.com/taibuivan/hojadevida/internal/platform/request"
	"github.com/taibuivan/hojadevida/internal/platform/respond"
)

// multipartOverhead leaves room for boundaries and headers around the file.
const multipartOverhead = 64 << 10

// UploadHandler stores files attached to résumé records.
type UploadHandler struct {
	store    *media.Store
	mediaURL string
}

func NewUploadHandler(store *media.Store, mediaURL string) *UploadHandler {
	return &UploadHandler{store: store, mediaURL: mediaURL}
}

type uploadResponse struct {
	// Ref is the value to store in the record's file field.
	Ref string `json:"ref"`
	URL string `json:"url"`
}

func (handler *UploadHandler) RegisterRoutes(router chi.Router) {
	router.Post("/uploads/{section}", handler.upload)
}

/*
POST /api/v1/admin/uploads/{section}

Request: multipart form with a "file" part.

Response:
  - 201: uploadResponse
  - 400: Unknown section or missing file
  - 413: File above the configured limit
*/
func (handler *UploadHandler) upload(writer http.ResponseWriter, request *http.Request) {
	section := requestutil.Param(request, "section")

	if handler.store.MaxBytes > 0 {
		request.Body = http.MaxBytesReader(writer, request.Body, handler.store.MaxBytes+multipartOverhead)
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(writer, request, apperr.PayloadTooLarge(handler.store.MaxBytes))
			return
		}
		respond.Error(writer, request, apperr.ValidationError("A multipart \"file\" field is required",
			apperr.FieldError{Field: "file", Message: "This field is required"}))
		return
	}
	defer file.Close()

	ref, err := handler.store.Save(section, header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctxutil.GetLogger(request.Context()).Info("media_uploaded",
		slog.String("section", section),
		slog.String("ref", ref),
		slog.Int64("size", header.Size),
	)
	respond.Created(writer, uploadResponse{Ref: ref, URL: render.MediaHref(ref, handler.mediaURL)})
}
