// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by every handler.
//
// # Architecture
//
// The admin API answers with a strict JSON envelope, success or error. The
// public site answers with rendered HTML, plain text, or PDF bytes through the
// writers at the bottom of this file so headers stay consistent.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/constants"
	"github.com/taibuivan/hojadevida/internal/platform/ctxutil"
	"github.com/taibuivan/hojadevida/pkg/pagination"
)

// SuccessEnvelope is the JSON envelope for successful responses.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// PaginatedEnvelope is the JSON envelope for paginated list responses.
type PaginatedEnvelope struct {
	Data any             `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// # JSON

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Created writes a 201 Created response with data wrapped in the standard success envelope.
func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

// Paginated writes a 200 OK response with paginated data and a metadata block.
func Paginated(writer http.ResponseWriter, data any, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, PaginatedEnvelope{Data: data, Meta: metadata})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := classify(request, err)

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// # Public site

// HTML writes an already rendered page.
func HTML(writer http.ResponseWriter, statusCode int, body []byte) {
	writer.Header().Set(constants.HeaderContentType, constants.ContentTypeHTML)
	writer.WriteHeader(statusCode)
	_, _ = writer.Write(body)
}

// Text writes a plain-text body.
func Text(writer http.ResponseWriter, statusCode int, message string) {
	writer.Header().Set(constants.HeaderContentType, constants.ContentTypePlainText)
	writer.WriteHeader(statusCode)
	_, _ = writer.Write([]byte(message))
}

// PDF writes a PDF document meant to be displayed in the browser.
func PDF(writer http.ResponseWriter, filename string, body []byte) {
	writer.Header().Set(constants.HeaderContentType, constants.ContentTypePDF)
	writer.Header().Set(constants.HeaderDisposition, fmt.Sprintf("inline; filename=%q", filename))
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(body)
}

// ErrorText answers a public page error with its status text. Server errors
// are logged the same way [Error] logs them.
func ErrorText(writer http.ResponseWriter, request *http.Request, err error) {
	appError := classify(request, err)
	Text(writer, appError.HTTPStatus, http.StatusText(appError.HTTPStatus))
}

// classify maps err onto an [apperr.AppError] and logs server-side failures.
func classify(request *http.Request, err error) *apperr.AppError {
	logger := ctxutil.GetLogger(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(request.Context(), "server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	return appError
}
