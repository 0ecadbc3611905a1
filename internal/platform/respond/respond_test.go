// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/respond"
	"github.com/taibuivan/hojadevida/pkg/pagination"
)

func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/admin/experiences", nil)

	respond.Error(recorder, request, apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "end_date", Message: "End date cannot be before the start date"}))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.Equal(t, apperr.CodeValidation, envelope.Code)
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, "end_date", envelope.Details[0].Field)
}

func TestError_HidesUnknownErrors(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/admin/profile", nil)

	respond.Error(recorder, request, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestPDF_Headers(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.PDF(recorder, "Hoja_de_Vida.pdf", []byte("%PDF-1.7"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="Hoja_de_Vida.pdf"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.7", recorder.Body.String())
}

func TestErrorText_NotFound(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/venta/", nil)

	respond.ErrorText(recorder, request, apperr.NotFound("Page"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Not Found", recorder.Body.String())
}

func TestPaginated(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Paginated(recorder, []string{"a", "b"}, pagination.NewMeta(1, 2, 3))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":["a","b"],"meta":{"page":1,"limit":2,"total":3,"total_pages":2}}`, recorder.Body.String())
}
