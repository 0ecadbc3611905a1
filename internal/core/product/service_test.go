// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/core/product"
	"github.com/taibuivan/hojadevida/internal/core/tag"
	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/pkg/date"
)

type captureRepository struct {
	product.Repository
	saved *product.Product
}

func (repo *captureRepository) Create(_ context.Context, p *product.Product) error {
	p.ID = 7
	repo.saved = p
	return nil
}

func newService(repo product.Repository) *product.Service {
	return product.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate_DeduplicatesTags(t *testing.T) {
	repo := &captureRepository{}

	p := &product.Product{
		Name:        "Sistema de turnos",
		Description: "Tesis de grado",
		PublishedOn: date.New(2022, time.August, 10),
		TagIDs:      []int64{3, 1, 3, 2, 1},
	}
	require.NoError(t, newService(repo).Create(context.Background(), p))
	assert.Equal(t, []int64{1, 2, 3}, repo.saved.TagIDs)
}

func TestCreate_Validation(t *testing.T) {
	p := &product.Product{
		Name:        "Artículo",
		Description: "Revista indexada",
		PublishedOn: date.Of(time.Now().AddDate(0, 0, 3)),
		TagIDs:      []int64{0},
	}

	ae := apperr.As(newService(&captureRepository{}).Create(context.Background(), p))
	require.NotNil(t, ae)

	fields := make([]string, 0, len(ae.Details))
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(t, []string{product.FieldPublishedOn, product.FieldTagIDs}, fields)
}

func TestTagNames(t *testing.T) {
	p := &product.Product{Tags: []tag.Tag{{Name: "IA"}, {Name: "Web"}}, File: "academicos/tesis.pdf"}
	assert.Equal(t, []string{"IA", "Web"}, p.TagNames())
	assert.Equal(t, "academicos/tesis.pdf", p.Attachment())
}
