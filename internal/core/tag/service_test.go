// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/core/tag"
	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/dberr"
)

type memoryRepository struct {
	bySlug map[string]*tag.Tag
}

func (repo *memoryRepository) List(_ context.Context) ([]*tag.Tag, error) {
	tags := make([]*tag.Tag, 0, len(repo.bySlug))
	for _, t := range repo.bySlug {
		tags = append(tags, t)
	}
	return tags, nil
}

func (repo *memoryRepository) GetBySlug(_ context.Context, slug string) (*tag.Tag, error) {
	if t, ok := repo.bySlug[slug]; ok {
		return t, nil
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryRepository) Create(_ context.Context, t *tag.Tag) error {
	t.ID = int64(len(repo.bySlug) + 1)
	repo.bySlug[t.Slug] = t
	return nil
}

func TestCreate(t *testing.T) {
	repo := &memoryRepository{bySlug: make(map[string]*tag.Tag)}
	service := tag.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	created := &tag.Tag{Name: " Inteligencia Artificial "}
	require.NoError(t, service.Create(context.Background(), created))
	assert.Equal(t, "Inteligencia Artificial", created.Name)
	assert.Equal(t, "inteligencia-artificial", created.Slug)

	duplicate := &tag.Tag{Name: "inteligencia artificial"}
	err := service.Create(context.Background(), duplicate)
	assert.Equal(t, apperr.CodeConflict, apperr.As(err).Code)

	blank := &tag.Tag{Name: "   "}
	assert.Equal(t, apperr.CodeValidation, apperr.As(service.Create(context.Background(), blank)).Code)

	symbols := &tag.Tag{Name: "!!!"}
	assert.Equal(t, apperr.CodeValidation, apperr.As(service.Create(context.Background(), symbols)).Code)
}
