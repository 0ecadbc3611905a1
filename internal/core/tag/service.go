// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/validate"
	"github.com/taibuivan/hojadevida/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(context context.Context) ([]*Tag, error) {
	return service.repo.List(context)
}

// Create stores a new tag. Names that slugify to an existing tag are conflicts.
func (service *Service) Create(context context.Context, t *Tag) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Slug = slug.From(t.Name)

	validator := &validate.Validator{}
	validator.
		Required(FieldName, t.Name).
		MaxLen(FieldName, t.Name, MaxNameLength).
		Custom(FieldName, t.Name != "" && t.Slug == "", "Must contain at least one letter or digit")
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.repo.GetBySlug(context, t.Slug); err == nil {
		return apperr.Conflict("Tag already exists")
	} else if !apperr.IsNotFound(err) {
		return err
	}

	if err := service.repo.Create(context, t); err != nil {
		return err
	}

	service.logger.Info("tag_created", slog.String("slug", t.Slug))
	return nil
}
