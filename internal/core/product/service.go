// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/hojadevida/internal/platform/validate"
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

func (service *Service) ListActive(context context.Context) ([]*Product, error) {
	return service.repo.ListActive(context)
}

func (service *Service) ListAll(context context.Context) ([]*Product, error) {
	return service.repo.ListAll(context)
}

func (service *Service) Get(context context.Context, id int64) (*Product, error) {
	return service.repo.Get(context, id)
}

func (service *Service) Create(context context.Context, p *Product) error {
	if err := prepare(p); err != nil {
		return err
	}
	if err := service.repo.Create(context, p); err != nil {
		return err
	}

	service.logger.Info("product_created", slog.Int64("product_id", p.ID), slog.Int("tags", len(p.TagIDs)))
	return nil
}

func (service *Service) Update(context context.Context, id int64, p *Product) error {
	p.ID = id
	if err := prepare(p); err != nil {
		return err
	}
	if err := service.repo.Update(context, p); err != nil {
		return err
	}

	service.logger.Info("product_updated", slog.Int64("product_id", p.ID))
	return nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("product_deleted", slog.Int64("product_id", id))
	return nil
}

func prepare(p *Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.RegistrationID = strings.TrimSpace(p.RegistrationID)
	p.File = strings.TrimSpace(p.File)

	// Duplicate tag IDs collapse to one relation row.
	slices.Sort(p.TagIDs)
	p.TagIDs = slices.Compact(p.TagIDs)

	validator := &validate.Validator{}
	validator.
		Required(FieldName, p.Name).MaxLen(FieldName, p.Name, 200).
		Required(FieldDescription, p.Description).
		MaxLen(FieldRegistrationID, p.RegistrationID, 100).
		RequiredDate(FieldPublishedOn, p.PublishedOn.Time).
		NotFuture(FieldPublishedOn, p.PublishedOn.Ptr()).
		MaxLen(FieldFile, p.File, 255).
		Custom(FieldTagIDs, slices.ContainsFunc(p.TagIDs, func(id int64) bool { return id <= 0 }), "Tag IDs must be positive")

	return validator.Err()
}
