// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course

import (
	"context"
	"log/slog"
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

func (service *Service) ListActive(context context.Context) ([]*Course, error) {
	return service.repo.ListActive(context)
}

func (service *Service) ListAll(context context.Context) ([]*Course, error) {
	return service.repo.ListAll(context)
}

func (service *Service) Get(context context.Context, id int64) (*Course, error) {
	return service.repo.Get(context, id)
}

func (service *Service) Create(context context.Context, c *Course) error {
	if err := prepare(c); err != nil {
		return err
	}
	if err := service.repo.Create(context, c); err != nil {
		return err
	}

	service.logger.Info("course_created", slog.Int64("course_id", c.ID), slog.Int("hours", c.Hours))
	return nil
}

func (service *Service) Update(context context.Context, id int64, c *Course) error {
	c.ID = id
	if err := prepare(c); err != nil {
		return err
	}
	if err := service.repo.Update(context, c); err != nil {
		return err
	}

	service.logger.Info("course_updated", slog.Int64("course_id", c.ID))
	return nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("course_deleted", slog.Int64("course_id", id))
	return nil
}

func prepare(c *Course) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Institution = strings.TrimSpace(c.Institution)
	c.Certificate = strings.TrimSpace(c.Certificate)
	if c.HeldOn != nil && c.HeldOn.IsZero() {
		c.HeldOn = nil
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldName, c.Name).MaxLen(FieldName, c.Name, 200).
		Required(FieldInstitution, c.Institution).MaxLen(FieldInstitution, c.Institution, 200).
		NotFuture(FieldHeldOn, c.HeldOn.Ptr()).
		Positive(FieldHours, c.Hours).
		MaxLen(FieldCertificate, c.Certificate, 255)

	return validator.Err()
}
