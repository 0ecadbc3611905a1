// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package education

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

func (service *Service) ListActive(context context.Context) ([]*Education, error) {
	return service.repo.ListActive(context)
}

func (service *Service) ListAll(context context.Context) ([]*Education, error) {
	return service.repo.ListAll(context)
}

func (service *Service) Get(context context.Context, id int64) (*Education, error) {
	return service.repo.Get(context, id)
}

func (service *Service) Create(context context.Context, ed *Education) error {
	if err := prepare(ed); err != nil {
		return err
	}
	if err := service.repo.Create(context, ed); err != nil {
		return err
	}

	service.logger.Info("education_created", slog.Int64("education_id", ed.ID), slog.String("title", ed.Title))
	return nil
}

func (service *Service) Update(context context.Context, id int64, ed *Education) error {
	ed.ID = id
	if err := prepare(ed); err != nil {
		return err
	}
	if err := service.repo.Update(context, ed); err != nil {
		return err
	}

	service.logger.Info("education_updated", slog.Int64("education_id", ed.ID))
	return nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("education_deleted", slog.Int64("education_id", id))
	return nil
}

func prepare(ed *Education) error {
	ed.Title = strings.TrimSpace(ed.Title)
	ed.Institution = strings.TrimSpace(ed.Institution)
	ed.Certificate = strings.TrimSpace(ed.Certificate)

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, ed.Title).MaxLen(FieldTitle, ed.Title, 200).
		Required(FieldInstitution, ed.Institution).MaxLen(FieldInstitution, ed.Institution, 200).
		RequiredDate(FieldStartDate, ed.StartDate.Time).
		RequiredDate(FieldEndDate, ed.EndDate.Time).
		NotFuture(FieldStartDate, ed.StartDate.Ptr()).
		NotFuture(FieldEndDate, ed.EndDate.Ptr()).
		DateOrder(FieldEndDate, ed.StartDate.Ptr(), ed.EndDate.Ptr()).
		MaxLen(FieldCertificate, ed.Certificate, 255)

	return validator.Err()
}
