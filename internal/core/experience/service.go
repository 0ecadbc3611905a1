// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package experience

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

func (service *Service) ListActive(context context.Context) ([]*Experience, error) {
	return service.repo.ListActive(context)
}

func (service *Service) ListAll(context context.Context) ([]*Experience, error) {
	return service.repo.ListAll(context)
}

func (service *Service) Get(context context.Context, id int64) (*Experience, error) {
	return service.repo.Get(context, id)
}

func (service *Service) Create(context context.Context, e *Experience) error {
	if err := prepare(e); err != nil {
		return err
	}
	if err := service.repo.Create(context, e); err != nil {
		return err
	}

	service.logger.Info("experience_created", slog.Int64("experience_id", e.ID), slog.String("company", e.Company))
	return nil
}

func (service *Service) Update(context context.Context, id int64, e *Experience) error {
	e.ID = id
	if err := prepare(e); err != nil {
		return err
	}
	if err := service.repo.Update(context, e); err != nil {
		return err
	}

	service.logger.Info("experience_updated", slog.Int64("experience_id", e.ID))
	return nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("experience_deleted", slog.Int64("experience_id", id))
	return nil
}

// prepare fills defaults and validates e.
func prepare(e *Experience) error {
	e.Position = strings.TrimSpace(e.Position)
	e.Company = strings.TrimSpace(e.Company)
	if e.Modality == "" {
		e.Modality = ModalityOnSite
	}
	if e.EndDate != nil && e.EndDate.IsZero() {
		e.EndDate = nil
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldPosition, e.Position).MaxLen(FieldPosition, e.Position, 150).
		Required(FieldCompany, e.Company).MaxLen(FieldCompany, e.Company, 150).
		RequiredDate(FieldStartDate, e.StartDate.Time).
		NotFuture(FieldStartDate, e.StartDate.Ptr()).
		NotFuture(FieldEndDate, e.EndDate.Ptr()).
		DateOrder(FieldEndDate, e.StartDate.Ptr(), e.EndDate.Ptr()).
		Required(FieldDescription, e.Description).
		OneOf(FieldModality, string(e.Modality), string(ModalityOnSite), string(ModalityRemote), string(ModalityHybrid)).
		MaxLen(FieldContactName, e.ContactName, 100).
		MaxLen(FieldContactPhone, e.ContactPhone, 20)

	return validator.Err()
}
