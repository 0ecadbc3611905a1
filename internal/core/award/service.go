// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package award

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

func (service *Service) ListActive(context context.Context) ([]*Award, error) {
	return service.repo.ListActive(context)
}

func (service *Service) ListAll(context context.Context) ([]*Award, error) {
	return service.repo.ListAll(context)
}

func (service *Service) Get(context context.Context, id int64) (*Award, error) {
	return service.repo.Get(context, id)
}

func (service *Service) Create(context context.Context, a *Award) error {
	if err := prepare(a); err != nil {
		return err
	}
	if err := service.repo.Create(context, a); err != nil {
		return err
	}

	service.logger.Info("award_created", slog.Int64("award_id", a.ID))
	return nil
}

func (service *Service) Update(context context.Context, id int64, a *Award) error {
	a.ID = id
	if err := prepare(a); err != nil {
		return err
	}
	if err := service.repo.Update(context, a); err != nil {
		return err
	}

	service.logger.Info("award_updated", slog.Int64("award_id", a.ID))
	return nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("award_deleted", slog.Int64("award_id", id))
	return nil
}

func prepare(a *Award) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Institution = strings.TrimSpace(a.Institution)
	if a.AwardedOn != nil && a.AwardedOn.IsZero() {
		a.AwardedOn = nil
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldName, a.Name).MaxLen(FieldName, a.Name, 200).
		Required(FieldInstitution, a.Institution).MaxLen(FieldInstitution, a.Institution, 200).
		NotFuture(FieldAwardedOn, a.AwardedOn.Ptr()).
		MaxLen(FieldRegistrationCode, a.RegistrationCode, 100)

	return validator.Err()
}
