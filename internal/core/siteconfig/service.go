// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package siteconfig

import (
	"context"
	"log/slog"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/dberr"
)

// ErrAlreadyExists is returned when a second configuration row is requested.
var ErrAlreadyExists = apperr.Conflict("Site configuration already exists; update it instead")

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

// Get returns the stored configuration or a 404 when none exists.
func (service *Service) Get(context context.Context) (*Config, error) {
	return service.repo.Get(context)
}

// Current returns the stored configuration, or nil when none exists.
func (service *Service) Current(context context.Context) (*Config, error) {
	config, err := service.repo.Get(context)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	return config, err
}

// Create stores the single configuration row. The existence check catches the
// common case; the database key catches a concurrent insert.
func (service *Service) Create(context context.Context, config *Config) error {
	existing, err := service.Current(context)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyExists
	}

	if err := service.repo.Create(context, config); err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	service.logger.Info("site_config_created")
	return nil
}

func (service *Service) Update(context context.Context, config *Config) error {
	if err := service.repo.Update(context, config); err != nil {
		return err
	}

	service.logger.Info("site_config_updated",
		slog.Bool("show_profile", config.ShowProfile),
		slog.Bool("show_sale", config.ShowSale),
	)
	return nil
}
