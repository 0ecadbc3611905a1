// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sale

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/hojadevida/internal/platform/validate"
	"github.com/taibuivan/hojadevida/pkg/date"
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

func (service *Service) ListActive(context context.Context) ([]*Item, error) {
	return service.repo.ListActive(context)
}

func (service *Service) ListAll(context context.Context) ([]*Item, error) {
	return service.repo.ListAll(context)
}

func (service *Service) Get(context context.Context, id int64) (*Item, error) {
	return service.repo.Get(context, id)
}

func (service *Service) Create(context context.Context, item *Item) error {
	if err := prepare(item); err != nil {
		return err
	}
	if err := service.repo.Create(context, item); err != nil {
		return err
	}

	service.logger.Info("sale_item_created",
		slog.Int64("sale_item_id", item.ID),
		slog.Float64("price", item.Price),
		slog.Int("stock", item.Stock),
	)
	return nil
}

func (service *Service) Update(context context.Context, id int64, item *Item) error {
	item.ID = id
	if err := prepare(item); err != nil {
		return err
	}
	if err := service.repo.Update(context, item); err != nil {
		return err
	}

	service.logger.Info("sale_item_updated", slog.Int64("sale_item_id", item.ID))
	return nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("sale_item_deleted", slog.Int64("sale_item_id", id))
	return nil
}

func prepare(item *Item) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Image = strings.TrimSpace(item.Image)
	if item.Condition == "" {
		item.Condition = ConditionNew
	}
	if item.PublishedOn.IsZero() {
		item.PublishedOn = date.Today()
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldName, item.Name).MaxLen(FieldName, item.Name, 200).
		Required(FieldDescription, item.Description).
		NonNegative(FieldPrice, item.Price).
		Custom(FieldPrice, item.Price >= 1e8, "Price must be below 100000000").
		OneOf(FieldCondition, string(item.Condition), Conditions...).
		MaxLen(FieldImage, item.Image, 255).
		NotFuture(FieldPublishedOn, item.PublishedOn.Ptr()).
		Custom(FieldStock, item.Stock < 0, "Stock must not be negative")

	return validator.Err()
}
