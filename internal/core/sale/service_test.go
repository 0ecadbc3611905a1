// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sale_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/core/sale"
	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/pkg/date"
)

type captureRepository struct {
	sale.Repository
	saved *sale.Item
}

func (repo *captureRepository) Create(_ context.Context, item *sale.Item) error {
	item.ID = 1
	repo.saved = item
	return nil
}

func newService(repo sale.Repository) *sale.Service {
	return sale.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate_Defaults(t *testing.T) {
	repo := &captureRepository{}

	item := &sale.Item{Name: " Bicicleta ", Description: "Aro 26", Price: 120.5, Stock: 1, Active: true}
	require.NoError(t, newService(repo).Create(context.Background(), item))

	assert.Equal(t, "Bicicleta", repo.saved.Name)
	assert.Equal(t, sale.ConditionNew, repo.saved.Condition)
	assert.Equal(t, date.Today(), repo.saved.PublishedOn)
	assert.True(t, repo.saved.Available())
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		item  sale.Item
		field string
	}{
		{"negative_price", sale.Item{Name: "Mesa", Description: "Madera", Price: -1}, sale.FieldPrice},
		{"unknown_condition", sale.Item{Name: "Mesa", Description: "Madera", Condition: "Usado"}, sale.FieldCondition},
		{"negative_stock", sale.Item{Name: "Mesa", Description: "Madera", Stock: -2}, sale.FieldStock},
		{"future_publication", sale.Item{Name: "Mesa", Description: "Madera", PublishedOn: date.Of(time.Now().AddDate(0, 1, 0))}, sale.FieldPublishedOn},
		{"missing_description", sale.Item{Name: "Mesa"}, sale.FieldDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.item
			ae := apperr.As(newService(&captureRepository{}).Create(context.Background(), &item))
			require.NotNil(t, ae)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}
