// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sale

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/hojadevida/internal/platform/database/schema"
	"github.com/taibuivan/hojadevida/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	selectColumns = strings.Join(schema.CVSaleItem.Columns(), ", ")
	insertColumns = schema.CVSaleItem.Columns()[1:]
)

func (item *Item) fields() []any {
	return []any{&item.ID, &item.Name, &item.Description, &item.Price, &item.Condition, &item.Image, &item.PublishedOn, &item.Stock, &item.Active}
}

// values follows the order of insertColumns.
func (item *Item) values() []any {
	return []any{item.Name, item.Description, item.Price, string(item.Condition), item.Image, item.PublishedOn, item.Stock, item.Active}
}

func (repository *PostgresRepository) ListActive(context context.Context) ([]*Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVSaleItem.Table, schema.CVSaleItem.Active, schema.CVSaleItem.PublishedOn, schema.CVSaleItem.ID)
	return repository.list(context, query, "list_active_sale_items")
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVSaleItem.Table, schema.CVSaleItem.PublishedOn, schema.CVSaleItem.ID)
	return repository.list(context, query, "list_sale_items")
}

func (repository *PostgresRepository) list(context context.Context, query, action string) ([]*Item, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	result := make([]*Item, 0)
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(item.fields()...); err != nil {
			return nil, dberr.Wrap(err, "scan_sale_item")
		}
		result = append(result, item)
	}

	return result, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.CVSaleItem.Table, schema.CVSaleItem.ID)

	item := &Item{}
	if err := repository.db.QueryRow(context, query, id).Scan(item.fields()...); err != nil {
		return nil, dberr.Wrap(err, "get_sale_item")
	}
	return item, nil
}

func (repository *PostgresRepository) Create(context context.Context, item *Item) error {
	placeholders := make([]string, len(insertColumns))
	for i := range insertColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		schema.CVSaleItem.Table, strings.Join(insertColumns, ", "), strings.Join(placeholders, ", "), schema.CVSaleItem.ID)

	err := repository.db.QueryRow(context, query, item.values()...).Scan(&item.ID)
	return dberr.Wrap(err, "create_sale_item")
}

func (repository *PostgresRepository) Update(context context.Context, item *Item) error {
	assignments := make([]string, len(insertColumns))
	for i, column := range insertColumns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+2)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s, %s = NOW() WHERE %s = $1`,
		schema.CVSaleItem.Table, strings.Join(assignments, ", "), schema.CVSaleItem.UpdatedAt, schema.CVSaleItem.ID)

	args := append([]any{item.ID}, item.values()...)
	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_sale_item")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CVSaleItem.Table, schema.CVSaleItem.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_sale_item")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
