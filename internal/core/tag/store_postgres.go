// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) List(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.CVTag.ID, schema.CVTag.Name, schema.CVTag.Slug, schema.CVTag.Table, schema.CVTag.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, dberr.Wrap(rows.Err(), "list_tags")
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CVTag.ID, schema.CVTag.Name, schema.CVTag.Slug, schema.CVTag.Table, schema.CVTag.Slug)

	t := &Tag{}
	if err := repository.db.QueryRow(context, query, slug).Scan(&t.ID, &t.Name, &t.Slug); err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_slug")
	}
	return t, nil
}

func (repository *PostgresRepository) Create(context context.Context, t *Tag) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.CVTag.Table, schema.CVTag.Name, schema.CVTag.Slug, schema.CVTag.ID)

	err := repository.db.QueryRow(context, query, t.Name, t.Slug).Scan(&t.ID)
	return dberr.Wrap(err, "create_tag")
}
