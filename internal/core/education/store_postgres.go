// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package education

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

var selectColumns = strings.Join(schema.CVEducation.Columns(), ", ")

func (ed *Education) fields() []any {
	return []any{&ed.ID, &ed.Title, &ed.Institution, &ed.StartDate, &ed.EndDate, &ed.Certificate, &ed.Active}
}

func (repository *PostgresRepository) ListActive(context context.Context) ([]*Education, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVEducation.Table, schema.CVEducation.Active, schema.CVEducation.EndDate, schema.CVEducation.ID)
	return repository.list(context, query, "list_active_education")
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Education, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVEducation.Table, schema.CVEducation.EndDate, schema.CVEducation.ID)
	return repository.list(context, query, "list_education")
}

func (repository *PostgresRepository) list(context context.Context, query, action string) ([]*Education, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	result := make([]*Education, 0)
	for rows.Next() {
		ed := &Education{}
		if err := rows.Scan(ed.fields()...); err != nil {
			return nil, dberr.Wrap(err, "scan_education")
		}
		result = append(result, ed)
	}

	return result, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Education, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.CVEducation.Table, schema.CVEducation.ID)

	ed := &Education{}
	if err := repository.db.QueryRow(context, query, id).Scan(ed.fields()...); err != nil {
		return nil, dberr.Wrap(err, "get_education")
	}
	return ed, nil
}

func (repository *PostgresRepository) Create(context context.Context, ed *Education) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6) RETURNING %s`,
		schema.CVEducation.Table, schema.CVEducation.Title, schema.CVEducation.Institution, schema.CVEducation.StartDate, schema.CVEducation.EndDate, schema.CVEducation.Certificate, schema.CVEducation.Active, schema.CVEducation.ID)

	err := repository.db.QueryRow(context, query, ed.Title, ed.Institution, ed.StartDate, ed.EndDate, ed.Certificate, ed.Active).Scan(&ed.ID)
	return dberr.Wrap(err, "create_education")
}

func (repository *PostgresRepository) Update(context context.Context, ed *Education) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW() WHERE %s = $1`,
		schema.CVEducation.Table, schema.CVEducation.Title, schema.CVEducation.Institution, schema.CVEducation.StartDate, schema.CVEducation.EndDate, schema.CVEducation.Certificate, schema.CVEducation.Active, schema.CVEducation.UpdatedAt, schema.CVEducation.ID)

	cmd, err := repository.db.Exec(context, query, ed.ID, ed.Title, ed.Institution, ed.StartDate, ed.EndDate, ed.Certificate, ed.Active)
	if err != nil {
		return dberr.Wrap(err, "update_education")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CVEducation.Table, schema.CVEducation.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_education")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
