// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course

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

var selectColumns = strings.Join(schema.CVCourse.Columns(), ", ")

func (c *Course) fields() []any {
	return []any{&c.ID, &c.Name, &c.Institution, &c.HeldOn, &c.Hours, &c.Certificate, &c.Active}
}

func (repository *PostgresRepository) ListActive(context context.Context) ([]*Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVCourse.Table, schema.CVCourse.Active, schema.CVCourse.HeldOn, schema.CVCourse.ID)
	return repository.list(context, query, "list_active_courses")
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVCourse.Table, schema.CVCourse.HeldOn, schema.CVCourse.ID)
	return repository.list(context, query, "list_courses")
}

func (repository *PostgresRepository) list(context context.Context, query, action string) ([]*Course, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	result := make([]*Course, 0)
	for rows.Next() {
		c := &Course{}
		if err := rows.Scan(c.fields()...); err != nil {
			return nil, dberr.Wrap(err, "scan_course")
		}
		result = append(result, c)
	}

	return result, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.CVCourse.Table, schema.CVCourse.ID)

	c := &Course{}
	if err := repository.db.QueryRow(context, query, id).Scan(c.fields()...); err != nil {
		return nil, dberr.Wrap(err, "get_course")
	}
	return c, nil
}

func (repository *PostgresRepository) Create(context context.Context, c *Course) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6) RETURNING %s`,
		schema.CVCourse.Table, schema.CVCourse.Name, schema.CVCourse.Institution, schema.CVCourse.HeldOn, schema.CVCourse.Hours, schema.CVCourse.Certificate, schema.CVCourse.Active, schema.CVCourse.ID)

	err := repository.db.QueryRow(context, query, c.Name, c.Institution, c.HeldOn, c.Hours, c.Certificate, c.Active).Scan(&c.ID)
	return dberr.Wrap(err, "create_course")
}

func (repository *PostgresRepository) Update(context context.Context, c *Course) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW() WHERE %s = $1`,
		schema.CVCourse.Table, schema.CVCourse.Name, schema.CVCourse.Institution, schema.CVCourse.HeldOn, schema.CVCourse.Hours, schema.CVCourse.Certificate, schema.CVCourse.Active, schema.CVCourse.UpdatedAt, schema.CVCourse.ID)

	cmd, err := repository.db.Exec(context, query, c.ID, c.Name, c.Institution, c.HeldOn, c.Hours, c.Certificate, c.Active)
	if err != nil {
		return dberr.Wrap(err, "update_course")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CVCourse.Table, schema.CVCourse.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_course")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
