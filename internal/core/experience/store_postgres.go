// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package experience

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

var selectColumns = strings.Join(schema.CVWorkExperience.Columns(), ", ")

func (e *Experience) fields() []any {
	return []any{
		&e.ID, &e.Position, &e.Company, &e.StartDate, &e.EndDate,
		&e.Description, &e.Active, &e.Modality, &e.ContactName, &e.ContactPhone,
	}
}

func (repository *PostgresRepository) ListActive(context context.Context) ([]*Experience, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVWorkExperience.Table, schema.CVWorkExperience.Active,
		schema.CVWorkExperience.StartDate, schema.CVWorkExperience.ID)
	return repository.list(context, query, "list_active_experiences")
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Experience, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVWorkExperience.Table,
		schema.CVWorkExperience.StartDate, schema.CVWorkExperience.ID)
	return repository.list(context, query, "list_experiences")
}

func (repository *PostgresRepository) list(context context.Context, query, action string) ([]*Experience, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	experiences := make([]*Experience, 0)
	for rows.Next() {
		e := &Experience{}
		if err := rows.Scan(e.fields()...); err != nil {
			return nil, dberr.Wrap(err, "scan_experience")
		}
		experiences = append(experiences, e)
	}

	return experiences, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Experience, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.CVWorkExperience.Table, schema.CVWorkExperience.ID)

	e := &Experience{}
	if err := repository.db.QueryRow(context, query, id).Scan(e.fields()...); err != nil {
		return nil, dberr.Wrap(err, "get_experience")
	}
	return e, nil
}

func (repository *PostgresRepository) Create(context context.Context, e *Experience) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`,
		schema.CVWorkExperience.Table, schema.CVWorkExperience.Position, schema.CVWorkExperience.Company,
		schema.CVWorkExperience.StartDate, schema.CVWorkExperience.EndDate, schema.CVWorkExperience.Description,
		schema.CVWorkExperience.Active, schema.CVWorkExperience.Modality, schema.CVWorkExperience.ContactName,
		schema.CVWorkExperience.ContactPhone, schema.CVWorkExperience.ID,
	)

	err := repository.db.QueryRow(context, query,
		e.Position, e.Company, e.StartDate, e.EndDate, e.Description,
		e.Active, e.Modality, e.ContactName, e.ContactPhone,
	).Scan(&e.ID)
	return dberr.Wrap(err, "create_experience")
}

func (repository *PostgresRepository) Update(context context.Context, e *Experience) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1
	`,
		schema.CVWorkExperience.Table, schema.CVWorkExperience.Position, schema.CVWorkExperience.Company,
		schema.CVWorkExperience.StartDate, schema.CVWorkExperience.EndDate, schema.CVWorkExperience.Description,
		schema.CVWorkExperience.Active, schema.CVWorkExperience.Modality, schema.CVWorkExperience.ContactName,
		schema.CVWorkExperience.ContactPhone, schema.CVWorkExperience.UpdatedAt, schema.CVWorkExperience.ID,
	)

	cmd, err := repository.db.Exec(context, query, e.ID,
		e.Position, e.Company, e.StartDate, e.EndDate, e.Description,
		e.Active, e.Modality, e.ContactName, e.ContactPhone,
	)
	if err != nil {
		return dberr.Wrap(err, "update_experience")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CVWorkExperience.Table, schema.CVWorkExperience.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_experience")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
