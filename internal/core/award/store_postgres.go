// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package award

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

var selectColumns = strings.Join(schema.CVAward.Columns(), ", ")

func (a *Award) fields() []any {
	return []any{&a.ID, &a.Name, &a.Institution, &a.AwardedOn, &a.RegistrationCode, &a.Active}
}

func (repository *PostgresRepository) ListActive(context context.Context) ([]*Award, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVAward.Table, schema.CVAward.Active, schema.CVAward.AwardedOn, schema.CVAward.ID)
	return repository.list(context, query, "list_active_awards")
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Award, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVAward.Table, schema.CVAward.AwardedOn, schema.CVAward.ID)
	return repository.list(context, query, "list_awards")
}

func (repository *PostgresRepository) list(context context.Context, query, action string) ([]*Award, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	result := make([]*Award, 0)
	for rows.Next() {
		a := &Award{}
		if err := rows.Scan(a.fields()...); err != nil {
			return nil, dberr.Wrap(err, "scan_award")
		}
		result = append(result, a)
	}

	return result, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Award, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.CVAward.Table, schema.CVAward.ID)

	a := &Award{}
	if err := repository.db.QueryRow(context, query, id).Scan(a.fields()...); err != nil {
		return nil, dberr.Wrap(err, "get_award")
	}
	return a, nil
}

func (repository *PostgresRepository) Create(context context.Context, a *Award) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5) RETURNING %s`,
		schema.CVAward.Table, schema.CVAward.Name, schema.CVAward.Institution, schema.CVAward.AwardedOn, schema.CVAward.RegistrationCode, schema.CVAward.Active, schema.CVAward.ID)

	err := repository.db.QueryRow(context, query, a.Name, a.Institution, a.AwardedOn, a.RegistrationCode, a.Active).Scan(&a.ID)
	return dberr.Wrap(err, "create_award")
}

func (repository *PostgresRepository) Update(context context.Context, a *Award) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW() WHERE %s = $1`,
		schema.CVAward.Table, schema.CVAward.Name, schema.CVAward.Institution, schema.CVAward.AwardedOn, schema.CVAward.RegistrationCode, schema.CVAward.Active, schema.CVAward.UpdatedAt, schema.CVAward.ID)

	cmd, err := repository.db.Exec(context, query, a.ID, a.Name, a.Institution, a.AwardedOn, a.RegistrationCode, a.Active)
	if err != nil {
		return dberr.Wrap(err, "update_award")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CVAward.Table, schema.CVAward.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_award")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
