// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package siteconfig

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

// flagColumns skips the pinned id.
var flagColumns = schema.CVSiteConfig.Columns()[1:]

func (config *Config) fields() []any {
	return []any{
		&config.ShowHome, &config.ShowProfile, &config.ShowExperience, &config.ShowEducation,
		&config.ShowCourses, &config.ShowAwards, &config.ShowProjects, &config.ShowSale, &config.ShowContact,
	}
}

func (config *Config) values() []any {
	return []any{
		config.ShowHome, config.ShowProfile, config.ShowExperience, config.ShowEducation,
		config.ShowCourses, config.ShowAwards, config.ShowProjects, config.ShowSale, config.ShowContact,
	}
}

func (repository *PostgresRepository) Get(context context.Context) (*Config, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(flagColumns, ", "), schema.CVSiteConfig.Table, schema.CVSiteConfig.ID)

	config := &Config{}
	if err := repository.db.QueryRow(context, query, SingletonID).Scan(config.fields()...); err != nil {
		return nil, dberr.Wrap(err, "get_site_config")
	}
	return config, nil
}

func (repository *PostgresRepository) Create(context context.Context, config *Config) error {
	placeholders := make([]string, len(flagColumns))
	for i := range flagColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, %s)`,
		schema.CVSiteConfig.Table, schema.CVSiteConfig.ID, strings.Join(flagColumns, ", "), strings.Join(placeholders, ", "))

	args := append([]any{SingletonID}, config.values()...)
	_, err := repository.db.Exec(context, query, args...)
	return dberr.Wrap(err, "create_site_config")
}

func (repository *PostgresRepository) Update(context context.Context, config *Config) error {
	assignments := make([]string, len(flagColumns))
	for i, column := range flagColumns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+2)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s, %s = NOW() WHERE %s = $1`,
		schema.CVSiteConfig.Table, strings.Join(assignments, ", "), schema.CVSiteConfig.UpdatedAt, schema.CVSiteConfig.ID)

	args := append([]any{SingletonID}, config.values()...)
	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_site_config")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
