// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

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

// fields returns scan targets matching schema.CVProfile.Columns().
func (p *Profile) fields() []any {
	return []any{
		&p.ID, &p.NationalID, &p.FirstNames, &p.LastNames, &p.Sex, &p.MaritalStatus,
		&p.Nationality, &p.Birthplace, &p.BirthDate, &p.Phone, &p.Landline, &p.Email,
		&p.Website, &p.Address, &p.WorkAddress, &p.License, &p.Photo, &p.Bio,
		&p.Interests, &p.Values, &p.LinkedInURL, &p.GitHubURL, &p.InstagramURL,
		&p.YouTubeURL, &p.TikTokURL, &p.ShowSection,
	}
}

// values returns the writable columns (everything but the ID), in column order.
func (p *Profile) values() []any {
	return []any{
		p.NationalID, p.FirstNames, p.LastNames, p.Sex, p.MaritalStatus,
		p.Nationality, p.Birthplace, p.BirthDate, p.Phone, p.Landline, p.Email,
		p.Website, p.Address, p.WorkAddress, p.License, p.Photo, p.Bio,
		p.Interests, p.Values, p.LinkedInURL, p.GitHubURL, p.InstagramURL,
		p.YouTubeURL, p.TikTokURL, p.ShowSection,
	}
}

func (repository *PostgresRepository) First(context context.Context) (*Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT 1`,
		strings.Join(schema.CVProfile.Columns(), ", "), schema.CVProfile.Table, schema.CVProfile.ID)

	p := &Profile{}
	if err := repository.db.QueryRow(context, query).Scan(p.fields()...); err != nil {
		return nil, dberr.Wrap(err, "get_first_profile")
	}

	languages, err := repository.listLanguages(context, p.ID)
	if err != nil {
		return nil, err
	}
	p.Languages = languages

	return p, nil
}

func (repository *PostgresRepository) listLanguages(context context.Context, profileID int64) ([]LanguageSkill, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.CVLanguageSkill.ID, schema.CVLanguageSkill.ProfileID, schema.CVLanguageSkill.Name,
		schema.CVLanguageSkill.Level, schema.CVLanguageSkill.Table,
		schema.CVLanguageSkill.ProfileID, schema.CVLanguageSkill.ID)

	rows, err := repository.db.Query(context, query, profileID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_languages")
	}
	defer rows.Close()

	languages := make([]LanguageSkill, 0)
	for rows.Next() {
		var skill LanguageSkill
		if err := rows.Scan(&skill.ID, &skill.ProfileID, &skill.Name, &skill.Level); err != nil {
			return nil, dberr.Wrap(err, "scan_language")
		}
		languages = append(languages, skill)
	}

	return languages, dberr.Wrap(rows.Err(), "list_languages")
}

func (repository *PostgresRepository) Create(context context.Context, p *Profile) error {
	columns := schema.CVProfile.Columns()[1:]
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		schema.CVProfile.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), schema.CVProfile.ID)

	err := repository.db.QueryRow(context, query, p.values()...).Scan(&p.ID)
	return dberr.Wrap(err, "create_profile")
}

func (repository *PostgresRepository) Update(context context.Context, p *Profile) error {
	columns := schema.CVProfile.Columns()[1:]
	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+2)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s, %s = NOW() WHERE %s = $1`,
		schema.CVProfile.Table, strings.Join(assignments, ", "), schema.CVProfile.UpdatedAt, schema.CVProfile.ID)

	cmd, err := repository.db.Exec(context, query, append([]any{p.ID}, p.values()...)...)
	if err != nil {
		return dberr.Wrap(err, "update_profile")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) AddLanguage(context context.Context, skill *LanguageSkill) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.CVLanguageSkill.Table, schema.CVLanguageSkill.ProfileID, schema.CVLanguageSkill.Name,
		schema.CVLanguageSkill.Level, schema.CVLanguageSkill.ID)

	err := repository.db.QueryRow(context, query, skill.ProfileID, skill.Name, skill.Level).Scan(&skill.ID)
	return dberr.Wrap(err, "add_language")
}

func (repository *PostgresRepository) DeleteLanguage(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CVLanguageSkill.Table, schema.CVLanguageSkill.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_language")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
