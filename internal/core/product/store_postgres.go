// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/hojadevida/internal/core/tag"
	"github.com/taibuivan/hojadevida/internal/platform/database/schema"
	"github.com/taibuivan/hojadevida/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectColumns = strings.Join(schema.CVAcademicProduct.Columns(), ", ")

func (p *Product) fields() []any {
	return []any{&p.ID, &p.Name, &p.Description, &p.RegistrationID, &p.PublishedOn, &p.File, &p.Active}
}

func (repository *PostgresRepository) ListActive(context context.Context) ([]*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVAcademicProduct.Table, schema.CVAcademicProduct.Active,
		schema.CVAcademicProduct.PublishedOn, schema.CVAcademicProduct.ID)
	return repository.list(context, query, "list_active_products")
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.CVAcademicProduct.Table,
		schema.CVAcademicProduct.PublishedOn, schema.CVAcademicProduct.ID)
	return repository.list(context, query, "list_products")
}

func (repository *PostgresRepository) list(context context.Context, query, action string) ([]*Product, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	products := make([]*Product, 0)
	byID := make(map[int64]*Product)
	for rows.Next() {
		p := &Product{Tags: make([]tag.Tag, 0)}
		if err := rows.Scan(p.fields()...); err != nil {
			return nil, dberr.Wrap(err, "scan_product")
		}
		products = append(products, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	rows.Close()

	if err := repository.attachTags(context, byID); err != nil {
		return nil, err
	}
	return products, nil
}

// attachTags loads the tags of every product in byID with a single query.
func (repository *PostgresRepository) attachTags(context context.Context, byID map[int64]*Product) error {
	if len(byID) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query := fmt.Sprintf(`
		SELECT pt.%s, t.%s, t.%s, t.%s
		FROM %s pt
		JOIN %s t ON t.%s = pt.%s
		WHERE pt.%s = ANY($1)
		ORDER BY t.%s ASC
	`,
		schema.CVAcademicProductTag.ProductID, schema.CVTag.ID, schema.CVTag.Name, schema.CVTag.Slug,
		schema.CVAcademicProductTag.Table,
		schema.CVTag.Table, schema.CVTag.ID, schema.CVAcademicProductTag.TagID,
		schema.CVAcademicProductTag.ProductID,
		schema.CVTag.Name,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_product_tags")
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		var t tag.Tag
		if err := rows.Scan(&productID, &t.ID, &t.Name, &t.Slug); err != nil {
			return dberr.Wrap(err, "scan_product_tag")
		}
		if p, ok := byID[productID]; ok {
			p.Tags = append(p.Tags, t)
			p.TagIDs = append(p.TagIDs, t.ID)
		}
	}

	return dberr.Wrap(rows.Err(), "list_product_tags")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.CVAcademicProduct.Table, schema.CVAcademicProduct.ID)

	p := &Product{Tags: make([]tag.Tag, 0)}
	if err := repository.db.QueryRow(context, query, id).Scan(p.fields()...); err != nil {
		return nil, dberr.Wrap(err, "get_product")
	}

	if err := repository.attachTags(context, map[int64]*Product{p.ID: p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, p *Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.CVAcademicProduct.Table, schema.CVAcademicProduct.Name, schema.CVAcademicProduct.Description,
		schema.CVAcademicProduct.RegistrationID, schema.CVAcademicProduct.PublishedOn,
		schema.CVAcademicProduct.File, schema.CVAcademicProduct.Active, schema.CVAcademicProduct.ID,
	)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(context, query,
			p.Name, p.Description, p.RegistrationID, p.PublishedOn, p.File, p.Active,
		).Scan(&p.ID)
		if err != nil {
			return err
		}
		return replaceTags(context, tx, p.ID, p.TagIDs)
	})
	return dberr.Wrap(err, "create_product")
}

func (repository *PostgresRepository) Update(context context.Context, p *Product) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
	`,
		schema.CVAcademicProduct.Table, schema.CVAcademicProduct.Name, schema.CVAcademicProduct.Description,
		schema.CVAcademicProduct.RegistrationID, schema.CVAcademicProduct.PublishedOn,
		schema.CVAcademicProduct.File, schema.CVAcademicProduct.Active, schema.CVAcademicProduct.UpdatedAt,
		schema.CVAcademicProduct.ID,
	)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(context, query,
			p.ID, p.Name, p.Description, p.RegistrationID, p.PublishedOn, p.File, p.Active,
		)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return replaceTags(context, tx, p.ID, p.TagIDs)
	})
	return dberr.Wrap(err, "update_product")
}

// replaceTags rewrites the tag relation of one product.
func replaceTags(context context.Context, tx pgx.Tx, productID int64, tagIDs []int64) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CVAcademicProductTag.Table, schema.CVAcademicProductTag.ProductID)
	if _, err := tx.Exec(context, deleteQuery, productID); err != nil {
		return err
	}

	if len(tagIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`,
		schema.CVAcademicProductTag.Table, schema.CVAcademicProductTag.ProductID, schema.CVAcademicProductTag.TagID,
	)
	_, err := tx.Exec(context, insertQuery, productID, tagIDs)
	return err
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CVAcademicProduct.Table, schema.CVAcademicProduct.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
