// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

type Repository interface {
	// ListActive returns active products with tags by publication date, oldest first.
	ListActive(context context.Context) ([]*Product, error)
	ListAll(context context.Context) ([]*Product, error)
	Get(context context.Context, id int64) (*Product, error)
	// Create and Update replace the tag relation with p.TagIDs in the same transaction.
	Create(context context.Context, p *Product) error
	Update(context context.Context, p *Product) error
	Delete(context context.Context, id int64) error
}
