// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "context"

type Repository interface {
	// List returns every tag ordered by name.
	List(context context.Context) ([]*Tag, error)
	GetBySlug(context context.Context, slug string) (*Tag, error)
	Create(context context.Context, t *Tag) error
}
