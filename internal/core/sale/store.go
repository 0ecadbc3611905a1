// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sale

import "context"

type Repository interface {
	// ListActive returns active rows by publication date, oldest first.
	ListActive(context context.Context) ([]*Item, error)
	ListAll(context context.Context) ([]*Item, error)
	Get(context context.Context, id int64) (*Item, error)
	Create(context context.Context, item *Item) error
	Update(context context.Context, item *Item) error
	Delete(context context.Context, id int64) error
}
