// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course

import "context"

type Repository interface {
	// ListActive returns active rows by date held, oldest first.
	ListActive(context context.Context) ([]*Course, error)
	ListAll(context context.Context) ([]*Course, error)
	Get(context context.Context, id int64) (*Course, error)
	Create(context context.Context, c *Course) error
	Update(context context.Context, c *Course) error
	Delete(context context.Context, id int64) error
}
