// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package education

import "context"

type Repository interface {
	// ListActive returns active rows by graduation date, oldest first.
	ListActive(context context.Context) ([]*Education, error)
	ListAll(context context.Context) ([]*Education, error)
	Get(context context.Context, id int64) (*Education, error)
	Create(context context.Context, ed *Education) error
	Update(context context.Context, ed *Education) error
	Delete(context context.Context, id int64) error
}
