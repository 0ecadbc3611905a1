// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package award

import "context"

type Repository interface {
	// ListActive returns active rows by award date, oldest first.
	ListActive(context context.Context) ([]*Award, error)
	ListAll(context context.Context) ([]*Award, error)
	Get(context context.Context, id int64) (*Award, error)
	Create(context context.Context, a *Award) error
	Update(context context.Context, a *Award) error
	Delete(context context.Context, id int64) error
}
