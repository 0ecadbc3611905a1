// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package experience

import "context"

type Repository interface {
	// ListActive returns active jobs by start date, oldest first.
	ListActive(context context.Context) ([]*Experience, error)
	ListAll(context context.Context) ([]*Experience, error)
	Get(context context.Context, id int64) (*Experience, error)
	Create(context context.Context, e *Experience) error
	Update(context context.Context, e *Experience) error
	Delete(context context.Context, id int64) error
}
