// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package siteconfig

import "context"

type Repository interface {
	// Get returns dberr.ErrNotFound while the row has not been created.
	Get(context context.Context) (*Config, error)
	Create(context context.Context, config *Config) error
	Update(context context.Context, config *Config) error
}
