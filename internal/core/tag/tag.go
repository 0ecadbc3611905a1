// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tag manages the classification labels applied to academic products.
package tag

// Tag labels academic products. Names are unique; the slug is derived from the name.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

const (
	FieldName = "name"

	// MaxNameLength bounds tag names.
	MaxNameLength = 50
)
