// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package product manages academic output: publications, projects, and
// intellectual property registrations. Public pages list them as "trabajos".
package product

import (
	"github.com/taibuivan/hojadevida/internal/core/tag"
	"github.com/taibuivan/hojadevida/pkg/date"
	"github.com/taibuivan/hojadevida/pkg/slice"
)

// Product is one academic work. File is a media reference to its documentation.
type Product struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	RegistrationID string    `json:"registration_id"`
	PublishedOn    date.Date `json:"published_on"`
	File           string    `json:"file"`
	Active         bool      `json:"active"`

	// TagIDs is the write side of the tag relation.
	TagIDs []int64 `json:"tag_ids,omitempty"`
	// Tags is populated on reads, ordered by name.
	Tags []tag.Tag `json:"tags"`
}

// Attachment returns the file reference merged into the PDF export.
func (p *Product) Attachment() string {
	return p.File
}

// TagNames lists the tag names for display.
func (p *Product) TagNames() []string {
	return slice.Map(p.Tags, func(t tag.Tag) string { return t.Name })
}

const (
	FieldName           = "name"
	FieldDescription    = "description"
	FieldRegistrationID = "registration_id"
	FieldPublishedOn    = "published_on"
	FieldFile           = "file"
	FieldTagIDs         = "tag_ids"
)
