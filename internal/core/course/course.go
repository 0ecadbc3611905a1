// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package course manages short courses, workshops, and their certificates.
package course

import "github.com/taibuivan/hojadevida/pkg/date"

type Course struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Institution string     `json:"institution"`
	HeldOn      *date.Date `json:"held_on"`
	Hours       int        `json:"hours"`
	Certificate string     `json:"certificate"`
	Active      bool       `json:"active"`
}

// Attachment returns the certificate reference merged into the PDF export.
func (c *Course) Attachment() string {
	return c.Certificate
}

const (
	FieldName        = "name"
	FieldInstitution = "institution"
	FieldHeldOn      = "held_on"
	FieldHours       = "hours"
	FieldCertificate = "certificate"
)
