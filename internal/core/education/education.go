// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package education manages academic degrees and their certificates.
package education

import "github.com/taibuivan/hojadevida/pkg/date"

// Education is one degree. Certificate is a media reference to its PDF.
type Education struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Institution string    `json:"institution"`
	StartDate   date.Date `json:"start_date"`
	EndDate     date.Date `json:"end_date"`
	Certificate string    `json:"certificate"`
	Active      bool      `json:"active"`
}

// Attachment returns the certificate reference merged into the PDF export.
func (e *Education) Attachment() string {
	return e.Certificate
}

const (
	FieldTitle       = "title"
	FieldInstitution = "institution"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldCertificate = "certificate"
)
