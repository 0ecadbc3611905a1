// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package experience manages the employment history of the résumé.
package experience

import "github.com/taibuivan/hojadevida/pkg/date"

// Modality is how the job was performed.
type Modality string

const (
	ModalityOnSite Modality = "PRE"
	ModalityRemote Modality = "REM"
	ModalityHybrid Modality = "HIB"
)

var modalityLabels = map[Modality]string{
	ModalityOnSite: "Presencial",
	ModalityRemote: "Remoto",
	ModalityHybrid: "Híbrido / Mixto",
}

// Label is the human readable modality.
func (m Modality) Label() string {
	if label, ok := modalityLabels[m]; ok {
		return label
	}
	return string(m)
}

// Experience is one job. A nil EndDate means the job is current.
type Experience struct {
	ID           int64      `json:"id"`
	Position     string     `json:"position"`
	Company      string     `json:"company"`
	StartDate    date.Date  `json:"start_date"`
	EndDate      *date.Date `json:"end_date"`
	Description  string     `json:"description"`
	Active       bool       `json:"active"`
	Modality     Modality   `json:"modality"`
	ContactName  string     `json:"contact_name"`
	ContactPhone string     `json:"contact_phone"`
}

// Current reports whether the job has no end date.
func (e *Experience) Current() bool {
	return e.EndDate == nil || e.EndDate.IsZero()
}

// ModalityLabel spells out the work modality for pages.
func (e *Experience) ModalityLabel() string {
	return e.Modality.Label()
}

const (
	FieldPosition     = "position"
	FieldCompany      = "company"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldDescription  = "description"
	FieldModality     = "modality"
	FieldContactName  = "contact_name"
	FieldContactPhone = "contact_phone"
)
