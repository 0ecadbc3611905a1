// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package award manages prizes, scholarships, and honourable mentions.
package award

import "github.com/taibuivan/hojadevida/pkg/date"

type Award struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Institution      string     `json:"institution"`
	AwardedOn        *date.Date `json:"awarded_on"`
	RegistrationCode string     `json:"registration_code"`
	Active           bool       `json:"active"`
}

const (
	FieldName             = "name"
	FieldInstitution      = "institution"
	FieldAwardedOn        = "awarded_on"
	FieldRegistrationCode = "registration_code"
)
