// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package profile owns the identity record of the résumé and the language
// skills listed with it.
package profile

import (
	"strings"

	"github.com/taibuivan/hojadevida/pkg/date"
	"github.com/taibuivan/hojadevida/pkg/query"
)

// Sex is the self-declared sex or gender.
type Sex string

const (
	SexFemale Sex = "Mujer"
	SexMale   Sex = "Hombre"
	SexOther  Sex = "Otro"
)

// MaritalStatus is the civil status shown in the personal data block.
type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "Soltera/o"
	MaritalMarried   MaritalStatus = "Casada/o"
	MaritalDivorced  MaritalStatus = "Divorciada/o"
	MaritalWidowed   MaritalStatus = "Viuda/o"
	MaritalCommonLaw MaritalStatus = "Unión Libre"
)

// DefaultNationality and DefaultBirthplace fill blank fields on save.
const (
	DefaultNationality = "Ecuatoriana"
	DefaultBirthplace  = "No especificado"
)

// Profile is the single identity, contact, and social record of the site.
type Profile struct {
	ID            int64         `json:"id"`
	NationalID    string        `json:"national_id"`
	FirstNames    string        `json:"first_names"`
	LastNames     string        `json:"last_names"`
	Sex           Sex           `json:"sex"`
	MaritalStatus MaritalStatus `json:"marital_status"`
	Nationality   string        `json:"nationality"`
	Birthplace    string        `json:"birthplace"`
	BirthDate     *date.Date    `json:"birth_date"`

	Phone       string `json:"phone"`
	Landline    string `json:"landline"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	Address     string `json:"address"`
	WorkAddress string `json:"work_address"`
	License     string `json:"license"`

	// Photo is a media reference: a path under the media root or an absolute URL.
	Photo     string `json:"photo"`
	Bio       string `json:"bio"`
	Interests string `json:"interests"`
	// Values holds comma separated professional values.
	Values    string `json:"values"`

	LinkedInURL  string `json:"linkedin_url"`
	GitHubURL    string `json:"github_url"`
	InstagramURL string `json:"instagram_url"`
	YouTubeURL   string `json:"youtube_url"`
	TikTokURL    string `json:"tiktok_url"`

	// ShowSection gates the landing and profile pages. The PDF export ignores it.
	ShowSection bool `json:"show_section"`

	Languages []LanguageSkill `json:"languages"`
}

// FullName joins first and last names.
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstNames + " " + p.LastNames)
}

// ValueList splits Values on commas, dropping blanks.
func (p *Profile) ValueList() []string {
	return query.StringSlice(p.Values)
}

// HasSocialLinks reports whether any social network URL is set.
func (p *Profile) HasSocialLinks() bool {
	return p.LinkedInURL != "" || p.GitHubURL != "" || p.InstagramURL != "" ||
		p.YouTubeURL != "" || p.TikTokURL != ""
}

// Language names a spoken language.
type Language string

const (
	LanguageSpanish    Language = "Español"
	LanguageEnglish    Language = "Inglés"
	LanguageFrench     Language = "Francés"
	LanguageGerman     Language = "Alemán"
	LanguageItalian    Language = "Italiano"
	LanguagePortuguese Language = "Portugués"
	LanguageChinese    Language = "Chino"
	LanguageJapanese   Language = "Japonés"
	LanguageRussian    Language = "Ruso"
	LanguageOther      Language = "Otro"
)

// Level is a CEFR proficiency level, or native.
type Level string

const (
	LevelA1     Level = "A1"
	LevelA2     Level = "A2"
	LevelB1     Level = "B1"
	LevelB2     Level = "B2"
	LevelC1     Level = "C1"
	LevelC2     Level = "C2"
	LevelNative Level = "Nativo"
)

var levelLabels = map[Level]string{
	LevelA1:     "A1 - Principiante",
	LevelA2:     "A2 - Elemental",
	LevelB1:     "B1 - Intermedio",
	LevelB2:     "B2 - Intermedio Alto",
	LevelC1:     "C1 - Avanzado",
	LevelC2:     "C2 - Maestría",
	LevelNative: "Nativo",
}

// Label is the human readable form of the level.
func (l Level) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return string(l)
}

// LanguageSkill is one language of the profile. Deleting the profile deletes it.
type LanguageSkill struct {
	ID        int64    `json:"id"`
	ProfileID int64    `json:"profile_id"`
	Name      Language `json:"name"`
	Level     Level    `json:"level"`
}

func (s LanguageSkill) LevelLabel() string {
	return s.Level.Label()
}

// Field names reported in validation errors.
const (
	FieldNationalID    = "national_id"
	FieldFirstNames    = "first_names"
	FieldLastNames     = "last_names"
	FieldSex           = "sex"
	FieldMaritalStatus = "marital_status"
	FieldNationality   = "nationality"
	FieldBirthplace    = "birthplace"
	FieldBirthDate     = "birth_date"
	FieldPhone         = "phone"
	FieldLandline      = "landline"
	FieldEmail         = "email"
	FieldWebsite       = "website"
	FieldAddress       = "address"
	FieldLicense       = "license"
	FieldValues        = "values"
	FieldLinkedIn      = "linkedin_url"
	FieldGitHub        = "github_url"
	FieldInstagram     = "instagram_url"
	FieldYouTube       = "youtube_url"
	FieldTikTok        = "tiktok_url"
	FieldLanguage      = "name"
	FieldLevel         = "level"
)
