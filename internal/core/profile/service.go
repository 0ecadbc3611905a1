// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the profile regardless of its show_section flag.
func (service *Service) Get(context context.Context) (*Profile, error) {
	return service.repo.First(context)
}

// Current is like [Service.Get] but returns nil when no profile exists.
func (service *Service) Current(context context.Context) (*Profile, error) {
	p, err := service.repo.First(context)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	return p, err
}

// Visible returns the profile for public pages, or nil when there is none or
// its section is switched off.
func (service *Service) Visible(context context.Context) (*Profile, error) {
	p, err := service.repo.First(context)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !p.ShowSection {
		return nil, nil
	}
	return p, nil
}

// Save creates the profile on first use and updates it afterwards.
func (service *Service) Save(context context.Context, p *Profile) error {
	normalize(p)
	if err := validateProfile(p); err != nil {
		return err
	}

	existing, err := service.repo.First(context)
	switch {
	case apperr.IsNotFound(err):
		if err := service.repo.Create(context, p); err != nil {
			return err
		}
		p.Languages = []LanguageSkill{}
		service.logger.Info("profile_created", slog.Int64("profile_id", p.ID))
		return nil
	case err != nil:
		return err
	}

	p.ID = existing.ID
	if err := service.repo.Update(context, p); err != nil {
		return err
	}
	p.Languages = existing.Languages

	service.logger.Info("profile_updated", slog.Int64("profile_id", p.ID))
	return nil
}

// AddLanguage attaches a language skill to the profile.
func (service *Service) AddLanguage(context context.Context, skill *LanguageSkill) error {
	validator := &validate.Validator{}
	validator.
		OneOf(FieldLanguage, string(skill.Name), languageNames...).
		OneOf(FieldLevel, string(skill.Level), levelNames...)
	if err := validator.Err(); err != nil {
		return err
	}

	p, err := service.repo.First(context)
	if err != nil {
		return err
	}
	skill.ProfileID = p.ID

	if err := service.repo.AddLanguage(context, skill); err != nil {
		return err
	}

	service.logger.Info("language_added", slog.String("language", string(skill.Name)), slog.String("level", string(skill.Level)))
	return nil
}

// RemoveLanguage deletes a language skill.
func (service *Service) RemoveLanguage(context context.Context, id int64) error {
	if err := service.repo.DeleteLanguage(context, id); err != nil {
		return err
	}

	service.logger.Warn("language_removed", slog.Int64("language_id", id))
	return nil
}

var (
	sexNames     = []string{string(SexFemale), string(SexMale), string(SexOther)}
	maritalNames = []string{
		string(MaritalSingle), string(MaritalMarried), string(MaritalDivorced),
		string(MaritalWidowed), string(MaritalCommonLaw),
	}
	languageNames = []string{
		string(LanguageSpanish), string(LanguageEnglish), string(LanguageFrench), string(LanguageGerman),
		string(LanguageItalian), string(LanguagePortuguese), string(LanguageChinese),
		string(LanguageJapanese), string(LanguageRussian), string(LanguageOther),
	}
	levelNames = []string{
		string(LevelA1), string(LevelA2), string(LevelB1), string(LevelB2),
		string(LevelC1), string(LevelC2), string(LevelNative),
	}
)

func normalize(p *Profile) {
	p.NationalID = strings.TrimSpace(p.NationalID)
	p.FirstNames = strings.TrimSpace(p.FirstNames)
	p.LastNames = strings.TrimSpace(p.LastNames)
	p.Email = strings.TrimSpace(p.Email)

	if strings.TrimSpace(p.Nationality) == "" {
		p.Nationality = DefaultNationality
	}
	if strings.TrimSpace(p.Birthplace) == "" {
		p.Birthplace = DefaultBirthplace
	}
}

func validateProfile(p *Profile) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldNationalID, p.NationalID).MaxLen(FieldNationalID, p.NationalID, 13).
		Required(FieldFirstNames, p.FirstNames).MaxLen(FieldFirstNames, p.FirstNames, 100).
		Required(FieldLastNames, p.LastNames).MaxLen(FieldLastNames, p.LastNames, 100).
		OneOf(FieldSex, string(p.Sex), sexNames...).
		OneOf(FieldMaritalStatus, string(p.MaritalStatus), maritalNames...).
		MaxLen(FieldNationality, p.Nationality, 50).
		MaxLen(FieldBirthplace, p.Birthplace, 100).
		BirthDate(FieldBirthDate, p.BirthDate.Ptr()).
		Required(FieldPhone, p.Phone).MaxLen(FieldPhone, p.Phone, 15).
		MaxLen(FieldLandline, p.Landline, 15).
		Required(FieldEmail, p.Email).Email(FieldEmail, p.Email).
		URL(FieldWebsite, p.Website).
		Required(FieldAddress, p.Address).
		MaxLen(FieldLicense, p.License, 20).
		MaxLen(FieldValues, p.Values, 255).
		URL(FieldLinkedIn, p.LinkedInURL).
		URL(FieldGitHub, p.GitHubURL).
		URL(FieldInstagram, p.InstagramURL).
		URL(FieldYouTube, p.YouTubeURL).
		URL(FieldTikTok, p.TikTokURL)

	return validator.Err()
}
