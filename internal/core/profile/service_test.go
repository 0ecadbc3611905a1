// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/core/profile"
	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/dberr"
	"github.com/taibuivan/hojadevida/pkg/date"
)

type memoryRepository struct {
	profile   *profile.Profile
	nextSkill int64
}

func (repo *memoryRepository) First(_ context.Context) (*profile.Profile, error) {
	if repo.profile == nil {
		return nil, dberr.ErrNotFound
	}
	copied := *repo.profile
	return &copied, nil
}

func (repo *memoryRepository) Create(_ context.Context, p *profile.Profile) error {
	p.ID = 1
	copied := *p
	repo.profile = &copied
	return nil
}

func (repo *memoryRepository) Update(_ context.Context, p *profile.Profile) error {
	languages := repo.profile.Languages
	copied := *p
	copied.Languages = languages
	repo.profile = &copied
	return nil
}

func (repo *memoryRepository) AddLanguage(_ context.Context, skill *profile.LanguageSkill) error {
	repo.nextSkill++
	skill.ID = repo.nextSkill
	repo.profile.Languages = append(repo.profile.Languages, *skill)
	return nil
}

func (repo *memoryRepository) DeleteLanguage(_ context.Context, id int64) error {
	for i, skill := range repo.profile.Languages {
		if skill.ID == id {
			repo.profile.Languages = append(repo.profile.Languages[:i], repo.profile.Languages[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func newService(repo profile.Repository) *profile.Service {
	return profile.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validProfile() *profile.Profile {
	return &profile.Profile{
		NationalID:    "1312345678",
		FirstNames:    "Ana María",
		LastNames:     "Zambrano Vera",
		Sex:           profile.SexFemale,
		MaritalStatus: profile.MaritalSingle,
		Phone:         "0991234567",
		Email:         "ana@example.com",
		Address:       "Av. 4 de Noviembre, Manta",
		Values:        "Responsabilidad, Puntualidad, ,Trabajo en equipo",
		ShowSection:   true,
	}
}

func TestSave_CreatesThenUpdates(t *testing.T) {
	repo := &memoryRepository{}
	service := newService(repo)

	first := validProfile()
	require.NoError(t, service.Save(context.Background(), first))
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, profile.DefaultNationality, repo.profile.Nationality)
	assert.Equal(t, profile.DefaultBirthplace, repo.profile.Birthplace)

	second := validProfile()
	second.Phone = "0987654321"
	require.NoError(t, service.Save(context.Background(), second))
	assert.Equal(t, int64(1), second.ID)
	assert.Equal(t, "0987654321", repo.profile.Phone)
}

func TestSave_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *profile.Profile)
		field  string
	}{
		{"blank_names", func(p *profile.Profile) { p.FirstNames = "  " }, profile.FieldFirstNames},
		{"unknown_sex", func(p *profile.Profile) { p.Sex = "X" }, profile.FieldSex},
		{"bad_email", func(p *profile.Profile) { p.Email = "ana" }, profile.FieldEmail},
		{"bad_url", func(p *profile.Profile) { p.GitHubURL = "github.com/ana" }, profile.FieldGitHub},
		{"birth_before_1900", func(p *profile.Profile) { p.BirthDate = &date.Date{Time: time.Date(1899, 5, 1, 0, 0, 0, 0, time.UTC)} }, profile.FieldBirthDate},
		{"birth_in_future", func(p *profile.Profile) { d := date.Of(time.Now().AddDate(1, 0, 0)); p.BirthDate = &d }, profile.FieldBirthDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)

			err := newService(&memoryRepository{}).Save(context.Background(), p)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

func TestVisible(t *testing.T) {
	repo := &memoryRepository{}
	service := newService(repo)

	p, err := service.Visible(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)

	hidden := validProfile()
	hidden.ShowSection = false
	require.NoError(t, service.Save(context.Background(), hidden))

	p, err = service.Visible(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)

	// The export path still sees it.
	p, err = service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana María Zambrano Vera", p.FullName())
}

func TestLanguages(t *testing.T) {
	repo := &memoryRepository{}
	service := newService(repo)
	require.NoError(t, service.Save(context.Background(), validProfile()))

	skill := &profile.LanguageSkill{Name: profile.LanguageEnglish, Level: profile.LevelB2}
	require.NoError(t, service.AddLanguage(context.Background(), skill))
	assert.Equal(t, int64(1), skill.ProfileID)
	assert.Len(t, repo.profile.Languages, 1)

	err := service.AddLanguage(context.Background(), &profile.LanguageSkill{Name: "Klingon", Level: profile.LevelA1})
	assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)

	require.NoError(t, service.RemoveLanguage(context.Background(), skill.ID))
	assert.Empty(t, repo.profile.Languages)
	assert.True(t, apperr.IsNotFound(service.RemoveLanguage(context.Background(), skill.ID)))
}

func TestProfileHelpers(t *testing.T) {
	p := validProfile()
	assert.Equal(t, []string{"Responsabilidad", "Puntualidad", "Trabajo en equipo"}, p.ValueList())
	assert.False(t, p.HasSocialLinks())
	p.LinkedInURL = "https://linkedin.com/in/ana"
	assert.True(t, p.HasSocialLinks())
	assert.Equal(t, "B2 - Intermedio Alto", profile.LevelB2.Label())
}
