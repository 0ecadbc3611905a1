// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import "context"

// Repository persists the profile and its language skills.
type Repository interface {
	// First returns the oldest profile with its languages, or dberr.ErrNotFound.
	First(context context.Context) (*Profile, error)
	Create(context context.Context, p *Profile) error
	Update(context context.Context, p *Profile) error

	AddLanguage(context context.Context, skill *LanguageSkill) error
	DeleteLanguage(context context.Context, id int64) error
}
