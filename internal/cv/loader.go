// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cv

import (
	"context"

	"github.com/taibuivan/hojadevida/internal/core/award"
	"github.com/taibuivan/hojadevida/internal/core/course"
	"github.com/taibuivan/hojadevida/internal/core/education"
	"github.com/taibuivan/hojadevida/internal/core/experience"
	"github.com/taibuivan/hojadevida/internal/core/product"
	"github.com/taibuivan/hojadevida/internal/core/profile"
	"github.com/taibuivan/hojadevida/internal/core/sale"
)

// Document is everything one export renders. Lists hold active records in
// their natural order; sections left out of the export stay empty.
type Document struct {
	Profile     *profile.Profile
	Experiences []*experience.Experience
	Education   []*education.Education
	Courses     []*course.Course
	Awards      []*award.Award
	Products    []*product.Product
	SaleItems   []*sale.Item
}

type (
	ProfileSource interface {
		Current(context context.Context) (*profile.Profile, error)
	}
	ExperienceSource interface {
		ListActive(context context.Context) ([]*experience.Experience, error)
	}
	EducationSource interface {
		ListActive(context context.Context) ([]*education.Education, error)
	}
	CourseSource interface {
		ListActive(context context.Context) ([]*course.Course, error)
	}
	AwardSource interface {
		ListActive(context context.Context) ([]*award.Award, error)
	}
	ProductSource interface {
		ListActive(context context.Context) ([]*product.Product, error)
	}
	SaleSource interface {
		ListActive(context context.Context) ([]*sale.Item, error)
	}
)

// Sources groups the read side of every section.
type Sources struct {
	Profiles    ProfileSource
	Experiences ExperienceSource
	Education   EducationSource
	Courses     CourseSource
	Awards      AwardSource
	Products    ProductSource
	Sale        SaleSource
}

// Loader fetches the records of visible sections.
type Loader struct {
	sources Sources
}

func NewLoader(sources Sources) *Loader {
	return &Loader{sources: sources}
}

// Load reads the profile, whatever its show_section flag, and the active
// records of every section included in visibility.
func (loader *Loader) Load(context context.Context, visibility Visibility) (*Document, error) {
	document := &Document{}

	var err error
	if document.Profile, err = loader.sources.Profiles.Current(context); err != nil {
		return nil, err
	}

	if visibility.Includes(SectionExperience) {
		if document.Experiences, err = loader.sources.Experiences.ListActive(context); err != nil {
			return nil, err
		}
	}
	if visibility.Includes(SectionEducation) {
		if document.Education, err = loader.sources.Education.ListActive(context); err != nil {
			return nil, err
		}
	}
	if visibility.Includes(SectionCourses) {
		if document.Courses, err = loader.sources.Courses.ListActive(context); err != nil {
			return nil, err
		}
	}
	if visibility.Includes(SectionAwards) {
		if document.Awards, err = loader.sources.Awards.ListActive(context); err != nil {
			return nil, err
		}
	}
	if visibility.Includes(SectionProjects) {
		if document.Products, err = loader.sources.Products.ListActive(context); err != nil {
			return nil, err
		}
	}
	if visibility.Includes(SectionSale) {
		if document.SaleItems, err = loader.sources.Sale.ListActive(context); err != nil {
			return nil, err
		}
	}

	return document, nil
}
