// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cv

import (
	"github.com/taibuivan/hojadevida/internal/platform/render"
	"github.com/taibuivan/hojadevida/pkg/date"
)

// TemplatePDF is the résumé body template.
const TemplatePDF = "cv_pdf.html"

// only returns records when section is included and nil otherwise.
func only[T any](visibility Visibility, section Section, records []T) []T {
	if !visibility.Includes(section) {
		return nil
	}
	return records
}

// templateContext lays the document out for cv_pdf.html. Hidden sections get
// empty lists even when the document carries records for them.
func templateContext(document *Document, visibility Visibility) render.Context {
	context := render.Context{
		"perfil":          document.Profile,
		"visible":         visibility.Flags(),
		"experiencias":    only(visibility, SectionExperience, document.Experiences),
		"estudios":        only(visibility, SectionEducation, document.Education),
		"cursos":          only(visibility, SectionCourses, document.Courses),
		"reconocimientos": only(visibility, SectionAwards, document.Awards),
		"proyectos":       only(visibility, SectionProjects, document.Products),
		"venta":           only(visibility, SectionSale, document.SaleItems),
		"generado":        date.Today(),
	}

	if document.Profile != nil {
		context["idiomas"] = only(visibility, SectionLanguages, document.Profile.Languages)
		context["valores"] = only(visibility, SectionValues, document.Profile.ValueList())
	}
	return context
}
