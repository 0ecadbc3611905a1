// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cv

import (
	"net/url"

	"github.com/taibuivan/hojadevida/internal/core/siteconfig"
	"github.com/taibuivan/hojadevida/internal/platform/constants"
	"github.com/taibuivan/hojadevida/pkg/query"
)

// Section names a block of the résumé. The value doubles as the suffix of the
// ocultar_<section> query parameter.
type Section string

const (
	SectionPhoto       Section = "foto"
	SectionContact     Section = "contacto"
	SectionProfile     Section = "perfil"
	SectionInterests   Section = "intereses"
	SectionExperience  Section = "experiencia"
	SectionEducation   Section = "educacion"
	SectionCourses     Section = "cursos"
	SectionLanguages   Section = "idiomas"
	SectionSocial      Section = "redes"
	SectionValues      Section = "valores"
	SectionProjects    Section = "proyectos"
	SectionAwards      Section = "reconocimientos"
	SectionSale        Section = "venta"
	SectionAttachments Section = "anexos"
)

// Sections lists every section in the order the export form shows them.
var Sections = []Section{
	SectionPhoto, SectionContact, SectionProfile, SectionInterests,
	SectionExperience, SectionEducation, SectionCourses, SectionLanguages,
	SectionSocial, SectionValues, SectionProjects, SectionAwards,
	SectionSale, SectionAttachments,
}

var sectionLabels = map[Section]string{
	SectionPhoto:       "Foto",
	SectionContact:     "Datos de contacto",
	SectionProfile:     "Perfil",
	SectionInterests:   "Intereses",
	SectionExperience:  "Experiencia laboral",
	SectionEducation:   "Educación",
	SectionCourses:     "Cursos y capacitaciones",
	SectionLanguages:   "Idiomas",
	SectionSocial:      "Redes sociales",
	SectionValues:      "Valores",
	SectionProjects:    "Productos académicos",
	SectionAwards:      "Reconocimientos",
	SectionSale:        "Venta",
	SectionAttachments: "Anexos (certificados y documentos)",
}

// Label is the Spanish caption shown on the export form.
func (s Section) Label() string {
	if label, ok := sectionLabels[s]; ok {
		return label
	}
	return string(s)
}

// Visibility is the effective set of sections included in one export.
type Visibility struct {
	included map[Section]bool
}

// Includes reports whether section is part of the export.
func (v Visibility) Includes(section Section) bool {
	return v.included[section]
}

// Flags returns the visibility keyed by section name, for templates.
func (v Visibility) Flags() map[string]bool {
	flags := make(map[string]bool, len(Sections))
	for _, section := range Sections {
		flags[string(section)] = v.included[section]
	}
	return flags
}

// siteFlag returns the site-wide switch for section. ok is false for sections
// without one.
func siteFlag(config *siteconfig.Config, section Section) (shown, ok bool) {
	switch section {
	case SectionProfile:
		return config.ShowProfile, true
	case SectionExperience:
		return config.ShowExperience, true
	case SectionEducation:
		return config.ShowEducation, true
	case SectionCourses:
		return config.ShowCourses, true
	case SectionAwards:
		return config.ShowAwards, true
	case SectionProjects:
		return config.ShowProjects, true
	case SectionSale:
		return config.ShowSale, true
	case SectionContact:
		return config.ShowContact, true
	default:
		return false, false
	}
}

// Resolve combines the site-wide switches with the request's opt-outs. A
// section is included when its switch is on or absent and it is not hidden.
// A nil config switches nothing off.
func Resolve(config *siteconfig.Config, hide map[Section]bool) Visibility {
	included := make(map[Section]bool, len(Sections))
	for _, section := range Sections {
		siteWide := true
		if config != nil {
			if shown, ok := siteFlag(config, section); ok {
				siteWide = shown
			}
		}
		included[section] = siteWide && !hide[section]
	}
	return Visibility{included: included}
}

// ParseHideFlags reads ocultar_<section> parameters. Only "on" hides.
func ParseHideFlags(values url.Values) map[Section]bool {
	hide := make(map[Section]bool)
	for _, section := range Sections {
		if query.Checked(values, constants.HideParamPrefix+string(section)) {
			hide[section] = true
		}
	}
	return hide
}
