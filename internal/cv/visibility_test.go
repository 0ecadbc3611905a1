// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cv_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/hojadevida/internal/core/siteconfig"
	"github.com/taibuivan/hojadevida/internal/cv"
)

func TestResolve(t *testing.T) {
	hidden := siteconfig.Default()
	hidden.ShowEducation = false

	tests := []struct {
		name    string
		config  *siteconfig.Config
		hide    map[cv.Section]bool
		section cv.Section
		want    bool
	}{
		{"global_false_excluded", &hidden, nil, cv.SectionEducation, false},
		{"global_false_and_hidden_excluded", &hidden, map[cv.Section]bool{cv.SectionEducation: true}, cv.SectionEducation, false},
		{"global_true_no_hide_included", &hidden, nil, cv.SectionCourses, true},
		{"global_true_hidden_excluded", &hidden, map[cv.Section]bool{cv.SectionCourses: true}, cv.SectionCourses, false},
		{"unset_no_hide_included", &hidden, nil, cv.SectionPhoto, true},
		{"unset_hidden_excluded", &hidden, map[cv.Section]bool{cv.SectionPhoto: true}, cv.SectionPhoto, false},
		{"absent_config_included", nil, nil, cv.SectionEducation, true},
		{"absent_config_hidden_excluded", nil, map[cv.Section]bool{cv.SectionAttachments: true}, cv.SectionAttachments, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cv.Resolve(tt.config, tt.hide).Includes(tt.section))
		})
	}
}

func TestResolve_SiteFlags(t *testing.T) {
	config := &siteconfig.Config{}

	visibility := cv.Resolve(config, nil)
	for _, section := range []cv.Section{
		cv.SectionProfile, cv.SectionExperience, cv.SectionEducation, cv.SectionCourses,
		cv.SectionAwards, cv.SectionProjects, cv.SectionSale, cv.SectionContact,
	} {
		assert.False(t, visibility.Includes(section), section)
	}
	for _, section := range []cv.Section{
		cv.SectionPhoto, cv.SectionInterests, cv.SectionLanguages, cv.SectionSocial,
		cv.SectionValues, cv.SectionAttachments,
	} {
		assert.True(t, visibility.Includes(section), section)
	}
}

func TestParseHideFlags(t *testing.T) {
	values := url.Values{
		"ocultar_foto":        {"on"},
		"ocultar_cursos":      {"off"},
		"ocultar_anexos":      {"true"},
		"ocultar_experiencia": {"on"},
		"ocultar_desconocido": {"on"},
	}

	hide := cv.ParseHideFlags(values)
	assert.Equal(t, map[cv.Section]bool{cv.SectionPhoto: true, cv.SectionExperience: true}, hide)
}

func TestVisibility_Flags(t *testing.T) {
	flags := cv.Resolve(nil, map[cv.Section]bool{cv.SectionSocial: true}).Flags()
	assert.Len(t, flags, len(cv.Sections))
	assert.False(t, flags["redes"])
	assert.True(t, flags["anexos"])
}
