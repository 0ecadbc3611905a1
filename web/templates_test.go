// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web_test

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/core/experience"
	"github.com/taibuivan/hojadevida/internal/core/profile"
	"github.com/taibuivan/hojadevida/internal/core/sale"
	"github.com/taibuivan/hojadevida/internal/core/siteconfig"
	"github.com/taibuivan/hojadevida/internal/platform/render"
	"github.com/taibuivan/hojadevida/pkg/date"
	"github.com/taibuivan/hojadevida/pkg/pointer"
	"github.com/taibuivan/hojadevida/web"
)

func sampleProfile() *profile.Profile {
	return &profile.Profile{
		FirstNames:  "Ana María",
		LastNames:   "Torres",
		Email:       "ana@example.com",
		Photo:       "perfil/ana.jpg",
		BirthDate:   pointer.To(date.New(1990, time.May, 2)),
		Values:      "Honestidad, Constancia",
		GitHubURL:   "https://github.com/ana",
		ShowSection: true,
		Languages:   []profile.LanguageSkill{{Name: profile.LanguageEnglish, Level: profile.LevelB2}},
	}
}

func newRenderer() *render.Renderer {
	return render.New(web.Templates(), render.Options{StaticURL: "/static/", MediaURL: "/media/"})
}

func TestTemplates_Render(t *testing.T) {
	renderer := newRenderer()
	config := &siteconfig.Config{ShowProfile: true, ShowExperience: true, ShowSale: true}

	experiences := []*experience.Experience{{
		Position:  "Desarrolladora",
		Company:   "Acme",
		StartDate: date.New(2021, time.March, 1),
		Modality:  experience.ModalityRemote,
	}}
	items := []*sale.Item{{Name: "Bicicleta", Price: 120.5, Condition: sale.ConditionGood, Stock: 1}}

	pages := map[string]render.Context{
		"inicio.html":          {"perfil": sampleProfile(), "config": config},
		"perfil.html":          {"perfil": sampleProfile(), "config": config},
		"experiencia.html":     {"perfil": sampleProfile(), "config": config, "experiencias": experiences},
		"educacion.html":       {"config": config},
		"cursos.html":          {"config": config},
		"reconocimientos.html": {"config": config},
		"trabajos.html":        {"config": config},
		"venta.html":           {"config": config, "productos": items},
		"contacto.html":        {"perfil": sampleProfile(), "config": config},
		"error.html":           {"status": 404, "mensaje": "Not Found"},
	}

	for name, data := range pages {
		t.Run(name, func(t *testing.T) {
			out, err := renderer.Render(name, data)
			require.NoError(t, err)
			assert.Contains(t, string(out), "/static/css/site.css")
		})
	}
}

func TestTemplates_ExperiencePage(t *testing.T) {
	out, err := newRenderer().Render("experiencia.html", render.Context{
		"experiencias": []*experience.Experience{{
			Position:  "Desarrolladora",
			Company:   "Acme",
			StartDate: date.New(2021, time.March, 1),
			Modality:  experience.ModalityRemote,
		}},
	})
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, "Marzo 2021 - Actualidad")
	assert.Contains(t, page, experience.ModalityRemote.Label())
}

func TestTemplates_ExportForm(t *testing.T) {
	out, err := newRenderer().Render("configurar_cv.html", render.Context{
		"secciones": []struct{ Name, Label string }{{Name: "ocultar_foto", Label: "Foto"}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), `name="ocultar_foto"`)
	assert.Contains(t, string(out), `action="/descargar-pdf/"`)
}

func TestTemplates_CVBody(t *testing.T) {
	renderer := newRenderer()
	perfil := sampleProfile()

	out, err := renderer.Render("cv_pdf.html", render.Context{
		"perfil":   perfil,
		"visible":  map[string]bool{"foto": true, "redes": true},
		"idiomas":  perfil.Languages,
		"valores":  perfil.ValueList(),
		"generado": date.New(2026, time.January, 15),
	})
	require.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "/media/perfil/ana.jpg")
	assert.Contains(t, body, "https://github.com/ana")
	assert.Contains(t, body, "Constancia")
	assert.Contains(t, body, "15/01/2026")
	assert.NotContains(t, body, "ana@example.com", "contact hidden when its flag is off")
}

func TestStatic_HasStylesheets(t *testing.T) {
	for _, name := range []string{"css/site.css", "css/cv.css"} {
		_, err := fs.Stat(web.Static(), name)
		assert.NoError(t, err, name)
	}
}

func TestTemplates_ProfileWithoutRecord(t *testing.T) {
	var perfil *profile.Profile

	out, err := newRenderer().Render("perfil.html", render.Context{"perfil": perfil, "config": siteconfig.Default()})
	require.NoError(t, err)
	assert.Contains(t, string(out), "El perfil no está disponible.")
}
