// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package render executes the Django-syntax page templates through pongo2.

Templates are loaded from an [fs.FS] (the embedded web/templates tree in
production, an in-memory map in tests) and cached after first use unless the
renderer runs in debug mode.

Every template sees two globals:

  - STATIC_URL: prefix for bundled assets.
  - MEDIA_URL: prefix for uploaded files.

Filters registered by this package:

  - media: turns a stored file reference into a URL (absolute URLs pass through).
  - fecha: formats a calendar day as dd/mm/yyyy, empty when unset.
  - mes: formats a calendar day as "Mes yyyy" in Spanish, empty when unset.
*/
package render

import (
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/taibuivan/hojadevida/pkg/date"
)

// Context is the variable map handed to a template.
type Context = pongo2.Context

// Options configures a [Renderer].
type Options struct {
	StaticURL string
	MediaURL  string

	// Debug disables the template cache so edits show up without a restart.
	Debug bool
}

// Renderer executes named templates from a single template set.
type Renderer struct {
	set *pongo2.TemplateSet
}

// New builds a renderer over files. Template names are paths inside files.
func New(files fs.FS, options Options) *Renderer {
	set := pongo2.NewSet("hojadevida", pongo2.NewFSLoader(files))
	set.Debug = options.Debug
	set.Globals = pongo2.Context{
		"STATIC_URL": options.StaticURL,
		"MEDIA_URL":  options.MediaURL,
	}

	return &Renderer{set: set}
}

// Render executes the template called name with data and returns the output.
func (renderer *Renderer) Render(name string, data Context) ([]byte, error) {
	var (
		template *pongo2.Template
		err      error
	)
	if renderer.set.Debug {
		template, err = renderer.set.FromFile(name)
	} else {
		template, err = renderer.set.FromCache(name)
	}
	if err != nil {
		return nil, fmt.Errorf("render: load %s: %w", name, err)
	}

	out, err := template.ExecuteBytes(data)
	if err != nil {
		return nil, fmt.Errorf("render: execute %s: %w", name, err)
	}
	return out, nil
}

// # Filters

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func init() {
	pongo2.RegisterFilter("media", filterMedia)
	pongo2.RegisterFilter("fecha", filterFecha)
	pongo2.RegisterFilter("mes", filterMes)
}

// MediaHref resolves a stored reference against the media URL prefix.
func MediaHref(ref, mediaURL string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"), strings.HasPrefix(ref, mediaURL):
		return ref
	default:
		return strings.TrimSuffix(mediaURL, "/") + "/" + strings.TrimPrefix(ref, "/")
	}
}

func filterMedia(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(MediaHref(in.String(), param.String())), nil
}

func filterFecha(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	day, ok := dayOf(in.Interface())
	if !ok {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(day.Format("02/01/2006")), nil
}

func filterMes(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	day, ok := dayOf(in.Interface())
	if !ok {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(fmt.Sprintf("%s %d", monthNames[day.Month()-1], day.Year())), nil
}

// dayOf accepts the date shapes the domain packages expose.
func dayOf(value any) (time.Time, bool) {
	var day time.Time
	switch v := value.(type) {
	case date.Date:
		day = v.Time
	case *date.Date:
		if v == nil {
			return time.Time{}, false
		}
		day = v.Time
	case time.Time:
		day = v
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		day = *v
	default:
		return time.Time{}, false
	}
	return day, !day.IsZero()
}
