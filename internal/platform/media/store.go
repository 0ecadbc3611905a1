// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/pkg/slug"
	"github.com/taibuivan/hojadevida/pkg/uuid"
)

// Upload directories, one per kind of record that carries a file.
const (
	SectionProfile   = "perfil"
	SectionEducation = "educacion"
	SectionCourses   = "cursos"
	SectionProducts  = "academicos"
	SectionSale      = "venta"
)

var sections = map[string]bool{
	SectionProfile:   true,
	SectionEducation: true,
	SectionCourses:   true,
	SectionProducts:  true,
	SectionSale:      true,
}

// Store writes uploaded files under Root.
type Store struct {
	Root     string
	MaxBytes int64
}

// Save copies content into the section directory under a collision-free name
// and returns the media-relative reference to store on the record.
func (store *Store) Save(section, filename string, content io.Reader) (string, error) {
	if !sections[section] {
		return "", apperr.ValidationError("Unknown upload section",
			apperr.FieldError{Field: "section", Message: "Must be one of: perfil, educacion, cursos, academicos, venta"})
	}

	dir := filepath.Join(store.Root, section)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperr.Internal(fmt.Errorf("media: create %s: %w", dir, err))
	}

	name := storedName(filename)
	target := filepath.Join(dir, name)

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("media: create %s: %w", target, err))
	}

	reader := content
	if store.MaxBytes > 0 {
		reader = io.LimitReader(content, store.MaxBytes+1)
	}

	written, copyErr := io.Copy(file, reader)
	closeErr := file.Close()

	switch {
	case copyErr != nil:
		os.Remove(target)
		return "", apperr.Internal(fmt.Errorf("media: write %s: %w", target, copyErr))
	case closeErr != nil:
		os.Remove(target)
		return "", apperr.Internal(fmt.Errorf("media: close %s: %w", target, closeErr))
	case store.MaxBytes > 0 && written > store.MaxBytes:
		os.Remove(target)
		return "", apperr.PayloadTooLarge(store.MaxBytes)
	}

	return path.Join(section, name), nil
}

// storedName keeps the readable part of the client file name behind a unique prefix.
func storedName(filename string) string {
	base := filepath.Base(filepath.FromSlash(filename))
	ext := strings.ToLower(filepath.Ext(base))
	stem := slug.From(strings.TrimSuffix(base, filepath.Ext(base)))

	if slug.From(ext) == "" {
		ext = ""
	}
	if stem == "" {
		return uuid.New() + ext
	}
	return uuid.New() + "-" + stem + ext
}
