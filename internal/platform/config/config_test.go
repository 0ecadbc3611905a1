// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hojadevida/internal/platform/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://cv:cv@localhost:5432/cv")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "/static/", cfg.StaticURL)
	assert.Equal(t, "/media/", cfg.MediaURL)
	assert.Equal(t, config.EngineChromium, cfg.PDFEngine)
	assert.Equal(t, 60*time.Second, cfg.PDFTimeout)
	assert.False(t, cfg.AdminEnabled())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	_, err := config.Load()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoad_EmptyRedisURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://cv:cv@localhost:5432/cv")
	t.Setenv("REDIS_URL", "")

	_, err := config.Load()
	assert.ErrorContains(t, err, "REDIS_URL")
}

func TestLoad_RejectsUnknownEngine(t *testing.T) {
	setRequired(t)
	t.Setenv("PDF_ENGINE", "xhtml2pdf")

	_, err := config.Load()
	assert.ErrorContains(t, err, "PDF_ENGINE")
}

func TestLoad_AdminRequiresKeys(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	_, err := config.Load()
	assert.ErrorContains(t, err, "JWT_PRIVATE_KEY_PATH")

	t.Setenv("JWT_PRIVATE_KEY_PATH", "/keys/private.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/public.pem")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.AdminEnabled())
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &config.Config{ExtraOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}
