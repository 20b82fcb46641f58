package sitegen

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "dsp-films-photography", SanitizeName("D.S.P. Film's Photography"))
	assert.Equal(t, "studio-x", SanitizeName("  Studio   X  "))
	assert.Equal(t, "acme", SanitizeName("ACME"))
}

func TestGenerateSecrets(t *testing.T) {
	s, err := GenerateSecrets()
	require.NoError(t, err)

	assert.Len(t, s.EmergencyResetKey, 32) // 16 byte hex
	assert.Len(t, s.PreviewSecret, 64)
	assert.Len(t, s.EncryptionKey, 64)

	s2, err := GenerateSecrets()
	require.NoError(t, err)
	assert.NotEqual(t, s.EncryptionKey, s2.EncryptionKey)
}

// writeTemplate, testler için minimal bir şablon ağacı kurar.
func writeTemplate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
		[]byte("<title>{{BUSINESS_NAME}}</title><p>{{TAGLINE}}</p>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"slug":"{{BUSINESS_SLUG}}","email":"{{CONTACT_EMAIL}}"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"),
		[]byte{0x89, 0x50, 0x4e, 0x47}, 0o644))

	// Bunlar kopyalanmamalı
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("ENCRYPTION_KEY=template-secret\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules", "react"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "node_modules", "react", "index.js"),
		[]byte("module.exports = {}"), 0o644))

	return dir
}

func TestGenerate(t *testing.T) {
	tmpl := writeTemplate(t)
	out := filepath.Join(t.TempDir(), "dsp-site")

	m, err := Generate(tmpl, out, Params{
		BusinessName: "D.S.P. Film's Photography",
		Tagline:      "Every frame a story",
		ContactEmail: "hello@dspfilms.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "dsp-films-photography", m.Slug)

	// Placeholder substitution
	html, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "D.S.P. Film's Photography")
	assert.Contains(t, string(html), "Every frame a story")
	assert.NotContains(t, string(html), "{{")

	cfg, err := os.ReadFile(filepath.Join(out, "config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), `"slug":"dsp-films-photography"`)
	assert.Contains(t, string(cfg), "hello@dspfilms.com")

	// Binary dosya byte-byte kopyalanır
	logo, err := os.ReadFile(filepath.Join(out, "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, logo)

	// node_modules atlanır
	_, err = os.Stat(filepath.Join(out, "node_modules"))
	assert.True(t, os.IsNotExist(err))

	// .env taze secret'larla yazılır, şablondan kopyalanmaz
	env, err := os.ReadFile(filepath.Join(out, ".env"))
	require.NoError(t, err)
	envStr := string(env)
	assert.NotContains(t, envStr, "template-secret")
	assert.Contains(t, envStr, "PREVIEW_SECRET=")
	assert.Contains(t, envStr, "ENCRYPTION_KEY=")
	assert.Contains(t, envStr, "EMERGENCY_RESET_KEY=")
	assert.Contains(t, envStr, "ADMIN_EMAIL=hello@dspfilms.com")
	assert.Contains(t, envStr, "DATABASE_PATH=./data/dsp-films-photography.db")

	// Manifest
	manifest, err := os.ReadFile(filepath.Join(out, "site-config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `"business_name": "D.S.P. Film's Photography"`)
}

func TestGenerate_EmptyNameFails(t *testing.T) {
	tmpl := writeTemplate(t)
	out := filepath.Join(t.TempDir(), "site")

	_, err := Generate(tmpl, out, Params{BusinessName: "   "})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "business name is required")
}

func TestGenerate_ExistingOutputFails(t *testing.T) {
	tmpl := writeTemplate(t)
	out := t.TempDir() // zaten var

	_, err := Generate(tmpl, out, Params{BusinessName: "Studio"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestGenerate_MissingTemplateFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	_, err := Generate(filepath.Join(t.TempDir(), "nope"), out, Params{BusinessName: "Studio"})
	assert.Error(t, err)
}

func TestZipDir(t *testing.T) {
	tmpl := writeTemplate(t)
	out := filepath.Join(t.TempDir(), "site")
	_, err := Generate(tmpl, out, Params{BusinessName: "Studio"})
	require.NoError(t, err)

	zipPath := filepath.Join(t.TempDir(), "site.zip")
	require.NoError(t, ZipDir(out, zipPath))

	zr, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	joined := strings.Join(names, "\n")
	assert.Contains(t, joined, "index.html")
	assert.Contains(t, joined, "site-config.json")
	assert.Contains(t, joined, ".env")
}
