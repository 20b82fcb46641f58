// Package sitegen — yeni müşteri deployment'ları için site şablonu çoğaltma.
//
// Stüdyo şablonunun tamamını yeni bir dizine kopyalar, işletme adı /
// slogan / iletişim bilgisi placeholder'larını değiştirir, her kopya için
// taze secret'lar üretir ve sonucu istenirse zip'ler.
//
// Placeholder'lar şablon dosyalarında çift süslü parantezle yazılır:
// {{BUSINESS_NAME}}, {{BUSINESS_SLUG}}, {{TAGLINE}}, {{CONTACT_EMAIL}},
// {{CONTACT_PHONE}}, {{GENERATED_AT}}.
//
// Backend değil, operasyon aracıdır — cmd/sitegen bu paketi CLI'dan çağırır.
package sitegen

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Params, yeni site için işletme parametreleri.
type Params struct {
	BusinessName string
	Tagline      string
	ContactEmail string
	ContactPhone string
}

// Secrets, her kopya için üretilen taze secret'lar.
// Şablondaki .env hiçbir zaman kopyalanmaz — her site kendi secret'larını alır.
type Secrets struct {
	EmergencyResetKey string `json:"emergency_reset_key"`
	PreviewSecret     string `json:"preview_secret"`
	EncryptionKey     string `json:"encryption_key"`
}

// Manifest, üretilen sitenin site-config.json içeriği.
type Manifest struct {
	BusinessName string    `json:"business_name"`
	Slug         string    `json:"slug"`
	Tagline      string    `json:"tagline,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// skipDirs: kopyalanmayan dizinler — build artifact'ları ve bağımlılıklar.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
	"data":         true,
}

// textExtensions: placeholder substitution uygulanan dosya türleri.
// Diğer her şey (görseller, fontlar) byte-byte kopyalanır.
var textExtensions = map[string]bool{
	".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".html": true, ".css": true, ".scss": true,
	".md": true, ".json": true, ".txt": true,
	".yml": true, ".yaml": true, ".toml": true,
	".go": true, ".py": true, ".env": true, ".example": true,
}

// SanitizeName, işletme adını güvenli bir dizin/slug adına çevirir.
// "D.S.P. Film's Photography" → "dsp-films-photography"
func SanitizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Join(strings.Fields(s), "-")
	return s
}

// GenerateSecrets, yeni site için kriptografik secret'lar üretir.
func GenerateSecrets() (*Secrets, error) {
	emergency, err := randomHex(16)
	if err != nil {
		return nil, err
	}
	previewSecret, err := randomHex(32)
	if err != nil {
		return nil, err
	}
	encryptionKey, err := randomHex(32)
	if err != nil {
		return nil, err
	}
	return &Secrets{
		EmergencyResetKey: emergency,
		PreviewSecret:     previewSecret,
		EncryptionKey:     encryptionKey,
	}, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Generate, şablon ağacını outDir'e kopyalar, placeholder'ları değiştirir,
// secret'lı bir .env ve site-config.json manifest'i yazar.
//
// outDir mevcutsa hata döner — yarım kalmış bir üretimin üzerine yazılmaz.
func Generate(templateDir, outDir string, p Params) (*Manifest, error) {
	templateDir = filepath.Clean(strings.TrimSpace(templateDir))
	outDir = filepath.Clean(strings.TrimSpace(outDir))

	if strings.TrimSpace(p.BusinessName) == "" {
		return nil, fmt.Errorf("business name is required")
	}

	info, err := os.Stat(templateDir)
	if err != nil {
		return nil, fmt.Errorf("template dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template is not a directory: %s", templateDir)
	}

	if _, err := os.Stat(outDir); err == nil {
		return nil, fmt.Errorf("output directory already exists: %s", outDir)
	}

	manifest := &Manifest{
		BusinessName: p.BusinessName,
		Slug:         SanitizeName(p.BusinessName),
		Tagline:      p.Tagline,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
		GeneratedAt:  time.Now().UTC(),
	}

	replacer := strings.NewReplacer(
		"{{BUSINESS_NAME}}", p.BusinessName,
		"{{BUSINESS_SLUG}}", manifest.Slug,
		"{{TAGLINE}}", p.Tagline,
		"{{CONTACT_EMAIL}}", p.ContactEmail,
		"{{CONTACT_PHONE}}", p.ContactPhone,
		"{{GENERATED_AT}}", manifest.GeneratedAt.Format(time.RFC3339),
	)

	err = filepath.WalkDir(templateDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(templateDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return os.MkdirAll(outDir, 0o755)
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return os.MkdirAll(filepath.Join(outDir, rel), 0o755)
		}

		// Symlink'ler atlanır — şablonlarda beklenmez, kopya deterministik kalır.
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		// Şablonun kendi .env'i asla taşınmaz — secret sızıntısı engeli.
		if d.Name() == ".env" {
			return nil
		}

		dst := filepath.Join(outDir, rel)

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if textExtensions[ext] {
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			substituted := replacer.Replace(string(content))
			return os.WriteFile(dst, []byte(substituted), 0o644)
		}

		return copyFile(path, dst)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy template: %w", err)
	}

	// Taze secret'lar + .env
	secrets, err := GenerateSecrets()
	if err != nil {
		return nil, err
	}
	if err := writeEnv(filepath.Join(outDir, ".env"), manifest, secrets); err != nil {
		return nil, err
	}

	// Manifest
	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "site-config.json"), manifestJSON, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	return manifest, nil
}

// writeEnv, üretilen site için başlangıç .env dosyasını yazar.
func writeEnv(path string, m *Manifest, s *Secrets) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Generated for %s — %s\n", m.BusinessName, m.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "SERVER_PORT=8080\n")
	fmt.Fprintf(&b, "DATABASE_PATH=./data/%s.db\n", m.Slug)
	fmt.Fprintf(&b, "EMERGENCY_RESET_KEY=%s\n", s.EmergencyResetKey)
	fmt.Fprintf(&b, "PREVIEW_SECRET=%s\n", s.PreviewSecret)
	fmt.Fprintf(&b, "ENCRYPTION_KEY=%s\n", s.EncryptionKey)
	if m.ContactEmail != "" {
		fmt.Fprintf(&b, "ADMIN_EMAIL=%s\n", m.ContactEmail)
	}
	return os.WriteFile(path, []byte(b.String()), 0o600)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
