package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/services"
)

// MediaHandler, dosya yükleme ve medya kütüphanesi endpoint'leri.
//
// İşlem akışı (Upload):
// 1. Multipart form parse → "file" alanını oku
// 2. Boyut kontrolü (config'ten gelen limit)
// 3. Dosyayı diske kaydet (UUID + orijinal uzantı)
// 4. DB'ye medya kaydı yaz
type MediaHandler struct {
	mediaService services.MediaService
	uploadDir    string
	maxSize      int64
}

// NewMediaHandler, constructor.
func NewMediaHandler(mediaService services.MediaService, uploadDir string, maxSize int64) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		uploadDir:    uploadDir,
		maxSize:      maxSize,
	}
}

// Upload godoc
// POST /api/admin/media
// Content-Type: multipart/form-data, "file" alanı zorunlu.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	// MaxBytesReader: body'yi limite kadar okur, aşılırsa hata.
	// +1MB form overhead payı — asıl dosya limiti service'te kontrol edilir.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	media, err := h.mediaService.Upload(
		r.Context(),
		actor.ID,
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, media)
}

// List godoc
// GET /api/admin/media
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.mediaService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// UpdateMeta godoc
// PUT /api/admin/media/{id}
// Sadece alt/caption metadata'sı güncellenir — dosya değişmez.
func (h *MediaHandler) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdateMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	media, err := h.mediaService.UpdateMeta(r.Context(), actor.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, media)
}

// Delete godoc
// DELETE /api/admin/media/{id}
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.mediaService.Delete(r.Context(), actor.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "media deleted"})
}

// ServeFile godoc
// GET /api/uploads/{name}
// Public dosya servisi. Diskteki adlar UUID olduğu için tahmin edilemez;
// yine de path traversal'a karşı isim temizlenir.
func (h *MediaHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(r.PathValue("name"))
	if name == "" || name == "." || strings.Contains(name, "..") {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid file name")
		return
	}

	http.ServeFile(w, r, filepath.Join(h.uploadDir, name))
}
