package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/services"
)

// CopywriterHandler, AI destekli metin üretimi endpoint'leri.
//
// Sağlayıcı hataları HTTP hatası DEĞİLDİR: endpoint her zaman 200 döner,
// sonuç zarfındaki success/error alanları durumu anlatır. Panel tarafında
// "üretim başarısız" bir form hatası gibi gösterilir, istek hatası gibi değil.
type CopywriterHandler struct {
	copywriter services.CopywriterService
}

// NewCopywriterHandler, constructor.
func NewCopywriterHandler(copywriter services.CopywriterService) *CopywriterHandler {
	return &CopywriterHandler{copywriter: copywriter}
}

// GenerateCaption godoc
// POST /api/admin/ai/caption
// Body: { "image_description": "...", "style": "professional" }
func (h *CopywriterHandler) GenerateCaption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImageDescription string `json:"image_description"`
		Style            string `json:"style"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ImageDescription) == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "image_description is required")
		return
	}

	pkg.JSON(w, http.StatusOK, h.copywriter.GenerateCaption(r.Context(), req.ImageDescription, req.Style))
}

// GenerateAdCopy godoc
// POST /api/admin/ai/ad-copy
// Body: { "service": "...", "target_audience": "...", "tone": "professional" }
func (h *CopywriterHandler) GenerateAdCopy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Service        string `json:"service"`
		TargetAudience string `json:"target_audience"`
		Tone           string `json:"tone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Service) == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "service is required")
		return
	}

	pkg.JSON(w, http.StatusOK, h.copywriter.GenerateAdCopy(r.Context(), req.Service, req.TargetAudience, req.Tone))
}

// EnhanceContent godoc
// POST /api/admin/ai/enhance
// Body: { "content": "...", "enhancement_type": "improve|expand|rewrite|summarize" }
func (h *CopywriterHandler) EnhanceContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content         string `json:"content"`
		EnhancementType string `json:"enhancement_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "content is required")
		return
	}

	pkg.JSON(w, http.StatusOK, h.copywriter.EnhanceContent(r.Context(), req.Content, req.EnhancementType))
}

// GenerateSEO godoc
// POST /api/admin/ai/seo
// Body: { "page_title": "...", "page_content": "..." }
func (h *CopywriterHandler) GenerateSEO(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PageTitle   string `json:"page_title"`
		PageContent string `json:"page_content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.PageTitle) == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "page_title is required")
		return
	}

	pkg.JSON(w, http.StatusOK, h.copywriter.GenerateSEO(r.Context(), req.PageTitle, req.PageContent))
}
