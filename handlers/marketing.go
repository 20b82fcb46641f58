package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/services"
)

// MarketingHandler, takip script kayıtları endpoint'leri.
// PublicScripts, sitenin <head> injection'ı için aktif kayıtları döner.
type MarketingHandler struct {
	marketingService services.MarketingService
}

// NewMarketingHandler, constructor.
func NewMarketingHandler(marketingService services.MarketingService) *MarketingHandler {
	return &MarketingHandler{marketingService: marketingService}
}

// PublicScripts godoc
// GET /api/marketing/scripts — public, sadece aktif kayıtlar.
func (h *MarketingHandler) PublicScripts(w http.ResponseWriter, r *http.Request) {
	scripts, err := h.marketingService.PublicScripts(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, scripts)
}

// List godoc
// GET /api/admin/marketing/scripts — pasif kayıtlar dahil.
func (h *MarketingHandler) List(w http.ResponseWriter, r *http.Request) {
	scripts, err := h.marketingService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, scripts)
}

// Upsert godoc
// PUT /api/admin/marketing/scripts
// Name üzerinden upsert — aynı isim tekrar gönderilirse günceller.
func (h *MarketingHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpsertMarketingScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	script, err := h.marketingService.Upsert(r.Context(), actor.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, script)
}

// Delete godoc
// DELETE /api/admin/marketing/scripts/{name}
func (h *MarketingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.marketingService.Delete(r.Context(), actor.ID, r.PathValue("name")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "script deleted"})
}
