package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/services"
)

// ContentHandler, site metin parçaları (hero, iletişim, hakkında...) endpoint'leri.
type ContentHandler struct {
	contentService services.ContentService
}

// NewContentHandler, constructor.
func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// List godoc
// GET /api/content — public, ?section= ile filtrelenebilir.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")

	var (
		items []*models.SiteContent
		err   error
	)
	if section != "" {
		items, err = h.contentService.ListBySection(r.Context(), section)
	} else {
		items, err = h.contentService.List(r.Context())
	}
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// Create godoc
// POST /api/admin/content
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.contentService.Create(r.Context(), actor.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, item)
}

// Update godoc
// PUT /api/admin/content/{id}
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id := r.PathValue("id")

	var req models.UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.contentService.Update(r.Context(), actor.ID, id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// Delete godoc
// DELETE /api/admin/content/{id}
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id := r.PathValue("id")

	if err := h.contentService.Delete(r.Context(), actor.ID, id); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "content deleted"})
}
