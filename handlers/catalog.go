package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/services"
)

// CatalogHandler, hizmet / paket / kampanya endpoint'leri.
// Public uçlar sadece aktif kayıtları, admin uçları tümünü döner.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler, constructor.
func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ─── Hizmetler ───

// PublicServices godoc
// GET /api/services
func (h *CatalogHandler) PublicServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.PublicServices(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// ListServices godoc
// GET /api/admin/services
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListServices(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// CreateService godoc
// POST /api/admin/services
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.catalogService.CreateService(r.Context(), actor.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, item)
}

// UpdateService godoc
// PUT /api/admin/services/{id}
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.catalogService.UpdateService(r.Context(), actor.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// DeactivateService godoc
// DELETE /api/admin/services/{id}
func (h *CatalogHandler) DeactivateService(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.catalogService.DeactivateService(r.Context(), actor.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "service deactivated"})
}

// ─── Paketler ───

// PublicPackages godoc
// GET /api/packages
func (h *CatalogHandler) PublicPackages(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.PublicPackages(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// ListPackages godoc
// GET /api/admin/packages
func (h *CatalogHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListPackages(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// CreatePackage godoc
// POST /api/admin/packages
func (h *CatalogHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.catalogService.CreatePackage(r.Context(), actor.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, item)
}

// UpdatePackage godoc
// PUT /api/admin/packages/{id}
func (h *CatalogHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.catalogService.UpdatePackage(r.Context(), actor.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// DeactivatePackage godoc
// DELETE /api/admin/packages/{id}
func (h *CatalogHandler) DeactivatePackage(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.catalogService.DeactivatePackage(r.Context(), actor.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "package deactivated"})
}

// ─── Kampanyalar ───

// PublicOffers godoc
// GET /api/offers — sadece şu an geçerli olanlar.
func (h *CatalogHandler) PublicOffers(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.PublicOffers(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// ListOffers godoc
// GET /api/admin/offers
func (h *CatalogHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListOffers(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// CreateOffer godoc
// POST /api/admin/offers
func (h *CatalogHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.catalogService.CreateOffer(r.Context(), actor.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, item)
}

// UpdateOffer godoc
// PUT /api/admin/offers/{id}
func (h *CatalogHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.catalogService.UpdateOffer(r.Context(), actor.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// DeactivateOffer godoc
// DELETE /api/admin/offers/{id}
func (h *CatalogHandler) DeactivateOffer(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.catalogService.DeactivateOffer(r.Context(), actor.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "offer deactivated"})
}
