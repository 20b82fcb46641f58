package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/pkg/ratelimit"
	"github.com/dspstudio/backend/services"
)

// InquiryHandler, iletişim formu endpoint'leri.
// Create public'tir, kalanı admin paneline aittir.
type InquiryHandler struct {
	inquiryService services.InquiryService
	createLimiter  *ratelimit.Limiter
}

// NewInquiryHandler, constructor.
// createLimiter: public form spam koruması. nil ise devre dışı.
func NewInquiryHandler(inquiryService services.InquiryService, createLimiter *ratelimit.Limiter) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
		createLimiter:  createLimiter,
	}
}

// Create godoc
// POST /api/inquiries — public, oturum gerektirmez.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.createLimiter != nil && !h.createLimiter.Allow(ip) {
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests, "too many requests, please try again later")
		return
	}

	var req models.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inquiry, err := h.inquiryService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, inquiry)
}

// List godoc
// GET /api/admin/inquiries
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.inquiryService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, inquiries)
}

// Get godoc
// GET /api/admin/inquiries/{id}
func (h *InquiryHandler) Get(w http.ResponseWriter, r *http.Request) {
	inquiry, err := h.inquiryService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, inquiry)
}

// UpdateStatus godoc
// PUT /api/admin/inquiries/{id}/status
// Body: { "status": "responded" }
func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req struct {
		Status models.InquiryStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inquiry, err := h.inquiryService.UpdateStatus(r.Context(), actor.ID, r.PathValue("id"), req.Status)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, inquiry)
}

// Delete godoc
// DELETE /api/admin/inquiries/{id}
func (h *InquiryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.inquiryService.Delete(r.Context(), actor.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "inquiry deleted"})
}
