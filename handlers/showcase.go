package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/services"
)

// ShowcaseHandler, portfolyo / müşteri yorumu / video endpoint'leri.
type ShowcaseHandler struct {
	showcaseService services.ShowcaseService
}

// NewShowcaseHandler, constructor.
func NewShowcaseHandler(showcaseService services.ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{showcaseService: showcaseService}
}

// ─── Portfolyo ───

// PublicPortfolio godoc
// GET /api/portfolio
func (h *ShowcaseHandler) PublicPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.showcaseService.PublicPortfolio(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// PublicPortfolioByCategory godoc
// GET /api/portfolio/category/{category}
func (h *ShowcaseHandler) PublicPortfolioByCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.showcaseService.PublicPortfolioByCategory(r.Context(), r.PathValue("category"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// ListPortfolio godoc
// GET /api/admin/portfolio
func (h *ShowcaseHandler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.showcaseService.ListPortfolio(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// CreatePortfolioItem godoc
// POST /api/admin/portfolio
func (h *ShowcaseHandler) CreatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.showcaseService.CreatePortfolioItem(r.Context(), actor.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, item)
}

// UpdatePortfolioItem godoc
// PUT /api/admin/portfolio/{id}
func (h *ShowcaseHandler) UpdatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.showcaseService.UpdatePortfolioItem(r.Context(), actor.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// DeactivatePortfolioItem godoc
// DELETE /api/admin/portfolio/{id}
func (h *ShowcaseHandler) DeactivatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.showcaseService.DeactivatePortfolioItem(r.Context(), actor.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "portfolio item deactivated"})
}

// ─── Müşteri yorumları ───

// PublicTestimonials godoc
// GET /api/testimonials
func (h *ShowcaseHandler) PublicTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.showcaseService.PublicTestimonials(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// ListTestimonials godoc
// GET /api/admin/testimonials
func (h *ShowcaseHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.showcaseService.ListTestimonials(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// CreateTestimonial godoc
// POST /api/admin/testimonials
func (h *ShowcaseHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.showcaseService.CreateTestimonial(r.Context(), actor.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, item)
}

// UpdateTestimonial godoc
// PUT /api/admin/testimonials/{id}
func (h *ShowcaseHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.showcaseService.UpdateTestimonial(r.Context(), actor.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// DeactivateTestimonial godoc
// DELETE /api/admin/testimonials/{id}
func (h *ShowcaseHandler) DeactivateTestimonial(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.showcaseService.DeactivateTestimonial(r.Context(), actor.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "testimonial deactivated"})
}

// ─── Videolar ───

// PublicVideos godoc
// GET /api/videos
func (h *ShowcaseHandler) PublicVideos(w http.ResponseWriter, r *http.Request) {
	items, err := h.showcaseService.PublicVideos(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// ListVideos godoc
// GET /api/admin/videos
func (h *ShowcaseHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	items, err := h.showcaseService.ListVideos(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// CreateVideo godoc
// POST /api/admin/videos
func (h *ShowcaseHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.showcaseService.CreateVideo(r.Context(), actor.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, item)
}

// UpdateVideo godoc
// PUT /api/admin/videos/{id}
func (h *ShowcaseHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.showcaseService.UpdateVideo(r.Context(), actor.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// DeactivateVideo godoc
// DELETE /api/admin/videos/{id}
func (h *ShowcaseHandler) DeactivateVideo(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.showcaseService.DeactivateVideo(r.Context(), actor.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "video deactivated"})
}
