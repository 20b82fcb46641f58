package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/pkg/ratelimit"
	"github.com/dspstudio/backend/services"
)

// AnalyticsHandler, ziyaretçi olayı kaydı (public) ve dashboard
// istatistikleri (admin) endpoint'leri.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
	trackLimiter     *ratelimit.Limiter
}

// NewAnalyticsHandler, constructor.
// trackLimiter: public track endpoint'i için IP bazlı flood koruması. nil ise devre dışı.
func NewAnalyticsHandler(analyticsService services.AnalyticsService, trackLimiter *ratelimit.Limiter) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		trackLimiter:     trackLimiter,
	}
}

// Track godoc
// POST /api/analytics/track — public.
// UserAgent ve IP body'den değil istekten alınır.
func (h *AnalyticsHandler) Track(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.trackLimiter != nil && !h.trackLimiter.Allow(ip) {
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req models.TrackEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.analyticsService.Track(r.Context(), &req, r.UserAgent(), ip); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, map[string]string{"message": "recorded"})
}

// Stats godoc
// GET /api/admin/analytics/stats
func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsService.Stats(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, stats)
}
