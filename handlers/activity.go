package handlers

import (
	"net/http"
	"strconv"

	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/services"
)

// ActivityHandler, admin işlem geçmişi endpoint'i.
type ActivityHandler struct {
	activityService services.ActivityService
}

// NewActivityHandler, constructor.
func NewActivityHandler(activityService services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List godoc
// GET /api/admin/activity?limit=50
// Limit verilmezse veya saçmaysa service makul bir değere çeker.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.activityService.List(r.Context(), limit)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, entries)
}
