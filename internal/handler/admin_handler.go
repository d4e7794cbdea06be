package handler

import (
	"net/http"

	"github.com/maabu025/book-hubs/internal/service"
)

type AdminHandler struct {
	insights *service.InsightsService
}

func NewAdminHandler(s *service.InsightsService) *AdminHandler {
	return &AdminHandler{insights: s}
}

// @Summary Dashboard insights (ADMIN)
// @Description Point-in-time catalog statistics: totals, most/least read, recent additions, per-genre rollups.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Insights
// @Failure 403 {object} map[string]string
// @Router /admin/insights [get]
func (h *AdminHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.insights.Snapshot(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
