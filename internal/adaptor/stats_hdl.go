package adaptor

import (
	"net/http"

	"admin-panel/internal/usecase"
	"admin-panel/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get stats", "Stats not found")
		return
	}

	utils.ResponseOK(w, stats)
}
