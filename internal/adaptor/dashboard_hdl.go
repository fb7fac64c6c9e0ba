package adaptor

import (
	"net/http"

	"customer-crm/internal/usecase"
	"customer-crm/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// Home handles GET /
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Get(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "load dashboard", nil)
		return
	}

	utils.ResponseSuccess(w, "Dashboard", dashboard)
}
