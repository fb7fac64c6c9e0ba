package wire

import (
	"customer-crm/internal/adaptor"
	"customer-crm/pkg/gate"
	"customer-crm/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	productHandler *adaptor.ProductHandler,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	admin := r.With(middleware.Guard(gate.AdminOnly(LoginURL), log))

	admin.Get("/", dashboardHandler.Home)
	admin.Get("/products", productHandler.List)
}
