package wire

import (
	"customer-crm/internal/adaptor"
	"customer-crm/pkg/gate"
	"customer-crm/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	admin := r.With(middleware.Guard(gate.AdminOnly(LoginURL), log))

	// GET /customer/{id}?start_date=&end_date=&product=&status=&note=
	admin.Get("/customer/{id}", customerHandler.Detail)

	// GET /user - halaman customer milik user yang login
	admin.Get("/user", customerHandler.UserPage)
}
