package wire

import (
	"customer-crm/internal/adaptor"
	"customer-crm/pkg/gate"
	"customer-crm/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Guard(gate.AdminOnly(LoginURL), log))

		r.Get("/create_order/{id}", orderHandler.CreateForm)
		r.Post("/create_order/{id}", orderHandler.Create)

		r.Get("/update_order/{id}", orderHandler.UpdateForm)
		r.Post("/update_order/{id}", orderHandler.Update)

		// GET = konfirmasi, POST = hapus
		r.Get("/delete_order/{id}", orderHandler.DeleteConfirm)
		r.Post("/delete_order/{id}", orderHandler.Delete)
	})
}
