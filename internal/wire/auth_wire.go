package wire

import (
	"customer-crm/internal/adaptor"
	"customer-crm/pkg/gate"
	"customer-crm/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	log *zap.Logger,
) {
	// ==================== GUEST ROUTES ====================
	// Sudah login => kembali ke dashboard
	r.Group(func(r chi.Router) {
		r.Use(middleware.Guard(gate.RequireUnauthenticated(HomeURL), log))

		r.Get("/register", authHandler.RegisterPage)
		r.Post("/register", authHandler.Register)
		r.Get("/login", authHandler.LoginPage)
		r.Post("/login", authHandler.Login)
	})

	// Logout terbuka untuk semua
	r.Get("/logout", authHandler.Logout)
}
