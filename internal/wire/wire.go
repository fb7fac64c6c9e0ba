// internal/wire/wire.go
package wire

import (
	"net/http"

	"customer-crm/internal/adaptor"
	"customer-crm/internal/data/repository"
	"customer-crm/internal/usecase"
	"customer-crm/pkg/middleware"
	"customer-crm/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Page yang butuh login
const (
	LoginURL = "/login"
	HomeURL  = "/"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	// Setup router
	router := setupRouter(handler, service, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Session(service.Auth, config.Session.CookieName, logger))

	// Apply routes
	wireAuth(r, handler.Auth, logger)
	wireDashboard(r, handler.Dashboard, handler.Product, logger)
	wireCustomer(r, handler.Customer, logger)
	wireOrder(r, handler.Order, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
