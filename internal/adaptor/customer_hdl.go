package adaptor

import (
	"net/http"

	"customer-crm/internal/usecase"
	"customer-crm/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// Detail handles GET /customer/{id}
func (h *CustomerHandler) Detail(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	detail, err := h.service.GetDetail(r.Context(), customerID, r.URL.Query())
	if err != nil {
		handleServiceError(w, h.log, err, "get customer", r.URL.Query())
		return
	}

	utils.ResponseSuccess(w, "Customer retrieved successfully", detail)
}

// UserPage handles GET /user
func (h *CustomerHandler) UserPage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseRedirect(w, r, "/login")
		return
	}

	page, err := h.service.GetUserPage(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user page", nil)
		return
	}

	utils.ResponseSuccess(w, "User page", page)
}
