package adaptor

import (
	"net/http"

	"customer-crm/internal/dto/request"
	"customer-crm/internal/usecase"
	"customer-crm/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateForm handles GET /create_order/{id}
func (h *OrderHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.service.GetCreateForm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "load order form", nil)
		return
	}

	utils.ResponseSuccess(w, "Create order", form)
}

// Create handles POST /create_order/{id}
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrdersRequest

	if err := decodeBody(w, r, &req); err != nil {
		invalidBody(w, err)
		return
	}

	if _, err := h.service.CreateOrders(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(w, h.log, err, "create orders", req)
		return
	}

	utils.ResponseRedirect(w, r, "/")
}

// UpdateForm handles GET /update_order/{id}
func (h *OrderHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.service.GetUpdateForm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "load order", nil)
		return
	}

	utils.ResponseSuccess(w, "Update order", form)
}

// Update handles POST /update_order/{id}
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateOrderRequest

	if err := decodeBody(w, r, &req); err != nil {
		invalidBody(w, err)
		return
	}

	if _, err := h.service.UpdateOrder(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(w, h.log, err, "update order", req)
		return
	}

	utils.ResponseRedirect(w, r, "/")
}

// DeleteConfirm handles GET /delete_order/{id}
func (h *OrderHandler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	confirm, err := h.service.GetDeleteConfirmation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "load order", nil)
		return
	}

	utils.ResponseSuccess(w, "Delete order", confirm)
}

// Delete handles POST /delete_order/{id}
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete order", nil)
		return
	}

	utils.ResponseRedirect(w, r, "/")
}
