package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"customer-crm/internal/apperr"
	"customer-crm/internal/usecase"
	"customer-crm/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Customer  *CustomerHandler
	Product   *ProductHandler
	Order     *OrderHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, config.Session, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
		Customer:  NewCustomerHandler(service.Customer, log),
		Product:   NewProductHandler(service.Product, log),
		Order:     NewOrderHandler(service.Order, log),
	}
}

// maxBodyBytes caps a submitted form.
const maxBodyBytes = 1 << 20

// decodeBody reads a JSON form. An empty body decodes to the zero form so
// validation reports the missing fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// invalidBody answers a form that could not be decoded.
func invalidBody(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.ResponseJSON(w, http.StatusRequestEntityTooLarge, false, "Request body too large", nil, nil)
		return
	}
	utils.ResponseBadRequest(w, "Invalid request body", nil)
}

// handleServiceError maps the error taxonomy to responses. form is echoed
// back when the error is a validation failure.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string, form any) {
	if verr, ok := apperr.AsValidation(err); ok {
		log.Warn(operation+" validation failed", zap.Any("errors", verr.Fields))
		utils.ResponseFormErrors(w, form, verr.Fields)
		return
	}

	switch {
	case apperr.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case apperr.Is(err, apperr.ErrInvalidCredentials),
		apperr.Is(err, apperr.ErrInactive):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseJSON(w, http.StatusUnauthorized, false, err.Error(), form, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
