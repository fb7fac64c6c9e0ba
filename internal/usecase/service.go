package usecase

import (
	"customer-crm/internal/apperr"
	"customer-crm/internal/data/repository"
	"customer-crm/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecentOrdersLimit is how many orders the dashboard lists.
const RecentOrdersLimit = 5

type Service struct {
	Auth      AuthService
	Dashboard DashboardService
	Customer  CustomerService
	Product   ProductService
	Order     OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Dashboard: NewDashboardService(repo, log),
		Customer:  NewCustomerService(repo, log),
		Product:   NewProductService(repo.Product, log),
		Order:     NewOrderService(repo, log),
	}
}

// parseID turns a path id into a uuid. Malformed ids can never match a row,
// so they are reported as not found.
func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.NotFound(kind, raw)
	}
	return id, nil
}

func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidationError(errs)
	}
	return nil
}
