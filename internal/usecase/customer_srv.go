package usecase

import (
	"context"
	"net/url"

	"customer-crm/internal/apperr"
	"customer-crm/internal/data/entity"
	"customer-crm/internal/data/repository"
	"customer-crm/internal/dto/response"
	"customer-crm/internal/filter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerService interface {
	// GetDetail loads a customer and its orders narrowed by the query.
	GetDetail(ctx context.Context, customerID string, query url.Values) (*response.CustomerDetailResponse, error)
	// GetUserPage loads the customer linked to userID with order counts.
	GetUserPage(ctx context.Context, userID uuid.UUID) (*response.UserPageResponse, error)
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) GetDetail(ctx context.Context, customerID string, query url.Values) (*response.CustomerDetailResponse, error) {
	id, err := parseID("customer", customerID)
	if err != nil {
		return nil, err
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("customer_id", customerID))
		return nil, apperr.Wrap(err, "failed to get customer")
	}
	if customer == nil {
		return nil, apperr.NotFound("customer", customerID)
	}

	f, err := filter.Parse(query)
	if err != nil {
		return nil, err
	}

	tags, err := s.repo.Tag.FindByCustomerID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find customer tags", zap.Error(err), zap.String("customer_id", customerID))
		return nil, apperr.Wrap(err, "failed to get customer")
	}

	orders, err := s.repo.Order.FindByCustomerID(ctx, id, f)
	if err != nil {
		s.log.Error("Failed to find customer orders", zap.Error(err), zap.String("customer_id", customerID))
		return nil, apperr.Wrap(err, "failed to get customer orders")
	}

	return &response.CustomerDetailResponse{
		Customer:   response.CustomerToResponse(customer, tags),
		Orders:     response.OrdersToResponse(orders),
		OrderCount: len(orders),
		Filter:     f.Values(),
	}, nil
}

func (s *customerService) GetUserPage(ctx context.Context, userID uuid.UUID) (*response.UserPageResponse, error) {
	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find customer by user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Wrap(err, "failed to get user page")
	}
	if customer == nil {
		return nil, apperr.NotFound("customer for user", userID.String())
	}

	orders, err := s.repo.Order.FindByCustomerID(ctx, customer.ID, nil)
	if err != nil {
		s.log.Error("Failed to find user orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Wrap(err, "failed to get user page")
	}

	page := &response.UserPageResponse{
		Customer:    response.CustomerToResponse(customer, nil),
		Orders:      response.OrdersToResponse(orders),
		TotalOrders: len(orders),
	}
	for _, o := range orders {
		switch o.Status {
		case entity.OrderStatusDelivered:
			page.Delivered++
		case entity.OrderStatusPending:
			page.Pending++
		}
	}

	return page, nil
}
