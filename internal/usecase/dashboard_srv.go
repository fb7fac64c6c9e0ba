package usecase

import (
	"context"

	"customer-crm/internal/apperr"
	"customer-crm/internal/data/repository"
	"customer-crm/internal/dto/response"

	"go.uber.org/zap"
)

type DashboardService interface {
	Get(ctx context.Context) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) Get(ctx context.Context) (*response.DashboardResponse, error) {
	customers, err := s.repo.Customer.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list customers", zap.Error(err))
		return nil, apperr.Wrap(err, "failed to load dashboard")
	}

	stats, err := s.repo.Order.Stats(ctx)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, apperr.Wrap(err, "failed to load dashboard")
	}

	recent, err := s.repo.Order.FindRecent(ctx, RecentOrdersLimit)
	if err != nil {
		s.log.Error("Failed to list recent orders", zap.Error(err))
		return nil, apperr.Wrap(err, "failed to load dashboard")
	}

	return &response.DashboardResponse{
		TotalCustomers: len(customers),
		TotalOrders:    stats.Total,
		Delivered:      stats.Delivered,
		Pending:        stats.Pending,
		OutForDelivery: stats.OutForDelivery,
		RecentOrders:   response.OrdersToResponse(recent),
		Customers:      response.CustomersToResponse(customers),
	}, nil
}
