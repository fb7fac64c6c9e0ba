package usecase

import (
	"context"
	"fmt"
	"time"

	"customer-crm/internal/apperr"
	"customer-crm/internal/data/entity"
	"customer-crm/internal/data/repository"
	"customer-crm/internal/dto/request"
	"customer-crm/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	GetCreateForm(ctx context.Context, customerID string) (*response.OrderFormResponse, error)
	CreateOrders(ctx context.Context, customerID string, req *request.CreateOrdersRequest) ([]response.OrderResponse, error)
	GetUpdateForm(ctx context.Context, orderID string) (*response.OrderFormResponse, error)
	UpdateOrder(ctx context.Context, orderID string, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
	GetDeleteConfirmation(ctx context.Context, orderID string) (*response.DeleteOrderResponse, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) GetCreateForm(ctx context.Context, customerID string) (*response.OrderFormResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	form, err := s.newForm(ctx)
	if err != nil {
		return nil, err
	}

	c := response.CustomerToResponse(customer, nil)
	form.Customer = &c
	form.MaxRows = request.MaxOrderRows
	return form, nil
}

// CreateOrders stores every submitted row for the customer or none of them.
func (s *orderService) CreateOrders(ctx context.Context, customerID string, req *request.CreateOrdersRequest) ([]response.OrderResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	orders := make([]*entity.Order, 0, len(req.Orders))

	err = s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		verr := apperr.NewValidationError(nil)

		for i, row := range req.Orders {
			field := fmt.Sprintf("orders[%d].product_id", i)
			productID := uuid.MustParse(row.ProductID)

			product, err := tx.Product.FindByID(ctx, productID)
			if err != nil {
				return err
			}
			if product == nil {
				verr.Add(field, "Select a valid choice. That choice is not one of the available choices")
				continue
			}

			orders = append(orders, &entity.Order{
				ID:          uuid.New(),
				CustomerID:  customer.ID,
				ProductID:   product.ID,
				Status:      entity.OrderStatus(row.Status),
				Note:        row.Note,
				DateCreated: now,
				ProductName: product.Name,
			})
		}

		if verr.HasErrors() {
			return verr
		}

		for _, order := range orders {
			order.CustomerName = customer.Name
			if err := tx.Order.Create(ctx, order); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		if _, ok := apperr.AsValidation(err); ok {
			return nil, err
		}
		s.log.Error("Failed to create orders", zap.Error(err), zap.String("customer_id", customerID))
		return nil, apperr.Wrap(err, "failed to create orders")
	}

	s.log.Info("Orders created",
		zap.String("customer_id", customerID),
		zap.Int("count", len(orders)))

	return response.OrdersToResponse(orders), nil
}

func (s *orderService) GetUpdateForm(ctx context.Context, orderID string) (*response.OrderFormResponse, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	form, err := s.newForm(ctx)
	if err != nil {
		return nil, err
	}

	o := response.OrderToResponse(order)
	form.Order = &o
	return form, nil
}

// UpdateOrder overwrites the editable fields. Resubmitting the current
// values leaves the stored order unchanged.
func (s *orderService) UpdateOrder(ctx context.Context, orderID string, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := validate(req); err != nil {
		return nil, err
	}

	customerID := uuid.MustParse(req.CustomerID)
	productID := uuid.MustParse(req.ProductID)
	verr := apperr.NewValidationError(nil)

	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("customer_id", req.CustomerID))
		return nil, apperr.Wrap(err, "failed to update order")
	}
	if customer == nil {
		verr.Add("customer_id", "Select a valid choice. That choice is not one of the available choices")
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, apperr.Wrap(err, "failed to update order")
	}
	if product == nil {
		verr.Add("product_id", "Select a valid choice. That choice is not one of the available choices")
	}

	if verr.HasErrors() {
		return nil, verr
	}

	order.CustomerID = customer.ID
	order.CustomerName = customer.Name
	order.ProductID = product.ID
	order.ProductName = product.Name
	order.Status = entity.OrderStatus(req.Status)
	order.Note = req.Note

	if err := s.repo.Order.Update(ctx, order); err != nil {
		if apperr.Is(err, repository.ErrOrderNotFound) {
			return nil, apperr.NotFound("order", orderID)
		}
		s.log.Error("Failed to update order", zap.Error(err), zap.String("order_id", orderID))
		return nil, apperr.Wrap(err, "failed to update order")
	}

	s.log.Info("Order updated", zap.String("order_id", orderID))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetDeleteConfirmation(ctx context.Context, orderID string) (*response.DeleteOrderResponse, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &response.DeleteOrderResponse{
		Item:    response.OrderToResponse(order),
		Confirm: fmt.Sprintf("Are you sure you want to delete the %s order?", order.ProductName),
	}, nil
}

// DeleteOrder needs no prior confirmation request.
func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if err := s.repo.Order.Delete(ctx, order.ID); err != nil {
		if apperr.Is(err, repository.ErrOrderNotFound) {
			return apperr.NotFound("order", orderID)
		}
		s.log.Error("Failed to delete order", zap.Error(err), zap.String("order_id", orderID))
		return apperr.Wrap(err, "failed to delete order")
	}

	return nil
}

func (s *orderService) newForm(ctx context.Context) (*response.OrderFormResponse, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, apperr.Wrap(err, "failed to load order form")
	}

	return &response.OrderFormResponse{
		Products: response.ProductsToResponse(products),
		Statuses: entity.OrderStatuses(),
	}, nil
}

func (s *orderService) findCustomer(ctx context.Context, raw string) (*entity.Customer, error) {
	id, err := parseID("customer", raw)
	if err != nil {
		return nil, err
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("customer_id", raw))
		return nil, apperr.Wrap(err, "failed to find customer")
	}
	if customer == nil {
		return nil, apperr.NotFound("customer", raw)
	}
	return customer, nil
}

func (s *orderService) findOrder(ctx context.Context, raw string) (*entity.Order, error) {
	id, err := parseID("order", raw)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", raw))
		return nil, apperr.Wrap(err, "failed to find order")
	}
	if order == nil {
		return nil, apperr.NotFound("order", raw)
	}
	return order, nil
}
