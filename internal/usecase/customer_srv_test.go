package usecase

import (
	"context"
	"net/url"
	"testing"
	"time"

	"customer-crm/internal/apperr"
	"customer-crm/internal/data/entity"
	"customer-crm/internal/filter"
	mockRepo "customer-crm/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCustomerService(t *testing.T) (*mockRepo.Mocks, CustomerService) {
	t.Helper()
	m := mockRepo.NewMocks(t)
	return m, NewCustomerService(m.Repo, zap.NewNop())
}

func TestCustomerService_GetDetail_FiltersOrders(t *testing.T) {
	m, service := newTestCustomerService(t)
	ctx := context.Background()

	customer := &entity.Customer{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "C1"}
	june := &entity.Order{
		ID:          uuid.New(),
		CustomerID:  customer.ID,
		Status:      entity.OrderStatusDelivered,
		DateCreated: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	m.Customer.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	m.Tag.EXPECT().FindByCustomerID(ctx, customer.ID).Return([]*entity.Tag{{Name: "vip"}}, nil)
	m.Order.EXPECT().FindByCustomerID(ctx, customer.ID, mock.MatchedBy(func(f *filter.OrderFilter) bool {
		return f.StartDate != nil && f.StartDate.Equal(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]*entity.Order{june}, nil)

	resp, err := service.GetDetail(ctx, customer.ID.String(), url.Values{"start_date": {"2023-03-01"}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.OrderCount)
	assert.Equal(t, june.ID.String(), resp.Orders[0].ID)
	assert.Equal(t, []string{"vip"}, resp.Customer.Tags)
	assert.Equal(t, map[string]string{"start_date": "2023-03-01"}, resp.Filter)
}

func TestCustomerService_GetDetail_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		_, service := newTestCustomerService(t)

		_, err := service.GetDetail(ctx, "7", nil)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("missing customer", func(t *testing.T) {
		m, service := newTestCustomerService(t)
		id := uuid.New()
		m.Customer.EXPECT().FindByID(ctx, id).Return(nil, nil)

		_, err := service.GetDetail(ctx, id.String(), nil)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("malformed filter", func(t *testing.T) {
		m, service := newTestCustomerService(t)
		customer := &entity.Customer{BaseSimple: entity.BaseSimple{ID: uuid.New()}}
		m.Customer.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

		_, err := service.GetDetail(ctx, customer.ID.String(), url.Values{"end_date": {"June"}})
		verr, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "end_date")
	})
}

func TestCustomerService_GetUserPage(t *testing.T) {
	m, service := newTestCustomerService(t)
	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: userID, Name: "alice"}

	m.Customer.EXPECT().FindByUserID(ctx, userID).Return(customer, nil)
	m.Order.EXPECT().FindByCustomerID(ctx, customer.ID, (*filter.OrderFilter)(nil)).Return([]*entity.Order{
		{ID: uuid.New(), Status: entity.OrderStatusDelivered},
		{ID: uuid.New(), Status: entity.OrderStatusPending},
		{ID: uuid.New(), Status: entity.OrderStatusPending},
		{ID: uuid.New(), Status: entity.OrderStatusOutForDelivery},
	}, nil)

	page, err := service.GetUserPage(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalOrders)
	assert.Equal(t, 1, page.Delivered)
	assert.Equal(t, 2, page.Pending)
	assert.Equal(t, "alice", page.Customer.Name)
}

func TestCustomerService_GetUserPage_NoProfile(t *testing.T) {
	m, service := newTestCustomerService(t)
	ctx := context.Background()
	userID := uuid.New()
	m.Customer.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)

	_, err := service.GetUserPage(ctx, userID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
