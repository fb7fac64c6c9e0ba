package repository

import (
	"context"

	"customer-crm/internal/data/entity"
	"customer-crm/internal/data/repository"
	"customer-crm/internal/filter"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)
	return order, args.Error(1)
}

func (m *MockOrderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, f *filter.OrderFilter) ([]*entity.Order, error) {
	args := m.Called(ctx, customerID, f)
	orders, _ := args.Get(0).([]*entity.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	args := m.Called(ctx, limit)
	orders, _ := args.Get(0).([]*entity.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Stats(ctx context.Context) (*repository.OrderStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*repository.OrderStats)
	return stats, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockOrderRepository) EXPECT() *MockOrderRepository_Expecter {
	return &MockOrderRepository_Expecter{mock: &m.Mock}
}

type MockOrderRepository_Create_Call struct {
	*mock.Call
}

func (e *MockOrderRepository_Expecter) Create(ctx, order any) *MockOrderRepository_Create_Call {
	return &MockOrderRepository_Create_Call{Call: e.mock.On("Create", ctx, order)}
}

func (c *MockOrderRepository_Create_Call) Run(run func(ctx context.Context, order *entity.Order)) *MockOrderRepository_Create_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(*entity.Order))
	})
	return c
}

func (c *MockOrderRepository_Create_Call) Return(err error) *MockOrderRepository_Create_Call {
	c.Call.Return(err)
	return c
}

type MockOrderRepository_FindByID_Call struct {
	*mock.Call
}

func (e *MockOrderRepository_Expecter) FindByID(ctx, id any) *MockOrderRepository_FindByID_Call {
	return &MockOrderRepository_FindByID_Call{Call: e.mock.On("FindByID", ctx, id)}
}

func (c *MockOrderRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockOrderRepository_FindByID_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID))
	})
	return c
}

func (c *MockOrderRepository_FindByID_Call) Return(order *entity.Order, err error) *MockOrderRepository_FindByID_Call {
	c.Call.Return(order, err)
	return c
}

type MockOrderRepository_FindByCustomerID_Call struct {
	*mock.Call
}

func (e *MockOrderRepository_Expecter) FindByCustomerID(ctx, customerID, f any) *MockOrderRepository_FindByCustomerID_Call {
	return &MockOrderRepository_FindByCustomerID_Call{Call: e.mock.On("FindByCustomerID", ctx, customerID, f)}
}

func (c *MockOrderRepository_FindByCustomerID_Call) Run(run func(ctx context.Context, customerID uuid.UUID, f *filter.OrderFilter)) *MockOrderRepository_FindByCustomerID_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID), args.Get(2).(*filter.OrderFilter))
	})
	return c
}

func (c *MockOrderRepository_FindByCustomerID_Call) Return(orders []*entity.Order, err error) *MockOrderRepository_FindByCustomerID_Call {
	c.Call.Return(orders, err)
	return c
}

type MockOrderRepository_FindRecent_Call struct {
	*mock.Call
}

func (e *MockOrderRepository_Expecter) FindRecent(ctx, limit any) *MockOrderRepository_FindRecent_Call {
	return &MockOrderRepository_FindRecent_Call{Call: e.mock.On("FindRecent", ctx, limit)}
}

func (c *MockOrderRepository_FindRecent_Call) Run(run func(ctx context.Context, limit int)) *MockOrderRepository_FindRecent_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(int))
	})
	return c
}

func (c *MockOrderRepository_FindRecent_Call) Return(orders []*entity.Order, err error) *MockOrderRepository_FindRecent_Call {
	c.Call.Return(orders, err)
	return c
}

type MockOrderRepository_Stats_Call struct {
	*mock.Call
}

func (e *MockOrderRepository_Expecter) Stats(ctx any) *MockOrderRepository_Stats_Call {
	return &MockOrderRepository_Stats_Call{Call: e.mock.On("Stats", ctx)}
}

func (c *MockOrderRepository_Stats_Call) Run(run func(ctx context.Context)) *MockOrderRepository_Stats_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context))
	})
	return c
}

func (c *MockOrderRepository_Stats_Call) Return(stats *repository.OrderStats, err error) *MockOrderRepository_Stats_Call {
	c.Call.Return(stats, err)
	return c
}

type MockOrderRepository_Update_Call struct {
	*mock.Call
}

func (e *MockOrderRepository_Expecter) Update(ctx, order any) *MockOrderRepository_Update_Call {
	return &MockOrderRepository_Update_Call{Call: e.mock.On("Update", ctx, order)}
}

func (c *MockOrderRepository_Update_Call) Run(run func(ctx context.Context, order *entity.Order)) *MockOrderRepository_Update_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(*entity.Order))
	})
	return c
}

func (c *MockOrderRepository_Update_Call) Return(err error) *MockOrderRepository_Update_Call {
	c.Call.Return(err)
	return c
}

type MockOrderRepository_Delete_Call struct {
	*mock.Call
}

func (e *MockOrderRepository_Expecter) Delete(ctx, id any) *MockOrderRepository_Delete_Call {
	return &MockOrderRepository_Delete_Call{Call: e.mock.On("Delete", ctx, id)}
}

func (c *MockOrderRepository_Delete_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockOrderRepository_Delete_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID))
	})
	return c
}

func (c *MockOrderRepository_Delete_Call) Return(err error) *MockOrderRepository_Delete_Call {
	c.Call.Return(err)
	return c
}
