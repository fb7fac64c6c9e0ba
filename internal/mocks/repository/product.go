package repository

import (
	"context"

	"customer-crm/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)
	return product, args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*entity.Product)
	return products, args.Error(1)
}

type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &m.Mock}
}

type MockProductRepository_FindByID_Call struct {
	*mock.Call
}

func (e *MockProductRepository_Expecter) FindByID(ctx, id any) *MockProductRepository_FindByID_Call {
	return &MockProductRepository_FindByID_Call{Call: e.mock.On("FindByID", ctx, id)}
}

func (c *MockProductRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockProductRepository_FindByID_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID))
	})
	return c
}

func (c *MockProductRepository_FindByID_Call) Return(product *entity.Product, err error) *MockProductRepository_FindByID_Call {
	c.Call.Return(product, err)
	return c
}

type MockProductRepository_FindAll_Call struct {
	*mock.Call
}

func (e *MockProductRepository_Expecter) FindAll(ctx any) *MockProductRepository_FindAll_Call {
	return &MockProductRepository_FindAll_Call{Call: e.mock.On("FindAll", ctx)}
}

func (c *MockProductRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockProductRepository_FindAll_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context))
	})
	return c
}

func (c *MockProductRepository_FindAll_Call) Return(products []*entity.Product, err error) *MockProductRepository_FindAll_Call {
	c.Call.Return(products, err)
	return c
}
