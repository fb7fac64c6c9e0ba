package repository

import (
	"context"

	"customer-crm/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func NewMockCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*entity.Customer)
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, userID)
	customer, _ := args.Get(0).(*entity.Customer)
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*entity.Customer)
	return customers, args.Error(1)
}

type MockCustomerRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockCustomerRepository) EXPECT() *MockCustomerRepository_Expecter {
	return &MockCustomerRepository_Expecter{mock: &m.Mock}
}

type MockCustomerRepository_Create_Call struct {
	*mock.Call
}

func (e *MockCustomerRepository_Expecter) Create(ctx, customer any) *MockCustomerRepository_Create_Call {
	return &MockCustomerRepository_Create_Call{Call: e.mock.On("Create", ctx, customer)}
}

func (c *MockCustomerRepository_Create_Call) Run(run func(ctx context.Context, customer *entity.Customer)) *MockCustomerRepository_Create_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(*entity.Customer))
	})
	return c
}

func (c *MockCustomerRepository_Create_Call) Return(err error) *MockCustomerRepository_Create_Call {
	c.Call.Return(err)
	return c
}

type MockCustomerRepository_FindByID_Call struct {
	*mock.Call
}

func (e *MockCustomerRepository_Expecter) FindByID(ctx, id any) *MockCustomerRepository_FindByID_Call {
	return &MockCustomerRepository_FindByID_Call{Call: e.mock.On("FindByID", ctx, id)}
}

func (c *MockCustomerRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockCustomerRepository_FindByID_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID))
	})
	return c
}

func (c *MockCustomerRepository_FindByID_Call) Return(customer *entity.Customer, err error) *MockCustomerRepository_FindByID_Call {
	c.Call.Return(customer, err)
	return c
}

type MockCustomerRepository_FindByUserID_Call struct {
	*mock.Call
}

func (e *MockCustomerRepository_Expecter) FindByUserID(ctx, userID any) *MockCustomerRepository_FindByUserID_Call {
	return &MockCustomerRepository_FindByUserID_Call{Call: e.mock.On("FindByUserID", ctx, userID)}
}

func (c *MockCustomerRepository_FindByUserID_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockCustomerRepository_FindByUserID_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID))
	})
	return c
}

func (c *MockCustomerRepository_FindByUserID_Call) Return(customer *entity.Customer, err error) *MockCustomerRepository_FindByUserID_Call {
	c.Call.Return(customer, err)
	return c
}

type MockCustomerRepository_FindAll_Call struct {
	*mock.Call
}

func (e *MockCustomerRepository_Expecter) FindAll(ctx any) *MockCustomerRepository_FindAll_Call {
	return &MockCustomerRepository_FindAll_Call{Call: e.mock.On("FindAll", ctx)}
}

func (c *MockCustomerRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockCustomerRepository_FindAll_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context))
	})
	return c
}

func (c *MockCustomerRepository_FindAll_Call) Return(customers []*entity.Customer, err error) *MockCustomerRepository_FindAll_Call {
	c.Call.Return(customers, err)
	return c
}
