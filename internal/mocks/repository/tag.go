package repository

import (
	"context"

	"customer-crm/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTagRepository struct {
	mock.Mock
}

func NewMockTagRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTagRepository {
	m := &MockTagRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTagRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Tag, error) {
	args := m.Called(ctx, customerID)
	tags, _ := args.Get(0).([]*entity.Tag)
	return tags, args.Error(1)
}

type MockTagRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockTagRepository) EXPECT() *MockTagRepository_Expecter {
	return &MockTagRepository_Expecter{mock: &m.Mock}
}

type MockTagRepository_FindByCustomerID_Call struct {
	*mock.Call
}

func (e *MockTagRepository_Expecter) FindByCustomerID(ctx, customerID any) *MockTagRepository_FindByCustomerID_Call {
	return &MockTagRepository_FindByCustomerID_Call{Call: e.mock.On("FindByCustomerID", ctx, customerID)}
}

func (c *MockTagRepository_FindByCustomerID_Call) Run(run func(ctx context.Context, customerID uuid.UUID)) *MockTagRepository_FindByCustomerID_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID))
	})
	return c
}

func (c *MockTagRepository_FindByCustomerID_Call) Return(tags []*entity.Tag, err error) *MockTagRepository_FindByCustomerID_Call {
	c.Call.Return(tags, err)
	return c
}
