package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockGroupRepository struct {
	mock.Mock
}

func NewMockGroupRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGroupRepository {
	m := &MockGroupRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGroupRepository) AddUser(ctx context.Context, userID uuid.UUID, groupName string) error {
	args := m.Called(ctx, userID, groupName)
	return args.Error(0)
}

func (m *MockGroupRepository) FindNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, userID)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type MockGroupRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockGroupRepository) EXPECT() *MockGroupRepository_Expecter {
	return &MockGroupRepository_Expecter{mock: &m.Mock}
}

type MockGroupRepository_AddUser_Call struct {
	*mock.Call
}

func (e *MockGroupRepository_Expecter) AddUser(ctx, userID, groupName any) *MockGroupRepository_AddUser_Call {
	return &MockGroupRepository_AddUser_Call{Call: e.mock.On("AddUser", ctx, userID, groupName)}
}

func (c *MockGroupRepository_AddUser_Call) Run(run func(ctx context.Context, userID uuid.UUID, groupName string)) *MockGroupRepository_AddUser_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID), args.Get(2).(string))
	})
	return c
}

func (c *MockGroupRepository_AddUser_Call) Return(err error) *MockGroupRepository_AddUser_Call {
	c.Call.Return(err)
	return c
}

type MockGroupRepository_FindNamesByUserID_Call struct {
	*mock.Call
}

func (e *MockGroupRepository_Expecter) FindNamesByUserID(ctx, userID any) *MockGroupRepository_FindNamesByUserID_Call {
	return &MockGroupRepository_FindNamesByUserID_Call{Call: e.mock.On("FindNamesByUserID", ctx, userID)}
}

func (c *MockGroupRepository_FindNamesByUserID_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockGroupRepository_FindNamesByUserID_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID))
	})
	return c
}

func (c *MockGroupRepository_FindNamesByUserID_Call) Return(names []string, err error) *MockGroupRepository_FindNamesByUserID_Call {
	c.Call.Return(names, err)
	return c
}
