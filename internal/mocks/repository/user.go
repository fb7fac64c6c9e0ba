// Package repository holds testify mocks for the repository interfaces.
package repository

import (
	"context"
	"time"

	"customer-crm/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository registers expectation checks on t's cleanup.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns typed helpers for setting expectations.
func (m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &m.Mock}
}

type MockUserRepository_Create_Call struct {
	*mock.Call
}

func (e *MockUserRepository_Expecter) Create(ctx, user any) *MockUserRepository_Create_Call {
	return &MockUserRepository_Create_Call{Call: e.mock.On("Create", ctx, user)}
}

func (c *MockUserRepository_Create_Call) Run(run func(ctx context.Context, user *entity.User)) *MockUserRepository_Create_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(*entity.User))
	})
	return c
}

func (c *MockUserRepository_Create_Call) Return(err error) *MockUserRepository_Create_Call {
	c.Call.Return(err)
	return c
}

type MockUserRepository_FindByID_Call struct {
	*mock.Call
}

func (e *MockUserRepository_Expecter) FindByID(ctx, id any) *MockUserRepository_FindByID_Call {
	return &MockUserRepository_FindByID_Call{Call: e.mock.On("FindByID", ctx, id)}
}

func (c *MockUserRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockUserRepository_FindByID_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID))
	})
	return c
}

func (c *MockUserRepository_FindByID_Call) Return(user *entity.User, err error) *MockUserRepository_FindByID_Call {
	c.Call.Return(user, err)
	return c
}

type MockUserRepository_FindByUsername_Call struct {
	*mock.Call
}

func (e *MockUserRepository_Expecter) FindByUsername(ctx, username any) *MockUserRepository_FindByUsername_Call {
	return &MockUserRepository_FindByUsername_Call{Call: e.mock.On("FindByUsername", ctx, username)}
}

func (c *MockUserRepository_FindByUsername_Call) Run(run func(ctx context.Context, username string)) *MockUserRepository_FindByUsername_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(string))
	})
	return c
}

func (c *MockUserRepository_FindByUsername_Call) Return(user *entity.User, err error) *MockUserRepository_FindByUsername_Call {
	c.Call.Return(user, err)
	return c
}

type MockUserRepository_UpdateLastLogin_Call struct {
	*mock.Call
}

func (e *MockUserRepository_Expecter) UpdateLastLogin(ctx, id, at any) *MockUserRepository_UpdateLastLogin_Call {
	return &MockUserRepository_UpdateLastLogin_Call{Call: e.mock.On("UpdateLastLogin", ctx, id, at)}
}

func (c *MockUserRepository_UpdateLastLogin_Call) Run(run func(ctx context.Context, id uuid.UUID, at time.Time)) *MockUserRepository_UpdateLastLogin_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(uuid.UUID), args.Get(2).(time.Time))
	})
	return c
}

func (c *MockUserRepository_UpdateLastLogin_Call) Return(err error) *MockUserRepository_UpdateLastLogin_Call {
	c.Call.Return(err)
	return c
}
