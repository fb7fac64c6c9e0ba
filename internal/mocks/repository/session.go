package repository

import (
	"context"

	"customer-crm/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct {
	mock.Mock
}

func NewMockSessionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionRepository {
	m := &MockSessionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockSessionRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockSessionRepository) EXPECT() *MockSessionRepository_Expecter {
	return &MockSessionRepository_Expecter{mock: &m.Mock}
}

type MockSessionRepository_Create_Call struct {
	*mock.Call
}

func (e *MockSessionRepository_Expecter) Create(ctx, session any) *MockSessionRepository_Create_Call {
	return &MockSessionRepository_Create_Call{Call: e.mock.On("Create", ctx, session)}
}

func (c *MockSessionRepository_Create_Call) Run(run func(ctx context.Context, session *entity.Session)) *MockSessionRepository_Create_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(*entity.Session))
	})
	return c
}

func (c *MockSessionRepository_Create_Call) Return(err error) *MockSessionRepository_Create_Call {
	c.Call.Return(err)
	return c
}

type MockSessionRepository_FindValidSession_Call struct {
	*mock.Call
}

func (e *MockSessionRepository_Expecter) FindValidSession(ctx, token any) *MockSessionRepository_FindValidSession_Call {
	return &MockSessionRepository_FindValidSession_Call{Call: e.mock.On("FindValidSession", ctx, token)}
}

func (c *MockSessionRepository_FindValidSession_Call) Run(run func(ctx context.Context, token string)) *MockSessionRepository_FindValidSession_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(string))
	})
	return c
}

func (c *MockSessionRepository_FindValidSession_Call) Return(session *entity.Session, err error) *MockSessionRepository_FindValidSession_Call {
	c.Call.Return(session, err)
	return c
}

type MockSessionRepository_Revoke_Call struct {
	*mock.Call
}

func (e *MockSessionRepository_Expecter) Revoke(ctx, token any) *MockSessionRepository_Revoke_Call {
	return &MockSessionRepository_Revoke_Call{Call: e.mock.On("Revoke", ctx, token)}
}

func (c *MockSessionRepository_Revoke_Call) Run(run func(ctx context.Context, token string)) *MockSessionRepository_Revoke_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args.Get(0).(context.Context), args.Get(1).(string))
	})
	return c
}

func (c *MockSessionRepository_Revoke_Call) Return(err error) *MockSessionRepository_Revoke_Call {
	c.Call.Return(err)
	return c
}
