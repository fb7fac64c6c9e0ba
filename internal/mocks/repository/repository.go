package repository

import (
	"context"

	"customer-crm/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

// Mocks bundles one mock per repository behind a *repository.Repository.
type Mocks struct {
	User     *MockUserRepository
	Group    *MockGroupRepository
	Session  *MockSessionRepository
	Customer *MockCustomerRepository
	Tag      *MockTagRepository
	Product  *MockProductRepository
	Order    *MockOrderRepository
	Tx       *FakeTransactor

	Repo *repository.Repository
}

func NewMocks(t interface {
	mock.TestingT
	Cleanup(func())
}) *Mocks {
	m := &Mocks{
		User:     NewMockUserRepository(t),
		Group:    NewMockGroupRepository(t),
		Session:  NewMockSessionRepository(t),
		Customer: NewMockCustomerRepository(t),
		Tag:      NewMockTagRepository(t),
		Product:  NewMockProductRepository(t),
		Order:    NewMockOrderRepository(t),
	}

	m.Repo = &repository.Repository{
		User:     m.User,
		Group:    m.Group,
		Session:  m.Session,
		Customer: m.Customer,
		Tag:      m.Tag,
		Product:  m.Product,
		Order:    m.Order,
	}
	m.Tx = &FakeTransactor{repo: m.Repo}
	m.Repo.Tx = m.Tx

	return m
}

// FakeTransactor runs fn directly against the mocked repositories and
// records whether the last transaction committed or rolled back.
type FakeTransactor struct {
	repo       *repository.Repository
	Calls      int
	Committed  int
	RolledBack int
}

func (f *FakeTransactor) WithinTx(ctx context.Context, fn func(tx *repository.Repository) error) error {
	f.Calls++
	if err := fn(f.repo); err != nil {
		f.RolledBack++
		return err
	}
	f.Committed++
	return nil
}
