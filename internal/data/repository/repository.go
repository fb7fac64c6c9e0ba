package repository

import (
	"customer-crm/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Group    GroupRepository
	Session  SessionRepository
	Customer CustomerRepository
	Tag      TagRepository
	Product  ProductRepository
	Order    OrderRepository

	// Tx runs work in a transaction. It is nil on transaction-scoped copies.
	Tx Transactor
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.Tx = NewTransactor(db, log)
	return repo
}

func newRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Group:    NewGroupRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Tag:      NewTagRepository(db, log),
		Product:  NewProductRepository(db, log),
		Order:    NewOrderRepository(db, log),
	}
}
