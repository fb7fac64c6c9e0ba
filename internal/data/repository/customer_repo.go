package repository

import (
	"context"
	"errors"
	"fmt"

	"customer-crm/internal/data/entity"
	"customer-crm/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
}

type customerRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCustomerRepository(db database.Querier, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

const customerColumns = `id, user_id, name, phone, email, profile_pic, created_at`

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.UserID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.ProfilePic,
		customer.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("user_id", customer.UserID.String()),
		)
		return fmt.Errorf("create customer for user %s: %w", customer.UserID.String(), err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}
	return customer, nil
}

func (r *customerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	customer, err := r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE user_id = $1`, userID)
	if err != nil {
		r.log.Error("Failed to find customer by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find customer by user ID %s: %w", userID.String(), err)
	}
	return customer, nil
}

func (r *customerRepository) findOne(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.ProfilePic,
		&c.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all customers", zap.Error(err))
		return nil, fmt.Errorf("find all customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Name,
			&c.Phone,
			&c.Email,
			&c.ProfilePic,
			&c.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}
