package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"customer-crm/internal/data/entity"
	"customer-crm/internal/filter"
	"customer-crm/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// OrderStats counts orders per status.
type OrderStats struct {
	Total          int64
	Pending        int64
	OutForDelivery int64
	Delivered      int64
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, f *filter.OrderFilter) ([]*entity.Order, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.Order, error)
	Stats(ctx context.Context) (*OrderStats, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewOrderRepository(db database.Querier, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderSelect = `
	SELECT o.id, o.customer_id, o.product_id, o.status, o.note, o.date_created,
	       p.name, c.name
	FROM orders o
	JOIN products p ON p.id = o.product_id
	JOIN customers c ON c.id = o.customer_id
`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.ProductID,
		&o.Status,
		&o.Note,
		&o.DateCreated,
		&o.ProductName,
		&o.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, product_id, status, note, date_created)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.ProductID,
		order.Status,
		order.Note,
		order.DateCreated,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("customer_id", order.CustomerID.String()),
			zap.String("product_id", order.ProductID.String()),
		)
		return fmt.Errorf("create order for customer %s: %w", order.CustomerID.String(), err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

// FindByCustomerID lists one customer's orders, newest first, narrowed by f.
func (r *orderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, f *filter.OrderFilter) ([]*entity.Order, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(orderSelect)
	queryBuilder.WriteString(` WHERE o.customer_id = $1`)

	args := []any{customerID}
	if clause, filterArgs := f.Where("o", len(args)+1); clause != "" {
		queryBuilder.WriteString(" AND ")
		queryBuilder.WriteString(clause)
		args = append(args, filterArgs...)
	}

	queryBuilder.WriteString(` ORDER BY o.date_created DESC`)

	orders, err := r.findMany(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find customer orders",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
			zap.Any("filter", f.Values()),
		)
		return nil, fmt.Errorf("find orders for customer %s: %w", customerID.String(), err)
	}

	return orders, nil
}

func (r *orderRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	orders, err := r.findMany(ctx, orderSelect+` ORDER BY o.date_created DESC LIMIT $1`, limit)
	if err != nil {
		r.log.Error("Failed to find recent orders", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("find recent orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Stats(ctx context.Context) (*OrderStats, error) {
	query := `SELECT status, COUNT(*) FROM orders GROUP BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()

	stats := &OrderStats{}
	for rows.Next() {
		var status entity.OrderStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan order count: %w", err)
		}
		stats.Add(status, count)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order counts: %w", err)
	}

	return stats, nil
}

// Add folds count orders of status into the totals.
func (s *OrderStats) Add(status entity.OrderStatus, count int64) {
	s.Total += count
	switch status {
	case entity.OrderStatusPending:
		s.Pending += count
	case entity.OrderStatusOutForDelivery:
		s.OutForDelivery += count
	case entity.OrderStatusDelivered:
		s.Delivered += count
	}
}

// Update writes the editable columns. date_created is never changed.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET customer_id = $2, product_id = $3, status = $4, note = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.ProductID,
		order.Status,
		order.Note,
	)

	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return fmt.Errorf("update order %s: %w", order.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update order %s: %w", order.ID.String(), ErrOrderNotFound)
	}

	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete order %s: %w", id.String(), ErrOrderNotFound)
	}

	r.log.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}
