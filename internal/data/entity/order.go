package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusOutForDelivery OrderStatus = "Out for delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// OrderStatuses lists every status in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPending, OrderStatusOutForDelivery, OrderStatusDelivered}
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusOutForDelivery, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// Order links one Customer to one Product. DateCreated is set once on insert.
type Order struct {
	ID          uuid.UUID   `db:"id"`
	CustomerID  uuid.UUID   `db:"customer_id"`
	ProductID   uuid.UUID   `db:"product_id"`
	Status      OrderStatus `db:"status"`
	Note        *string     `db:"note"`
	DateCreated time.Time   `db:"date_created"`

	// Read-only columns joined in by the repository.
	ProductName  string `db:"product_name"`
	CustomerName string `db:"customer_name"`
}
