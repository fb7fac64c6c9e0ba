package response

import (
	"time"

	"customer-crm/internal/data/entity"
)

type OrderResponse struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name,omitempty"`
	ProductID    string             `json:"product_id"`
	ProductName  string             `json:"product_name,omitempty"`
	Status       entity.OrderStatus `json:"status"`
	Note         *string            `json:"note,omitempty"`
	DateCreated  time.Time          `json:"date_created"`
}

// OrderFormResponse is the blank or prefilled order form.
type OrderFormResponse struct {
	Customer *CustomerResponse    `json:"customer,omitempty"`
	Order    *OrderResponse       `json:"order,omitempty"`
	Products []ProductResponse    `json:"products"`
	Statuses []entity.OrderStatus `json:"statuses"`
	MaxRows  int                  `json:"max_rows,omitempty"`
}

// DeleteOrderResponse is the confirmation view shown before deleting.
type DeleteOrderResponse struct {
	Item    OrderResponse `json:"item"`
	Confirm string        `json:"confirm"`
}

func OrderToResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID.String(),
		CustomerID:   o.CustomerID.String(),
		CustomerName: o.CustomerName,
		ProductID:    o.ProductID.String(),
		ProductName:  o.ProductName,
		Status:       o.Status,
		Note:         o.Note,
		DateCreated:  o.DateCreated,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderToResponse(o))
	}
	return out
}
