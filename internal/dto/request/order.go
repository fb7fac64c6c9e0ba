package request

// MaxOrderRows is the number of rows offered by the create order form.
const MaxOrderRows = 10

type OrderRowRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Status    string  `json:"status" validate:"required,order_status"`
	Note      *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

// CreateOrdersRequest is the multi-row form posted to /create_order/{id}.
// The customer always comes from the URL.
type CreateOrdersRequest struct {
	Orders []OrderRowRequest `json:"orders" validate:"required,min=1,max=10,dive"`
}

type UpdateOrderRequest struct {
	CustomerID string  `json:"customer_id" validate:"required,uuid"`
	ProductID  string  `json:"product_id" validate:"required,uuid"`
	Status     string  `json:"status" validate:"required,order_status"`
	Note       *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}
