package response

type DashboardResponse struct {
	TotalCustomers int                `json:"total_customers"`
	TotalOrders    int64              `json:"total_orders"`
	Delivered      int64              `json:"delivered"`
	Pending        int64              `json:"pending"`
	OutForDelivery int64              `json:"out_for_delivery"`
	RecentOrders   []OrderResponse    `json:"recent_orders"`
	Customers      []CustomerResponse `json:"customers"`
}
