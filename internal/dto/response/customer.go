package response

import (
	"time"

	"customer-crm/internal/data/entity"
)

type CustomerResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Phone      *string   `json:"phone,omitempty"`
	Email      *string   `json:"email,omitempty"`
	ProfilePic *string   `json:"profile_pic,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CustomerDetailResponse backs /customer/{id}. Filter echoes the accepted
// query parameters; OrderCount is the size of the filtered set.
type CustomerDetailResponse struct {
	Customer   CustomerResponse  `json:"customer"`
	Orders     []OrderResponse   `json:"orders"`
	OrderCount int               `json:"order_count"`
	Filter     map[string]string `json:"filter"`
}

// UserPageResponse backs /user.
type UserPageResponse struct {
	Customer    CustomerResponse `json:"customer"`
	Orders      []OrderResponse  `json:"orders"`
	TotalOrders int              `json:"total_orders"`
	Delivered   int              `json:"delivered"`
	Pending     int              `json:"pending"`
}

func CustomerToResponse(c *entity.Customer, tags []*entity.Tag) CustomerResponse {
	resp := CustomerResponse{
		ID:         c.ID.String(),
		UserID:     c.UserID.String(),
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		ProfilePic: c.ProfilePic,
		CreatedAt:  c.CreatedAt,
	}

	for _, t := range tags {
		resp.Tags = append(resp.Tags, t.Name)
	}

	return resp
}

func CustomersToResponse(customers []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerToResponse(c, nil))
	}
	return out
}
