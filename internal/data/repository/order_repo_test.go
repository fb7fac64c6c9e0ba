package repository

import (
	"testing"

	"customer-crm/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestOrderStats_Add(t *testing.T) {
	stats := &OrderStats{}
	stats.Add(entity.OrderStatusPending, 3)
	stats.Add(entity.OrderStatusDelivered, 2)
	stats.Add(entity.OrderStatusOutForDelivery, 1)
	stats.Add(entity.OrderStatus("Devlivered"), 4)

	assert.Equal(t, &OrderStats{
		Total:          10,
		Pending:        3,
		OutForDelivery: 1,
		Delivered:      2,
	}, stats)
}
