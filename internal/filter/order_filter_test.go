package filter

import (
	"net/url"
	"testing"
	"time"

	"customer-crm/internal/apperr"
	"customer-crm/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func order(date string, status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		ProductID:   uuid.New(),
		Status:      status,
		DateCreated: day(date),
	}
}

func ids(orders []*entity.Order) []uuid.UUID {
	out := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestParse_EmptyAndUnknownIgnored(t *testing.T) {
	f, err := Parse(url.Values{
		"start_date":   {""},
		"status":       {"   "},
		"customer":     {uuid.NewString()},
		"date_created": {"2023-01-01"},
		"page":         {"2"},
	})
	require.NoError(t, err)
	assert.True(t, f.IsEmpty())
}

func TestParse_AllPredicates(t *testing.T) {
	productID := uuid.New()

	f, err := Parse(url.Values{
		"start_date": {"2023-01-01"},
		"end_date":   {"2023-12-31"},
		"product":    {productID.String()},
		"status":     {"Out for delivery"},
		"note":       {"leave at door"},
	})
	require.NoError(t, err)

	require.NotNil(t, f.StartDate)
	assert.Equal(t, day("2023-01-01"), *f.StartDate)
	require.NotNil(t, f.EndDate)
	assert.Equal(t, day("2023-12-31"), *f.EndDate)
	require.NotNil(t, f.ProductID)
	assert.Equal(t, productID, *f.ProductID)
	require.NotNil(t, f.Status)
	assert.Equal(t, entity.OrderStatusOutForDelivery, *f.Status)
	require.NotNil(t, f.Note)
	assert.Equal(t, "leave at door", *f.Note)

	assert.Equal(t, map[string]string{
		"start_date": "2023-01-01",
		"end_date":   "2023-12-31",
		"product":    productID.String(),
		"status":     "Out for delivery",
		"note":       "leave at door",
	}, f.Values())
}

func TestParse_MalformedValues(t *testing.T) {
	_, err := Parse(url.Values{
		"start_date": {"01/03/2023"},
		"end_date":   {"2023-02-30"},
		"product":    {"not-a-uuid"},
		"status":     {"Shipped"},
	})
	require.Error(t, err)

	verr, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, verr.Fields, 4)
	assert.Contains(t, verr.Fields, ParamStartDate)
	assert.Contains(t, verr.Fields, ParamEndDate)
	assert.Contains(t, verr.Fields, ParamProduct)
	assert.Contains(t, verr.Fields, ParamStatus)
}

func TestApply_StartDateScenario(t *testing.T) {
	january := order("2023-01-01", entity.OrderStatusPending)
	june := order("2023-06-01", entity.OrderStatusDelivered)

	f, err := Parse(url.Values{"start_date": {"2023-03-01"}})
	require.NoError(t, err)

	got := f.Apply([]*entity.Order{january, june})
	assert.Equal(t, []uuid.UUID{june.ID}, ids(got))
}

func TestApply_BoundsAreInclusive(t *testing.T) {
	orders := []*entity.Order{
		order("2023-01-01", entity.OrderStatusPending),
		order("2023-02-15", entity.OrderStatusPending),
		order("2023-03-01", entity.OrderStatusDelivered),
		order("2023-03-02", entity.OrderStatusDelivered),
	}
	// Later on the end day still counts.
	orders[2].DateCreated = orders[2].DateCreated.Add(23 * time.Hour)

	f, err := Parse(url.Values{"start_date": {"2023-01-01"}, "end_date": {"2023-03-01"}})
	require.NoError(t, err)

	got := f.Apply(orders)
	assert.Equal(t, ids(orders[:3]), ids(got))
}

func TestApply_RangeProperty(t *testing.T) {
	dates := []string{
		"2022-12-31", "2023-01-01", "2023-01-15", "2023-02-28",
		"2023-03-01", "2023-06-01", "2023-06-02", "2024-01-01",
	}
	var orders []*entity.Order
	for _, d := range dates {
		orders = append(orders, order(d, entity.OrderStatusPending))
	}

	for _, a := range dates {
		for _, b := range dates {
			f, err := Parse(url.Values{"start_date": {a}, "end_date": {b}})
			require.NoError(t, err)

			var want []uuid.UUID
			for _, o := range orders {
				if !o.DateCreated.Before(day(a)) && !o.DateCreated.After(day(b)) {
					want = append(want, o.ID)
				}
			}

			got := ids(f.Apply(orders))
			if len(want) == 0 {
				assert.Empty(t, got, "start=%s end=%s", a, b)
				continue
			}
			assert.Equal(t, want, got, "start=%s end=%s", a, b)
		}
	}
}

func TestApply_EmptyFilterReturnsInput(t *testing.T) {
	orders := []*entity.Order{
		order("2023-06-01", entity.OrderStatusDelivered),
		order("2023-01-01", entity.OrderStatusPending),
	}

	f, err := Parse(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, ids(orders), ids(f.Apply(orders)))

	var nilFilter *OrderFilter
	assert.Equal(t, ids(orders), ids(nilFilter.Apply(orders)))
}

func TestApply_PredicatesCombineWithAnd(t *testing.T) {
	note := "gift"
	a := order("2023-05-01", entity.OrderStatusDelivered)
	a.Note = &note
	b := order("2023-05-02", entity.OrderStatusDelivered)
	c := order("2023-05-03", entity.OrderStatusPending)
	c.Note = &note

	f, err := Parse(url.Values{"status": {"Delivered"}, "note": {"gift"}})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{a.ID}, ids(f.Apply([]*entity.Order{a, b, c})))
}

func TestApply_ProductPredicate(t *testing.T) {
	a := order("2023-05-01", entity.OrderStatusPending)
	b := order("2023-05-02", entity.OrderStatusPending)

	f, err := Parse(url.Values{"product": {b.ProductID.String()}})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{b.ID}, ids(f.Apply([]*entity.Order{a, b})))
}

func TestWhere_Empty(t *testing.T) {
	f, err := Parse(url.Values{})
	require.NoError(t, err)

	clause, args := f.Where("o", 2)
	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestWhere_NumbersPlaceholders(t *testing.T) {
	f, err := Parse(url.Values{
		"start_date": {"2023-03-01"},
		"end_date":   {"2023-03-31"},
		"status":     {"Pending"},
	})
	require.NoError(t, err)

	clause, args := f.Where("o", 2)
	assert.Equal(t, "o.date_created >= $2 AND o.date_created < $3 AND o.status = $4", clause)
	require.Len(t, args, 3)
	assert.Equal(t, day("2023-03-01"), args[0])
	assert.Equal(t, day("2023-04-01"), args[1])
	assert.Equal(t, "Pending", args[2])
}

func TestWhere_NoAlias(t *testing.T) {
	f, err := Parse(url.Values{"note": {"x'; DROP TABLE orders; --"}})
	require.NoError(t, err)

	clause, args := f.Where("", 1)
	assert.Equal(t, "note = $1", clause)
	assert.Equal(t, []any{"x'; DROP TABLE orders; --"}, args)
}
