// Package filter narrows order collections using untrusted query parameters.
package filter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"customer-crm/internal/apperr"
	"customer-crm/internal/data/entity"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// Query parameter names understood by Parse. customer and date_created are
// not accepted; scope always comes from the caller.
const (
	ParamStartDate = "start_date"
	ParamEndDate   = "end_date"
	ParamProduct   = "product"
	ParamStatus    = "status"
	ParamNote      = "note"
)

// OrderFilter holds the accepted predicates. Nil fields are not applied.
type OrderFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	ProductID *uuid.UUID
	Status    *entity.OrderStatus
	Note      *string
}

// Parse builds a filter from query values. Unknown keys and empty values are
// ignored; malformed values are reported together as a ValidationError.
func Parse(values url.Values) (*OrderFilter, error) {
	f := &OrderFilter{}
	verr := apperr.NewValidationError(nil)

	if v := value(values, ParamStartDate); v != "" {
		if d, err := time.Parse(DateLayout, v); err != nil {
			verr.Add(ParamStartDate, "Enter a valid date (YYYY-MM-DD)")
		} else {
			f.StartDate = &d
		}
	}

	if v := value(values, ParamEndDate); v != "" {
		if d, err := time.Parse(DateLayout, v); err != nil {
			verr.Add(ParamEndDate, "Enter a valid date (YYYY-MM-DD)")
		} else {
			f.EndDate = &d
		}
	}

	if v := value(values, ParamProduct); v != "" {
		if id, err := uuid.Parse(v); err != nil {
			verr.Add(ParamProduct, "Select a valid product")
		} else {
			f.ProductID = &id
		}
	}

	if v := value(values, ParamStatus); v != "" {
		status := entity.OrderStatus(v)
		if !status.IsValid() {
			verr.Add(ParamStatus, "Select a valid status")
		} else {
			f.Status = &status
		}
	}

	if v := value(values, ParamNote); v != "" {
		f.Note = &v
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return f, nil
}

func value(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func (f *OrderFilter) IsEmpty() bool {
	return f == nil || (f.StartDate == nil && f.EndDate == nil &&
		f.ProductID == nil && f.Status == nil && f.Note == nil)
}

// endExclusive is the first instant after the end_date day.
func (f *OrderFilter) endExclusive() time.Time {
	return f.EndDate.AddDate(0, 0, 1)
}

// Matches reports whether o satisfies every predicate.
func (f *OrderFilter) Matches(o *entity.Order) bool {
	if f == nil {
		return true
	}
	if f.StartDate != nil && o.DateCreated.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && !o.DateCreated.Before(f.endExclusive()) {
		return false
	}
	if f.ProductID != nil && o.ProductID != *f.ProductID {
		return false
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.Note != nil && (o.Note == nil || *o.Note != *f.Note) {
		return false
	}
	return true
}

// Apply returns the matching orders in their original order.
func (f *OrderFilter) Apply(orders []*entity.Order) []*entity.Order {
	out := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		if f.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}

// Where renders the predicates as a SQL fragment over the orders table
// aliased as alias, numbering placeholders from next. It returns an empty
// string when there is nothing to add.
func (f *OrderFilter) Where(alias string, next int) (string, []any) {
	if f.IsEmpty() {
		return "", nil
	}

	col := func(name string) string {
		if alias == "" {
			return name
		}
		return alias + "." + name
	}

	var clauses []string
	var args []any
	add := func(expr string, arg any) {
		clauses = append(clauses, fmt.Sprintf(expr, next))
		args = append(args, arg)
		next++
	}

	if f.StartDate != nil {
		add(col("date_created")+" >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add(col("date_created")+" < $%d", f.endExclusive())
	}
	if f.ProductID != nil {
		add(col("product_id")+" = $%d", *f.ProductID)
	}
	if f.Status != nil {
		add(col("status")+" = $%d", string(*f.Status))
	}
	if f.Note != nil {
		add(col("note")+" = $%d", *f.Note)
	}

	return strings.Join(clauses, " AND "), args
}

// Values echoes the accepted predicates using their query parameter names.
func (f *OrderFilter) Values() map[string]string {
	out := make(map[string]string)
	if f == nil {
		return out
	}
	if f.StartDate != nil {
		out[ParamStartDate] = f.StartDate.Format(DateLayout)
	}
	if f.EndDate != nil {
		out[ParamEndDate] = f.EndDate.Format(DateLayout)
	}
	if f.ProductID != nil {
		out[ParamProduct] = f.ProductID.String()
	}
	if f.Status != nil {
		out[ParamStatus] = string(*f.Status)
	}
	if f.Note != nil {
		out[ParamNote] = *f.Note
	}
	return out
}
