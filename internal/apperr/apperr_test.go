package apperr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound_WrapsSentinel(t *testing.T) {
	err := NotFound("order", "abc")

	assert.True(t, Is(err, ErrNotFound))
	assert.Equal(t, "order abc: not found", err.Error())
}

func TestWrap_KeepsValidationError(t *testing.T) {
	verr := NewValidationError(nil)
	verr.Add("status", "bad")

	err := Wrap(verr, "update order")

	got, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "bad", got.Fields["status"])
}

func TestValidationError_AddKeepsFirstMessage(t *testing.T) {
	verr := NewValidationError(nil)
	assert.False(t, verr.HasErrors())

	verr.Add("start_date", "first")
	verr.Add("start_date", "second")

	assert.True(t, verr.HasErrors())
	assert.Equal(t, "first", verr.Fields["start_date"])
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	verr := NewValidationError(map[string]string{
		"status":     "invalid",
		"end_date":   "invalid date",
		"product_id": "required",
	})

	assert.Equal(t,
		"validation failed: end_date: invalid date; product_id: required; status: invalid",
		verr.Error())
}

func TestAsValidation_OtherError(t *testing.T) {
	_, ok := AsValidation(ErrNotFound)
	assert.False(t, ok)
}
