package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Username  string `json:"username" validate:"required,min=3"`
	Email     string `json:"email" validate:"required,email"`
	Password1 string `json:"password1" validate:"required"`
	Password2 string `json:"password2" validate:"required,eqfield=Password1"`
}

type row struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,order_status"`
}

type rowsForm struct {
	Rows []row `json:"orders" validate:"required,min=1,max=2,dive"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(&signupForm{
		Username:  "alice",
		Email:     "alice@example.com",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	})
	assert.Nil(t, errs)
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	errs := ValidateStruct(&signupForm{
		Username:  "al",
		Email:     "nope",
		Password1: "one",
		Password2: "two",
	})

	assert.Equal(t, map[string]string{
		"username":  "Minimum length is 3",
		"email":     "Invalid email format",
		"password2": "The two password fields didn't match",
	}, errs)
}

func TestValidateStruct_NestedRows(t *testing.T) {
	errs := ValidateStruct(&rowsForm{Rows: []row{
		{ProductID: "3f2504e0-4f89-11d3-9a0c-0305e82c3301", Status: "Pending"},
		{ProductID: "bad", Status: "Shipped"},
	}})

	assert.Equal(t, "Must be a valid UUID", errs["orders[1].product_id"])
	assert.Equal(t, "Must be one of: Pending, Out for delivery, Delivered", errs["orders[1].status"])
	assert.Len(t, errs, 2)
}

func TestValidateStruct_RowCount(t *testing.T) {
	errs := ValidateStruct(&rowsForm{Rows: []row{}})
	assert.Equal(t, "At least 1 entries are required", errs["orders"])

	three := []row{
		{ProductID: "3f2504e0-4f89-11d3-9a0c-0305e82c3301", Status: "Pending"},
		{ProductID: "3f2504e0-4f89-11d3-9a0c-0305e82c3301", Status: "Pending"},
		{ProductID: "3f2504e0-4f89-11d3-9a0c-0305e82c3301", Status: "Pending"},
	}
	errs = ValidateStruct(&rowsForm{Rows: three})
	assert.Equal(t, "At most 2 entries are allowed", errs["orders"])
}
