package utils

import (
	"fmt"
	"reflect"
	"strings"

	"customer-crm/internal/data/entity"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so errors line up with the form.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return entity.OrderStatus(fl.Field().String()).IsValid()
	})

	return v
}

// ValidateStruct returns field errors keyed by the submitted field path, e.g.
// "username" or "orders[1].status". It returns nil when data is valid.
func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[fieldPath(err)] = getErrorMessage(err)
		}
	}

	return errors
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return err.Field()
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if err.Kind() == reflect.Slice {
			return fmt.Sprintf("At least %s entries are required", err.Param())
		}
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		if err.Kind() == reflect.Slice {
			return fmt.Sprintf("At most %s entries are allowed", err.Param())
		}
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "eqfield":
		return "The two password fields didn't match"
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid":
		return "Must be a valid UUID"
	case "order_status":
		statuses := make([]string, 0, 3)
		for _, s := range entity.OrderStatuses() {
			statuses = append(statuses, string(s))
		}
		return fmt.Sprintf("Must be one of: %s", strings.Join(statuses, ", "))
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}
