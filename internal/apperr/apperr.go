// Package apperr defines the application error taxonomy shared by services
// and handlers. Wrapping goes through github.com/pkg/errors so logged errors
// carry a stack trace while errors.Is still sees the sentinel.
package apperr

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrNotFound means a referenced customer, order or product does not exist.
	ErrNotFound = New("not found")
	// ErrInvalidCredentials is returned by login for any username/password mismatch.
	ErrInvalidCredentials = New("username or password is incorrect")
	// ErrInactive is returned by login for deactivated accounts.
	ErrInactive = New("account is deactivated")
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Wrap annotates err with a stack trace and message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// NotFound wraps ErrNotFound with the kind and id of the missing record.
func NotFound(kind, id string) error {
	return pkgerrors.Wrapf(ErrNotFound, "%s %s", kind, id)
}

// ValidationError carries per-field messages for a rejected form or query.
// Field keys use the submitted names, e.g. "status" or "orders[2].product_id".
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	if fields == nil {
		fields = make(map[string]string)
	}
	return &ValidationError{Fields: fields}
}

// Add records msg for field, keeping the first message if one is already set.
func (e *ValidationError) Add(field, msg string) {
	if _, exists := e.Fields[field]; exists {
		return
	}
	e.Fields[field] = msg
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidation extracts a *ValidationError from err's chain.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if stderrors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
