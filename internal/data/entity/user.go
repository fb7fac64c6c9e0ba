package entity

import "time"

// UserRole is the coarse authorization class of a user. Role values are
// also the names of the groups that grant them.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	Base
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	IsActive     bool       `db:"is_active"`
	LastLogin    *time.Time `db:"last_login"`
}
