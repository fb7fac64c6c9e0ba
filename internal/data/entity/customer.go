package entity

import "github.com/google/uuid"

// Customer is the profile that backs every User one-to-one.
type Customer struct {
	BaseSimple
	UserID     uuid.UUID `db:"user_id"`
	Name       string    `db:"name"`
	Phone      *string   `db:"phone"`
	Email      *string   `db:"email"`
	ProfilePic *string   `db:"profile_pic"`
}
