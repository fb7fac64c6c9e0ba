package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

var (
	// ErrDuplicateUsername is returned by UserRepository.Create when the
	// username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrOrderNotFound is returned when an update or delete matched no order.
	ErrOrderNotFound = errors.New("order not found")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
