package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation = "23505"

	usernameConstraint = "users_username_key"
	emailConstraint    = "students_email_key"
)

// isDuplicate reports whether err is a unique violation of the named constraint.
func isDuplicate(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}
