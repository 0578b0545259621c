package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors shared by all repositories. Handlers translate these into
// the distinct 404 / 409 outcomes; they are never folded into generic 500s.
var (
	ErrNotFound      = errors.New("row not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// Postgres error codes used for translation.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}
