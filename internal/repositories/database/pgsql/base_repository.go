package pgsql

import (
	"errors"

	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories translate into application errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB portsrepo.DBTX
}

// pgErrorCode returns the SQLSTATE of a PostgreSQL error, or "" for any other error.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
