package pgsql

import (
	"errors"
	"fmt"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes for constraint violations.
const (
	pgCodeNotNullViolation    = "23502"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
)

// classifyPgError rewrites constraint violations into the classified app
// errors the service layer surfaces to callers. The column name is attached
// for not-null violations when the driver reports it. Anything else passes
// through unchanged.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgCodeForeignKeyViolation:
		return fmt.Errorf("%w (%s)", apperrors.ErrForeignKey, pgErr.ConstraintName)
	case pgCodeNotNullViolation:
		return apperrors.MissingFieldError(pgErr.ColumnName)
	case pgCodeUniqueViolation:
		return fmt.Errorf("%w (%s)", apperrors.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
