package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"promana-go/internal/domain/integrity"
)

// Postgres SQLSTATE codes for integrity constraint violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// Classify maps driver constraint errors onto the integrity sentinels and
// keeps the driver error in the chain. Other errors pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", integrity.ErrAlreadyExists, err)
		case pgCheckViolation, pgForeignKeyViolation, pgNotNullViolation:
			return fmt.Errorf("%w: %w", integrity.ErrConstraintViolation, err)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", integrity.ErrAlreadyExists, err)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%w: %w", integrity.ErrConstraintViolation, err)
		}
	}
	return err
}
