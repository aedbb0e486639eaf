package repo

import (
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"jokecatalog/src/core/domain"
	"jokecatalog/src/infra/metrics"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// isInvalidText reports text Postgres refuses to store, such as NUL bytes.
func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.CharacterNotInRepertoire || pgErr.Code == pgerrcode.UntranslatableCharacter
	}
	return false
}

// observe records a database operation. Missing rows and rejected content are
// expected outcomes and are not counted as errors.
func observe(operation, table string, start time.Time, err error) {
	if errors.Is(err, pgx.ErrNoRows) || domain.IsNotFound(err) || domain.IsValidationError(err) {
		err = nil
	}
	metrics.RecordOperation(operation, table, start, err)
}
