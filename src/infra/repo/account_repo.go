package repo

import (
	"context"
	"fmt"
	"time"

	"jokecatalog/src/infra/db"
)

const accountsTable = "accounts"

// PostgresAccountRepository implements ports.AccountRepository using pgx.
type PostgresAccountRepository struct {
	q db.Querier
}

// NewPostgresAccountRepository creates an account repository that runs on q.
func NewPostgresAccountRepository(q db.Querier) *PostgresAccountRepository {
	return &PostgresAccountRepository{q: q}
}

func (r *PostgresAccountRepository) Count(ctx context.Context) (count int64, err error) {
	defer func(start time.Time) { observe("count", accountsTable, start, err) }(time.Now())

	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

func (r *PostgresAccountRepository) CountByRole(ctx context.Context, roleID int64) (count int64, err error) {
	defer func(start time.Time) { observe("count_by_role", accountsTable, start, err) }(time.Now())

	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE role_id = $1`, roleID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}
