package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"jokecatalog/src/core/domain"
	"jokecatalog/src/infra/db"
)

const rolesTable = "roles"

type roleRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// PostgresRoleRepository implements ports.RoleRepository using pgx.
type PostgresRoleRepository struct {
	q db.Querier
}

// NewPostgresRoleRepository creates a role repository that runs on q.
func NewPostgresRoleRepository(q db.Querier) *PostgresRoleRepository {
	return &PostgresRoleRepository{q: q}
}

// FindAll returns every role ordered by id.
func (r *PostgresRoleRepository) FindAll(ctx context.Context) (_ []domain.Role, err error) {
	defer func(start time.Time) { observe("find_all", rolesTable, start, err) }(time.Now())

	rows, err := r.q.Query(ctx, `SELECT id, name FROM roles ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[roleRow])
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]domain.Role, 0, len(found))
	for _, row := range found {
		roles = append(roles, domain.Role{ID: row.ID, Name: row.Name})
	}
	return roles, nil
}

func (r *PostgresRoleRepository) FindByID(ctx context.Context, id int64) (_ *domain.Role, err error) {
	defer func(start time.Time) { observe("find_by_id", rolesTable, start, err) }(time.Now())

	var role domain.Role
	if err := r.q.QueryRow(ctx, `SELECT id, name FROM roles WHERE id = $1`, id).Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.RoleNotExist()
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return &role, nil
}

func (r *PostgresRoleRepository) Count(ctx context.Context) (count int64, err error) {
	defer func(start time.Time) { observe("count", rolesTable, start, err) }(time.Now())

	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count roles: %w", err)
	}
	return count, nil
}
