package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"jokecatalog/src/core/ports"
	"jokecatalog/src/infra/db"
)

// PostgresStore binds the repositories to one querier.
type PostgresStore struct {
	q        db.Querier
	jokes    *PostgresJokeRepository
	roles    *PostgresRoleRepository
	accounts *PostgresAccountRepository
}

// NewPostgresStore builds a store whose repositories all run against q.
func NewPostgresStore(q db.Querier) *PostgresStore {
	return &PostgresStore{
		q:        q,
		jokes:    NewPostgresJokeRepository(q),
		roles:    NewPostgresRoleRepository(q),
		accounts: NewPostgresAccountRepository(q),
	}
}

func (s *PostgresStore) Jokes() ports.JokeRepository       { return s.jokes }
func (s *PostgresStore) Roles() ports.RoleRepository       { return s.roles }
func (s *PostgresStore) Accounts() ports.AccountRepository { return s.accounts }

// Health runs a trivial query on the bound querier.
func (s *PostgresStore) Health(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `SELECT 1`)
	return err
}

// PostgresUnitOfWork implements ports.UnitOfWork.
// Each Do call begins a transaction on the Beginner (a savepoint when the
// Beginner is itself a transaction), commits on success and rolls back on error.
type PostgresUnitOfWork struct {
	db  db.Beginner
	log *slog.Logger
}

func NewPostgresUnitOfWork(b db.Beginner, log *slog.Logger) *PostgresUnitOfWork {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresUnitOfWork{db: b, log: log}
}

// Do runs fn inside a transaction. fn's error is returned unchanged.
func (u *PostgresUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, store ports.Store) error) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rerr := tx.Rollback(ctx); rerr != nil && !errors.Is(rerr, pgx.ErrTxClosed) {
			u.log.WarnContext(ctx, "transaction rollback failed", "error", rerr)
		}
	}()

	if err := fn(ctx, NewPostgresStore(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

var (
	_ ports.Store      = (*PostgresStore)(nil)
	_ ports.UnitOfWork = (*PostgresUnitOfWork)(nil)
)
