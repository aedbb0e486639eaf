package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jokecatalog/src/core/domain"
	"jokecatalog/src/infra/db"
)

const jokesTable = "jokes"

const jokeColumns = `id, uuid, content, created_at, created_by, updated_at, updated_by`

// jokeRow is the storage shape of a joke.
type jokeRow struct {
	ID        int64      `db:"id"`
	UUID      uuid.UUID  `db:"uuid"`
	Content   string     `db:"content"`
	CreatedAt time.Time  `db:"created_at"`
	CreatedBy string     `db:"created_by"`
	UpdatedAt *time.Time `db:"updated_at"`
	UpdatedBy *string    `db:"updated_by"`
}

func (r jokeRow) toDomain() domain.Joke {
	return domain.Joke{
		ID:      r.ID,
		UUID:    r.UUID,
		Content: r.Content,
		Audit: domain.Audit{
			CreatedAt: r.CreatedAt,
			CreatedBy: r.CreatedBy,
			UpdatedAt: r.UpdatedAt,
			UpdatedBy: r.UpdatedBy,
		},
	}
}

// PostgresJokeRepository implements ports.JokeRepository using pgx.
type PostgresJokeRepository struct {
	q db.Querier
}

// NewPostgresJokeRepository constructs a joke repository over q.
func NewPostgresJokeRepository(q db.Querier) *PostgresJokeRepository {
	return &PostgresJokeRepository{q: q}
}

func (r *PostgresJokeRepository) FindByID(ctx context.Context, id int64) (*domain.Joke, error) {
	const q = `SELECT ` + jokeColumns + ` FROM jokes WHERE id = $1`
	return r.one(ctx, "find_by_id", q, id)
}

func (r *PostgresJokeRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Joke, error) {
	const q = `SELECT ` + jokeColumns + ` FROM jokes WHERE uuid = $1`
	return r.one(ctx, "find_by_uuid", q, id)
}

func (r *PostgresJokeRepository) FindAll(ctx context.Context, offset, limit int) (_ []domain.Joke, err error) {
	const q = `
		SELECT ` + jokeColumns + `
		FROM jokes
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`
	defer func(start time.Time) { observe("find_all", jokesTable, start, err) }(time.Now())

	rows, err := r.q.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jokes: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[jokeRow])
	if err != nil {
		return nil, fmt.Errorf("failed to list jokes: %w", err)
	}

	jokes := make([]domain.Joke, 0, len(found))
	for _, row := range found {
		jokes = append(jokes, row.toDomain())
	}
	return jokes, nil
}

func (r *PostgresJokeRepository) Count(ctx context.Context) (count int64, err error) {
	defer func(start time.Time) { observe("count", jokesTable, start, err) }(time.Now())

	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM jokes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count jokes: %w", err)
	}
	return count, nil
}

// Save inserts new jokes and updates content and update audit of existing ones.
// Creation audit and UUID are never rewritten.
func (r *PostgresJokeRepository) Save(ctx context.Context, joke *domain.Joke) (*domain.Joke, error) {
	if joke.IsNew() {
		return r.insert(ctx, joke)
	}
	return r.update(ctx, joke)
}

func (r *PostgresJokeRepository) insert(ctx context.Context, joke *domain.Joke) (_ *domain.Joke, err error) {
	const q = `
		INSERT INTO jokes (uuid, content, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + jokeColumns
	defer func(start time.Time) { observe("insert", jokesTable, start, err) }(time.Now())

	rows, err := r.q.Query(ctx, q,
		joke.UUID,
		joke.Content,
		joke.Audit.CreatedAt,
		joke.Audit.CreatedBy,
		joke.Audit.UpdatedAt,
		joke.Audit.UpdatedBy,
	)
	if err != nil {
		return nil, insertError(err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[jokeRow])
	if err != nil {
		return nil, insertError(err)
	}
	saved := row.toDomain()
	return &saved, nil
}

func (r *PostgresJokeRepository) update(ctx context.Context, joke *domain.Joke) (_ *domain.Joke, err error) {
	const q = `
		UPDATE jokes
		SET content = $2, updated_at = $3, updated_by = $4
		WHERE id = $1
		RETURNING ` + jokeColumns
	defer func(start time.Time) { observe("update", jokesTable, start, err) }(time.Now())

	rows, err := r.q.Query(ctx, q, joke.ID, joke.Content, joke.Audit.UpdatedAt, joke.Audit.UpdatedBy)
	if err != nil {
		return nil, updateError(err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[jokeRow])
	if err != nil {
		return nil, updateError(err)
	}
	saved := row.toDomain()
	return &saved, nil
}

func insertError(err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.NewConflictError("joke uuid already taken")
	case isInvalidText(err):
		return domain.JokeContentInvalid()
	default:
		return fmt.Errorf("failed to insert joke: %w", err)
	}
}

func updateError(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.JokeNotExist()
	case isInvalidText(err):
		return domain.JokeContentInvalid()
	default:
		return fmt.Errorf("failed to update joke: %w", err)
	}
}

func (r *PostgresJokeRepository) Delete(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { observe("delete", jokesTable, start, err) }(time.Now())

	res, err := r.q.Exec(ctx, `DELETE FROM jokes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete joke: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.JokeNotExist()
	}
	return nil
}

func (r *PostgresJokeRepository) one(ctx context.Context, op, q string, arg any) (_ *domain.Joke, err error) {
	defer func(start time.Time) { observe(op, jokesTable, start, err) }(time.Now())

	rows, err := r.q.Query(ctx, q, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get joke: %w", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[jokeRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.JokeNotExist()
		}
		return nil, fmt.Errorf("failed to get joke: %w", err)
	}
	joke := row.toDomain()
	return &joke, nil
}
