// Package memory is an in-process implementation of the repository ports.
//
// Units of work are serialized and copy-on-write: Do hands fn a private copy
// of the committed data and publishes it only when fn succeeds, which gives
// the same all-or-nothing behavior as the Postgres adapter.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"jokecatalog/src/core/domain"
	"jokecatalog/src/core/ports"
)

// DefaultRoles mirrors the roles seeded by the 00001 migration.
var DefaultRoles = []domain.Role{
	{ID: 1, Name: "ADMIN"},
	{ID: 2, Name: "MODERATOR"},
	{ID: 3, Name: "USER"},
}

type data struct {
	jokes      []domain.Joke
	roles      []domain.Role
	accounts   []domain.Account
	nextJokeID int64
}

func (d *data) clone() *data {
	return &data{
		jokes:      slices.Clone(d.jokes),
		roles:      slices.Clone(d.roles),
		accounts:   slices.Clone(d.accounts),
		nextJokeID: d.nextJokeID,
	}
}

// Option configures a DB.
type Option func(*data)

// WithRoles replaces the default roles.
func WithRoles(roles ...domain.Role) Option {
	return func(d *data) { d.roles = slices.Clone(roles) }
}

// WithAccounts seeds accounts.
func WithAccounts(accounts ...domain.Account) Option {
	return func(d *data) { d.accounts = slices.Clone(accounts) }
}

// DB holds the committed state and implements ports.UnitOfWork.
type DB struct {
	mu        sync.Mutex
	committed *data
}

// New creates an empty DB seeded with DefaultRoles unless overridden.
func New(opts ...Option) *DB {
	d := &data{roles: slices.Clone(DefaultRoles), nextJokeID: 1}
	for _, opt := range opts {
		opt(d)
	}
	return &DB{committed: d}
}

// Do runs fn against a private copy of the data and commits it if fn returns nil.
func (db *DB) Do(ctx context.Context, fn func(ctx context.Context, store ports.Store) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := db.committed.clone()
	if err := fn(ctx, &Store{d: work}); err != nil {
		return err
	}
	db.committed = work
	return nil
}

// Health always succeeds.
func (db *DB) Health(context.Context) error {
	return nil
}

// Store is the view of one unit of work.
type Store struct {
	d *data
}

func (s *Store) Jokes() ports.JokeRepository       { return &jokeRepository{d: s.d} }
func (s *Store) Roles() ports.RoleRepository       { return &roleRepository{d: s.d} }
func (s *Store) Accounts() ports.AccountRepository { return &accountRepository{d: s.d} }
func (s *Store) Health(context.Context) error      { return nil }

type jokeRepository struct {
	d *data
}

func (r *jokeRepository) FindByID(_ context.Context, id int64) (*domain.Joke, error) {
	for _, j := range r.d.jokes {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, domain.JokeNotExist()
}

func (r *jokeRepository) FindByUUID(_ context.Context, id uuid.UUID) (*domain.Joke, error) {
	for _, j := range r.d.jokes {
		if j.UUID == id {
			return &j, nil
		}
	}
	return nil, domain.JokeNotExist()
}

func (r *jokeRepository) FindAll(_ context.Context, offset, limit int) ([]domain.Joke, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.d.jokes) || limit <= 0 {
		return []domain.Joke{}, nil
	}
	end := min(offset+limit, len(r.d.jokes))
	return slices.Clone(r.d.jokes[offset:end]), nil
}

func (r *jokeRepository) Count(context.Context) (int64, error) {
	return int64(len(r.d.jokes)), nil
}

func (r *jokeRepository) Save(_ context.Context, joke *domain.Joke) (*domain.Joke, error) {
	// Postgres TEXT cannot hold NUL.
	if strings.ContainsRune(joke.Content, 0) {
		return nil, domain.JokeContentInvalid()
	}
	if joke.IsNew() {
		for _, j := range r.d.jokes {
			if j.UUID == joke.UUID {
				return nil, domain.NewConflictError("joke uuid already taken")
			}
		}
		saved := *joke
		saved.ID = r.d.nextJokeID
		r.d.nextJokeID++
		r.d.jokes = append(r.d.jokes, saved)
		return &saved, nil
	}

	for i, j := range r.d.jokes {
		if j.ID != joke.ID {
			continue
		}
		j.Content = joke.Content
		j.Audit.UpdatedAt = joke.Audit.UpdatedAt
		j.Audit.UpdatedBy = joke.Audit.UpdatedBy
		r.d.jokes[i] = j
		return &j, nil
	}
	return nil, domain.JokeNotExist()
}

func (r *jokeRepository) Delete(_ context.Context, id int64) error {
	for i, j := range r.d.jokes {
		if j.ID == id {
			r.d.jokes = slices.Delete(r.d.jokes, i, i+1)
			return nil
		}
	}
	return domain.JokeNotExist()
}

type roleRepository struct {
	d *data
}

func (r *roleRepository) FindAll(context.Context) ([]domain.Role, error) {
	roles := slices.Clone(r.d.roles)
	slices.SortFunc(roles, func(a, b domain.Role) int { return int(a.ID - b.ID) })
	return roles, nil
}

func (r *roleRepository) FindByID(_ context.Context, id int64) (*domain.Role, error) {
	for _, role := range r.d.roles {
		if role.ID == id {
			return &role, nil
		}
	}
	return nil, domain.RoleNotExist()
}

func (r *roleRepository) Count(context.Context) (int64, error) {
	return int64(len(r.d.roles)), nil
}

type accountRepository struct {
	d *data
}

func (r *accountRepository) Count(context.Context) (int64, error) {
	return int64(len(r.d.accounts)), nil
}

func (r *accountRepository) CountByRole(_ context.Context, roleID int64) (int64, error) {
	var n int64
	for _, a := range r.d.accounts {
		if a.RoleID == roleID {
			n++
		}
	}
	return n, nil
}

var (
	_ ports.Store      = (*Store)(nil)
	_ ports.UnitOfWork = (*DB)(nil)
)
