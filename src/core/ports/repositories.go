// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=../../mocks/ports_mock.go jokecatalog/src/core/ports JokeRepository,RoleRepository,AccountRepository,Store,UnitOfWork

import (
	"context"

	"github.com/google/uuid"

	"jokecatalog/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// JokeRepository persists jokes.
type JokeRepository interface {
	// FindByID returns the joke with the given storage id or a not found error.
	FindByID(ctx context.Context, id int64) (*domain.Joke, error)

	// FindByUUID returns the joke with the given public identifier or a not found error.
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Joke, error)

	// FindAll returns up to limit jokes ordered by id, skipping offset rows.
	FindAll(ctx context.Context, offset, limit int) ([]domain.Joke, error)

	// Count returns the total number of jokes.
	Count(ctx context.Context) (int64, error)

	// Save inserts the joke when it is new and updates it otherwise.
	// The returned joke reflects the stored row, including its assigned id.
	Save(ctx context.Context, joke *domain.Joke) (*domain.Joke, error)

	// Delete removes the joke with the given id.
	Delete(ctx context.Context, id int64) error
}

// RoleRepository reads roles.
type RoleRepository interface {
	FindAll(ctx context.Context) ([]domain.Role, error)
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	Count(ctx context.Context) (int64, error)
}

// AccountRepository reads accounts.
type AccountRepository interface {
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, roleID int64) (int64, error)
}

// Store groups the repositories bound to one unit of work.
type Store interface {
	Repository

	Jokes() JokeRepository
	Roles() RoleRepository
	Accounts() AccountRepository
}

// UnitOfWork scopes a set of repository calls to a single transaction.
// Do commits when fn returns nil and rolls back otherwise; fn's error is returned unchanged.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}
