// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// Each repository is responsible for a specific domain aggregate.
//
// Naming convention:
//   - Files: <entity>_repo.go (e.g., joke_repo.go, role_repo.go)
//   - Types: Postgres<Entity>Repository (e.g., PostgresJokeRepository)
//
// Repositories never open transactions themselves. They run against the
// db.Querier handed to them by PostgresUnitOfWork, which is either a pool
// transaction or a savepoint inside an outer transaction.
//
// The in-memory adapter used for local runs and tests lives in repo/memory.
package repo
