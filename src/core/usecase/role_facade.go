package usecase

import (
	"context"
	"log/slog"

	"jokecatalog/src/core/dto"
	"jokecatalog/src/core/mapper"
	"jokecatalog/src/core/ports"
)

// RoleFacade exposes the read-only role listing.
type RoleFacade struct {
	uow ports.UnitOfWork
	log *slog.Logger
}

// NewRoleFacade creates a RoleFacade over the given unit of work.
func NewRoleFacade(uow ports.UnitOfWork, log *slog.Logger) *RoleFacade {
	if log == nil {
		log = slog.Default()
	}
	return &RoleFacade{uow: uow, log: log.With("component", "role_facade")}
}

// GetAll returns every role ordered by id.
func (f *RoleFacade) GetAll(ctx context.Context) ([]dto.RoleResponse, error) {
	var out []dto.RoleResponse
	err := f.uow.Do(ctx, func(ctx context.Context, store ports.Store) error {
		roles, err := store.Roles().FindAll(ctx)
		if err != nil {
			return err
		}
		out = mapper.RolesToResponses(roles)
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.log.DebugContext(ctx, "roles listed", "count", len(out))
	return out, nil
}
