package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"jokecatalog/src/core/domain"
	"jokecatalog/src/core/dto"
	"jokecatalog/src/core/mapper"
	"jokecatalog/src/core/ports"
	"jokecatalog/src/core/validation"
)

// JokeFacade is the public operation surface for jokes.
// Every operation runs in its own unit of work and holds no state between calls.
type JokeFacade struct {
	uow     ports.UnitOfWork
	stamper ports.AuditStamper
	ids     ports.IDGenerator
	log     *slog.Logger
}

// NewJokeFacade creates a JokeFacade.
func NewJokeFacade(uow ports.UnitOfWork, stamper ports.AuditStamper, ids ports.IDGenerator, log *slog.Logger) *JokeFacade {
	if log == nil {
		log = slog.Default()
	}
	return &JokeFacade{
		uow:     uow,
		stamper: stamper,
		ids:     ids,
		log:     log.With("component", "joke_facade"),
	}
}

// Search returns one page of jokes ordered by insertion.
// A page past the end yields no data but still reports the real page count;
// the store is not queried for it.
func (f *JokeFacade) Search(ctx context.Context, filter domain.PagingFilter) (*dto.JokeSearchResponse, error) {
	if err := validation.Paging(filter); err != nil {
		f.rejected(ctx, "search", err)
		return nil, err
	}

	var out dto.JokeSearchResponse
	err := f.uow.Do(ctx, func(ctx context.Context, store ports.Store) error {
		total, err := store.Jokes().Count(ctx)
		if err != nil {
			return err
		}
		info := domain.NewPagingInfo(filter, total)

		var jokes []domain.Joke
		if info.HasPage() {
			jokes, err = store.Jokes().FindAll(ctx, filter.Offset(), filter.Limit)
			if err != nil {
				return err
			}
		}
		out = dto.JokeSearchResponse{
			Data:       mapper.JokesToResponses(jokes),
			PagingInfo: mapper.PagingInfoToResponse(info),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns the joke with the given UUID.
func (f *JokeFacade) Get(ctx context.Context, id string) (*dto.JokeResponse, error) {
	var out dto.JokeResponse
	err := f.uow.Do(ctx, func(ctx context.Context, store ports.Store) error {
		joke, err := findJoke(ctx, store, id)
		if err != nil {
			return err
		}
		out = mapper.JokeToResponse(*joke)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Add validates the request and stores a new joke with a fresh UUID and creation audit.
func (f *JokeFacade) Add(ctx context.Context, req dto.JokeRequest) (*dto.JokeResponse, error) {
	if err := validation.Joke.Validate(req); err != nil {
		f.rejected(ctx, "add", err)
		return nil, err
	}

	var out dto.JokeResponse
	err := f.uow.Do(ctx, func(ctx context.Context, store ports.Store) error {
		joke := mapper.NewJokeFromRequest(req, f.ids.NewUUID(), f.stamper.Stamp(ctx))
		saved, err := store.Jokes().Save(ctx, &joke)
		if err != nil {
			return err
		}
		out = mapper.JokeToResponse(*saved)
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.log.InfoContext(ctx, "joke added", "uuid", out.UUID)
	return &out, nil
}

// Update replaces the content of an existing joke.
// Existence is checked before the request is validated, so an unknown UUID
// is reported as not found whatever the request holds.
func (f *JokeFacade) Update(ctx context.Context, id string, req dto.JokeRequest) (*dto.JokeResponse, error) {
	var out dto.JokeResponse
	err := f.uow.Do(ctx, func(ctx context.Context, store ports.Store) error {
		joke, err := findJoke(ctx, store, id)
		if err != nil {
			return err
		}
		if err := validation.Joke.Validate(req); err != nil {
			f.rejected(ctx, "update", err)
			return err
		}

		updated := mapper.ApplyJokeRequest(*joke, req, f.stamper.Stamp(ctx))
		saved, err := store.Jokes().Save(ctx, &updated)
		if err != nil {
			return err
		}
		out = mapper.JokeToResponse(*saved)
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.log.InfoContext(ctx, "joke updated", "uuid", out.UUID)
	return &out, nil
}

// Remove deletes the joke with the given UUID.
func (f *JokeFacade) Remove(ctx context.Context, id string) error {
	err := f.uow.Do(ctx, func(ctx context.Context, store ports.Store) error {
		joke, err := findJoke(ctx, store, id)
		if err != nil {
			return err
		}
		return store.Jokes().Delete(ctx, joke.ID)
	})
	if err != nil {
		return err
	}

	f.log.InfoContext(ctx, "joke removed", "uuid", id)
	return nil
}

// GetStatistics returns aggregate joke counters.
func (f *JokeFacade) GetStatistics(ctx context.Context) (*dto.JokeStatisticsResponse, error) {
	var out dto.JokeStatisticsResponse
	err := f.uow.Do(ctx, func(ctx context.Context, store ports.Store) error {
		count, err := store.Jokes().Count(ctx)
		if err != nil {
			return err
		}
		out.Count = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *JokeFacade) rejected(ctx context.Context, op string, err error) {
	if de, ok := domain.AsDomainError(err); ok {
		f.log.DebugContext(ctx, "joke input rejected", "op", op, "code", de.Code)
	}
}

// findJoke resolves a public identifier. Strings that are not UUIDs cannot
// name a stored joke and are reported the same way as unknown UUIDs.
func findJoke(ctx context.Context, store ports.Store, id string) (*domain.Joke, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.JokeNotExist()
	}
	return store.Jokes().FindByUUID(ctx, parsed)
}
