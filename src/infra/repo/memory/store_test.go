package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"jokecatalog/src/core/domain"
	"jokecatalog/src/core/ports"
)

type StoreSuite struct {
	suite.Suite

	ctx context.Context
	db  *DB
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = New(WithAccounts(
		domain.Account{ID: 1, Username: "root", RoleID: 1},
		domain.Account{ID: 2, Username: "ann", RoleID: 3},
		domain.Account{ID: 3, Username: "ben", RoleID: 3},
	))
}

func (s *StoreSuite) saveJoke(content string) domain.Joke {
	var saved *domain.Joke
	err := s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		var err error
		saved, err = store.Jokes().Save(ctx, &domain.Joke{
			UUID:    uuid.New(),
			Content: content,
			Audit:   domain.Created(domain.AuditStamp{At: time.Now().UTC(), By: "test"}),
		})
		return err
	})
	s.Require().NoError(err)
	return *saved
}

func (s *StoreSuite) countJokes() int64 {
	var n int64
	s.Require().NoError(s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		var err error
		n, err = store.Jokes().Count(ctx)
		return err
	}))
	return n
}

func (s *StoreSuite) TestSave_AssignsIncreasingIDs() {
	a := s.saveJoke("a")
	b := s.saveJoke("b")

	s.Equal(int64(1), a.ID)
	s.Equal(int64(2), b.ID)
	s.Equal(int64(2), s.countJokes())
}

func (s *StoreSuite) TestSave_DuplicateUUIDConflicts() {
	a := s.saveJoke("a")

	err := s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		_, err := store.Jokes().Save(ctx, &domain.Joke{UUID: a.UUID, Content: "dup"})
		return err
	})
	s.True(domain.IsConflict(err))
	s.Equal(int64(1), s.countJokes())
}

func (s *StoreSuite) TestSave_UpdateKeepsCreation() {
	a := s.saveJoke("a")
	later := a.Audit.CreatedAt.Add(time.Minute)

	var got *domain.Joke
	err := s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		changed := a
		changed.Content = "changed"
		changed.Audit = domain.Audit{CreatedBy: "intruder"}.Touch(domain.AuditStamp{At: later, By: "editor"})
		if _, err := store.Jokes().Save(ctx, &changed); err != nil {
			return err
		}
		var err error
		got, err = store.Jokes().FindByUUID(ctx, a.UUID)
		return err
	})
	s.Require().NoError(err)

	s.Equal("changed", got.Content)
	s.Equal("test", got.Audit.CreatedBy)
	s.True(a.Audit.CreatedAt.Equal(got.Audit.CreatedAt))
	s.Require().NotNil(got.Audit.UpdatedBy)
	s.Equal("editor", *got.Audit.UpdatedBy)
}

func (s *StoreSuite) TestSave_UpdateMissing() {
	err := s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		_, err := store.Jokes().Save(ctx, &domain.Joke{ID: 77, Content: "x"})
		return err
	})
	s.True(domain.IsNotFound(err))
}

func (s *StoreSuite) TestSave_RejectsNUL() {
	a := s.saveJoke("a")

	err := s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		_, err := store.Jokes().Save(ctx, &domain.Joke{UUID: uuid.New(), Content: "nul\x00byte"})
		return err
	})
	s.True(domain.IsValidationError(err))

	err = s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		changed := a
		changed.Content = "\x00"
		_, err := store.Jokes().Save(ctx, &changed)
		return err
	})
	s.True(domain.IsValidationError(err))
	s.Equal(int64(1), s.countJokes())
}

func (s *StoreSuite) TestFindAll_Window() {
	for _, c := range []string{"1", "2", "3", "4", "5"} {
		s.saveJoke(c)
	}

	s.Require().NoError(s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		page, err := store.Jokes().FindAll(ctx, 2, 2)
		s.Require().NoError(err)
		s.Require().Len(page, 2)
		s.Equal("3", page[0].Content)
		s.Equal("4", page[1].Content)

		tail, err := store.Jokes().FindAll(ctx, 4, 10)
		s.Require().NoError(err)
		s.Len(tail, 1)

		past, err := store.Jokes().FindAll(ctx, 10, 10)
		s.Require().NoError(err)
		s.NotNil(past)
		s.Empty(past)
		return nil
	}))
}

func (s *StoreSuite) TestFindByID() {
	a := s.saveJoke("a")

	s.Require().NoError(s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		got, err := store.Jokes().FindByID(ctx, a.ID)
		s.Require().NoError(err)
		s.Equal(a.UUID, got.UUID)

		_, err = store.Jokes().FindByID(ctx, a.ID+1)
		s.True(domain.IsNotFound(err))
		return nil
	}))
}

func (s *StoreSuite) TestDelete() {
	a := s.saveJoke("a")
	b := s.saveJoke("b")

	s.Require().NoError(s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		return store.Jokes().Delete(ctx, a.ID)
	}))
	s.Equal(int64(1), s.countJokes())

	err := s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		return store.Jokes().Delete(ctx, a.ID)
	})
	s.True(domain.IsNotFound(err))

	// ids are never reused after a delete
	c := s.saveJoke("c")
	s.Greater(c.ID, b.ID)
}

func (s *StoreSuite) TestDo_RollsBackOnError() {
	s.saveJoke("kept")
	boom := errors.New("boom")

	err := s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		if _, err := store.Jokes().Save(ctx, &domain.Joke{UUID: uuid.New(), Content: "lost"}); err != nil {
			return err
		}
		n, _ := store.Jokes().Count(ctx)
		s.Equal(int64(2), n)
		return boom
	})
	s.ErrorIs(err, boom)
	s.Equal(int64(1), s.countJokes())
}

func (s *StoreSuite) TestDo_CanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	called := false
	err := s.db.Do(ctx, func(context.Context, ports.Store) error {
		called = true
		return nil
	})
	s.ErrorIs(err, context.Canceled)
	s.False(called)
}

func (s *StoreSuite) TestRoles() {
	s.Require().NoError(s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		roles, err := store.Roles().FindAll(ctx)
		s.Require().NoError(err)
		s.Equal(DefaultRoles, roles)

		role, err := store.Roles().FindByID(ctx, 2)
		s.Require().NoError(err)
		s.Equal("MODERATOR", role.Name)

		_, err = store.Roles().FindByID(ctx, 9)
		de, ok := domain.AsDomainError(err)
		s.Require().True(ok)
		s.Equal(domain.CodeRoleNotExist, de.Code)

		n, err := store.Roles().Count(ctx)
		s.Require().NoError(err)
		s.Equal(int64(3), n)
		return nil
	}))
}

func (s *StoreSuite) TestAccounts() {
	s.Require().NoError(s.db.Do(s.ctx, func(ctx context.Context, store ports.Store) error {
		n, err := store.Accounts().Count(ctx)
		s.Require().NoError(err)
		s.Equal(int64(3), n)

		users, err := store.Accounts().CountByRole(ctx, 3)
		s.Require().NoError(err)
		s.Equal(int64(2), users)

		mods, err := store.Accounts().CountByRole(ctx, 2)
		s.Require().NoError(err)
		s.Zero(mods)
		return nil
	}))
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
