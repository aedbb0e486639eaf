package usecase_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"jokecatalog/src/core/domain"
	"jokecatalog/src/core/dto"
	"jokecatalog/src/core/usecase"
	"jokecatalog/src/infra/audit"
	"jokecatalog/src/infra/ident"
	"jokecatalog/src/infra/logger"
	"jokecatalog/src/infra/repo/memory"
)

var (
	seedTime = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	seedUUIDs = []uuid.UUID{
		uuid.MustParse("0b8e6a53-1f0e-4c53-9d3a-2f0f6f0c0001"),
		uuid.MustParse("0b8e6a53-1f0e-4c53-9d3a-2f0f6f0c0002"),
		uuid.MustParse("0b8e6a53-1f0e-4c53-9d3a-2f0f6f0c0003"),
		uuid.MustParse("0b8e6a53-1f0e-4c53-9d3a-2f0f6f0c0004"),
	}
	addedUUID = uuid.MustParse("0b8e6a53-1f0e-4c53-9d3a-2f0f6f0c0005")
)

const (
	seedActor = "seeder"
	actor     = "alice"
)

type JokeFacadeSuite struct {
	suite.Suite

	ctx    context.Context
	clock  *audit.FixedTimeProvider
	facade *usecase.JokeFacade
	seeded []dto.JokeResponse
}

func (s *JokeFacadeSuite) SetupTest() {
	s.clock = audit.NewFixedTimeProvider(seedTime)
	ids := ident.NewSequenceGenerator(append(append([]uuid.UUID{}, seedUUIDs...), addedUUID)...)
	s.facade = usecase.NewJokeFacade(memory.New(), audit.NewStamper(s.clock, "system"), ids, logger.Discard())

	seedCtx := audit.WithActor(context.Background(), seedActor)
	s.seeded = nil
	for i := range seedUUIDs {
		res, err := s.facade.Add(seedCtx, dto.JokeRequest{Content: strPtr(fmt.Sprintf("Joke #%d", i+1))})
		s.Require().NoError(err)
		s.seeded = append(s.seeded, *res)
	}

	s.clock.AddTime(time.Hour)
	s.ctx = audit.WithActor(context.Background(), actor)
}

func (s *JokeFacadeSuite) count() int64 {
	stats, err := s.facade.GetStatistics(s.ctx)
	s.Require().NoError(err)
	return stats.Count
}

func (s *JokeFacadeSuite) TestSearch_FirstPage() {
	res, err := s.facade.Search(s.ctx, domain.PagingFilter{Page: 1, Limit: 2})
	s.Require().NoError(err)

	assertJokesEqual(s.T(), s.seeded[:2], res.Data)
	s.Equal(dto.PagingInfoResponse{PageNumber: 1, PagesCount: 2}, res.PagingInfo)
}

func (s *JokeFacadeSuite) TestSearch_SecondPageOfOne() {
	res, err := s.facade.Search(s.ctx, domain.PagingFilter{Page: 2, Limit: 1})
	s.Require().NoError(err)

	assertJokesEqual(s.T(), s.seeded[1:2], res.Data)
	s.Equal(dto.PagingInfoResponse{PageNumber: 2, PagesCount: 4}, res.PagingInfo)
}

func (s *JokeFacadeSuite) TestSearch_PageOutOfRange() {
	res, err := s.facade.Search(s.ctx, domain.PagingFilter{Page: 2, Limit: 4})
	s.Require().NoError(err)

	s.NotNil(res.Data)
	s.Empty(res.Data)
	s.Equal(dto.PagingInfoResponse{PageNumber: 2, PagesCount: 1}, res.PagingInfo)
}

func (s *JokeFacadeSuite) TestSearch_PagingBounds() {
	for _, limit := range []int{1, 2, 3, 4, 5, 10} {
		wantPages := (len(s.seeded) + limit - 1) / limit
		for page := 1; page <= wantPages+2; page++ {
			res, err := s.facade.Search(s.ctx, domain.PagingFilter{Page: page, Limit: limit})
			s.Require().NoError(err)

			s.LessOrEqual(len(res.Data), limit, "page=%d limit=%d", page, limit)
			s.Equal(page, res.PagingInfo.PageNumber)
			s.Equal(wantPages, res.PagingInfo.PagesCount, "page=%d limit=%d", page, limit)

			start := min((page-1)*limit, len(s.seeded))
			end := min(page*limit, len(s.seeded))
			assertJokesEqual(s.T(), s.seeded[start:end], res.Data)
		}
	}
}

func (s *JokeFacadeSuite) TestSearch_ExtremePaging() {
	tests := []struct {
		name      string
		filter    domain.PagingFilter
		wantData  []dto.JokeResponse
		wantPages int
	}{
		{"huge page", domain.PagingFilter{Page: 1<<62 + 1, Limit: 4}, nil, 1},
		{"huge page, offset would wrap negative", domain.PagingFilter{Page: 1<<62 + 1, Limit: 3}, nil, 2},
		{"max page and limit", domain.PagingFilter{Page: math.MaxInt, Limit: math.MaxInt}, nil, 1},
		{"max limit", domain.PagingFilter{Page: 1, Limit: math.MaxInt}, s.seeded, 1},
		{"max page", domain.PagingFilter{Page: math.MaxInt, Limit: 1}, nil, 4},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res, err := s.facade.Search(s.ctx, tt.filter)
			s.Require().NoError(err)

			s.NotNil(res.Data)
			s.LessOrEqual(len(res.Data), tt.filter.Limit)
			assertJokesEqual(s.T(), tt.wantData, res.Data)
			s.Equal(dto.PagingInfoResponse{PageNumber: tt.filter.Page, PagesCount: tt.wantPages}, res.PagingInfo)
		})
	}
}

func (s *JokeFacadeSuite) TestSearch_InvalidPaging() {
	_, err := s.facade.Search(s.ctx, domain.PagingFilter{Page: 0, Limit: 1})
	requireDomainError(s.T(), err, domain.CodePagingPageInvalid, "Page number must be greater than zero.", 422)

	_, err = s.facade.Search(s.ctx, domain.PagingFilter{Page: 1, Limit: 0})
	requireDomainError(s.T(), err, domain.CodePagingLimitInvalid, "Page limit must be greater than zero.", 422)
}

func (s *JokeFacadeSuite) TestGet() {
	res, err := s.facade.Get(s.ctx, s.seeded[2].UUID)
	s.Require().NoError(err)

	assertJokeEqual(s.T(), s.seeded[2], *res)
}

func (s *JokeFacadeSuite) TestGet_NotExisting() {
	_, err := s.facade.Get(s.ctx, uuid.NewString())
	requireJokeNotExist(s.T(), err)
}

func (s *JokeFacadeSuite) TestGet_MalformedUUID() {
	_, err := s.facade.Get(s.ctx, "not-a-uuid")
	requireJokeNotExist(s.T(), err)
}

func (s *JokeFacadeSuite) TestAdd() {
	res, err := s.facade.Add(s.ctx, dto.JokeRequest{Content: strPtr("A brand new joke")})
	s.Require().NoError(err)

	want := dto.JokeResponse{
		UUID:    addedUUID.String(),
		Content: "A brand new joke",
		Audit: dto.AuditResponse{
			CreatedAt: seedTime.Add(time.Hour),
			CreatedBy: actor,
		},
	}
	assertJokeEqual(s.T(), want, *res)
	s.Equal(int64(len(s.seeded)+1), s.count())

	got, err := s.facade.Get(s.ctx, res.UUID)
	s.Require().NoError(err)
	assertJokeEqual(s.T(), want, *got)
}

func (s *JokeFacadeSuite) TestAdd_NullContent() {
	_, err := s.facade.Add(s.ctx, dto.JokeRequest{})
	requireContentNull(s.T(), err)
	s.Equal(int64(len(s.seeded)), s.count())
}

func (s *JokeFacadeSuite) TestAdd_EmptyContent() {
	_, err := s.facade.Add(s.ctx, dto.JokeRequest{Content: strPtr("")})
	requireContentEmpty(s.T(), err)
	s.Equal(int64(len(s.seeded)), s.count())
}

func (s *JokeFacadeSuite) TestAdd_NULContent() {
	_, err := s.facade.Add(s.ctx, dto.JokeRequest{Content: strPtr("nul\x00byte")})
	requireDomainError(s.T(), err, domain.CodeJokeContentInvalid, "Content mustn't contain NUL characters.", 422)
	s.Equal(int64(len(s.seeded)), s.count())
}

func (s *JokeFacadeSuite) TestUpdate_NULContent() {
	_, err := s.facade.Update(s.ctx, s.seeded[0].UUID, dto.JokeRequest{Content: strPtr("\x00")})
	requireDomainError(s.T(), err, domain.CodeJokeContentInvalid, "Content mustn't contain NUL characters.", 422)

	got, err := s.facade.Get(s.ctx, s.seeded[0].UUID)
	s.Require().NoError(err)
	assertJokeEqual(s.T(), s.seeded[0], *got)
}

func (s *JokeFacadeSuite) TestUpdate() {
	target := s.seeded[1]

	res, err := s.facade.Update(s.ctx, target.UUID, dto.JokeRequest{Content: strPtr("Updated joke")})
	s.Require().NoError(err)

	updatedAt := seedTime.Add(time.Hour)
	want := dto.JokeResponse{
		UUID:    target.UUID,
		Content: "Updated joke",
		Audit: dto.AuditResponse{
			CreatedAt: target.Audit.CreatedAt,
			CreatedBy: target.Audit.CreatedBy,
			UpdatedAt: &updatedAt,
			UpdatedBy: strPtr(actor),
		},
	}
	assertJokeEqual(s.T(), want, *res)
	s.Equal(int64(len(s.seeded)), s.count())

	got, err := s.facade.Get(s.ctx, target.UUID)
	s.Require().NoError(err)
	assertJokeEqual(s.T(), want, *got)
}

func (s *JokeFacadeSuite) TestUpdate_NotExisting() {
	_, err := s.facade.Update(s.ctx, uuid.NewString(), dto.JokeRequest{Content: strPtr("valid content")})
	requireJokeNotExist(s.T(), err)
	s.Equal(int64(len(s.seeded)), s.count())
}

func (s *JokeFacadeSuite) TestUpdate_NotExistingWinsOverValidation() {
	_, err := s.facade.Update(s.ctx, uuid.NewString(), dto.JokeRequest{})
	requireJokeNotExist(s.T(), err)
}

func (s *JokeFacadeSuite) TestUpdate_NullContent() {
	_, err := s.facade.Update(s.ctx, s.seeded[0].UUID, dto.JokeRequest{})
	requireContentNull(s.T(), err)

	got, err := s.facade.Get(s.ctx, s.seeded[0].UUID)
	s.Require().NoError(err)
	assertJokeEqual(s.T(), s.seeded[0], *got)
}

func (s *JokeFacadeSuite) TestUpdate_EmptyContent() {
	_, err := s.facade.Update(s.ctx, s.seeded[0].UUID, dto.JokeRequest{Content: strPtr("")})
	requireContentEmpty(s.T(), err)

	got, err := s.facade.Get(s.ctx, s.seeded[0].UUID)
	s.Require().NoError(err)
	assertJokeEqual(s.T(), s.seeded[0], *got)
}

func (s *JokeFacadeSuite) TestRemove() {
	target := s.seeded[3]

	s.Require().NoError(s.facade.Remove(s.ctx, target.UUID))
	s.Equal(int64(len(s.seeded)-1), s.count())

	_, err := s.facade.Get(s.ctx, target.UUID)
	requireJokeNotExist(s.T(), err)

	res, err := s.facade.Search(s.ctx, domain.PagingFilter{Page: 1, Limit: 10})
	s.Require().NoError(err)
	assertJokesEqual(s.T(), s.seeded[:3], res.Data)
}

func (s *JokeFacadeSuite) TestRemove_NotExisting() {
	err := s.facade.Remove(s.ctx, uuid.NewString())
	requireJokeNotExist(s.T(), err)
	s.Equal(int64(len(s.seeded)), s.count())
}

func (s *JokeFacadeSuite) TestGetStatistics() {
	res, err := s.facade.GetStatistics(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(4), res.Count)
}

func TestJokeFacadeSuite(t *testing.T) {
	suite.Run(t, new(JokeFacadeSuite))
}
