// Package mapper converts between domain entities and facade DTOs.
package mapper

import (
	"github.com/google/uuid"

	"jokecatalog/src/core/domain"
	"jokecatalog/src/core/dto"
)

// AuditToResponse maps audit metadata.
func AuditToResponse(a domain.Audit) dto.AuditResponse {
	return dto.AuditResponse{
		CreatedAt: a.CreatedAt,
		CreatedBy: a.CreatedBy,
		UpdatedAt: a.UpdatedAt,
		UpdatedBy: a.UpdatedBy,
	}
}

// JokeToResponse maps a stored joke to its response DTO.
func JokeToResponse(j domain.Joke) dto.JokeResponse {
	return dto.JokeResponse{
		UUID:    j.UUID.String(),
		Content: j.Content,
		Audit:   AuditToResponse(j.Audit),
	}
}

// JokesToResponses maps a slice of jokes, never returning nil.
func JokesToResponses(jokes []domain.Joke) []dto.JokeResponse {
	out := make([]dto.JokeResponse, 0, len(jokes))
	for _, j := range jokes {
		out = append(out, JokeToResponse(j))
	}
	return out
}

// NewJokeFromRequest builds an unsaved joke from a validated request.
// The request content must be non-nil.
func NewJokeFromRequest(req dto.JokeRequest, id uuid.UUID, stamp domain.AuditStamp) domain.Joke {
	return domain.Joke{
		UUID:    id,
		Content: *req.Content,
		Audit:   domain.Created(stamp),
	}
}

// ApplyJokeRequest returns joke with the request content applied and the
// update audit refreshed. Identity and creation audit are kept.
func ApplyJokeRequest(joke domain.Joke, req dto.JokeRequest, stamp domain.AuditStamp) domain.Joke {
	joke.Content = *req.Content
	joke.Audit = joke.Audit.Touch(stamp)
	return joke
}

// PagingInfoToResponse maps paging metadata.
func PagingInfoToResponse(p domain.PagingInfo) dto.PagingInfoResponse {
	return dto.PagingInfoResponse{
		PageNumber: p.PageNumber,
		PagesCount: p.PagesCount,
	}
}
