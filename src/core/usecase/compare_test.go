package usecase_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokecatalog/src/core/domain"
	"jokecatalog/src/core/dto"
)

// assertJokeEqual compares two joke responses field by field.
func assertJokeEqual(t *testing.T, want, got dto.JokeResponse) {
	t.Helper()
	assert.Equal(t, want.UUID, got.UUID, "uuid")
	assert.Equal(t, want.Content, got.Content, "content")
	assertAuditEqual(t, want.Audit, got.Audit)
}

func assertJokesEqual(t *testing.T, want, got []dto.JokeResponse) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assertJokeEqual(t, want[i], got[i])
	}
}

func assertAuditEqual(t *testing.T, want, got dto.AuditResponse) {
	t.Helper()
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at: want %s, got %s", want.CreatedAt, got.CreatedAt)
	assert.Equal(t, want.CreatedBy, got.CreatedBy, "created_by")
	assertTimePtrEqual(t, want.UpdatedAt, got.UpdatedAt, "updated_at")
	assertStringPtrEqual(t, want.UpdatedBy, got.UpdatedBy, "updated_by")
}

func assertTimePtrEqual(t *testing.T, want, got *time.Time, field string) {
	t.Helper()
	if want == nil || got == nil {
		assert.Equal(t, want == nil, got == nil, "%s: nil mismatch", field)
		return
	}
	assert.True(t, want.Equal(*got), "%s: want %s, got %s", field, *want, *got)
}

func assertStringPtrEqual(t *testing.T, want, got *string, field string) {
	t.Helper()
	if want == nil || got == nil {
		assert.Equal(t, want == nil, got == nil, "%s: nil mismatch", field)
		return
	}
	assert.Equal(t, *want, *got, field)
}

func requireDomainError(t *testing.T, err error, code, message string, status int) {
	t.Helper()
	require.Error(t, err)
	var de *domain.DomainError
	require.True(t, errors.As(err, &de), "expected *domain.DomainError, got %T: %v", err, err)
	assert.Equal(t, code, de.Code)
	assert.Equal(t, message, de.Message)
	assert.Equal(t, status, de.Status)
}

func requireJokeNotExist(t *testing.T, err error) {
	t.Helper()
	requireDomainError(t, err, domain.CodeJokeNotExist, "Joke doesn't exist.", http.StatusNotFound)
	assert.True(t, domain.IsNotFound(err))
}

func requireContentNull(t *testing.T, err error) {
	t.Helper()
	requireDomainError(t, err, domain.CodeJokeContentNull, "Content mustn't be null.", http.StatusUnprocessableEntity)
	assert.True(t, domain.IsValidationError(err))
}

func requireContentEmpty(t *testing.T, err error) {
	t.Helper()
	requireDomainError(t, err, domain.CodeJokeContentEmpty, "Content mustn't be empty string.", http.StatusUnprocessableEntity)
	assert.True(t, domain.IsValidationError(err))
}

func strPtr(s string) *string {
	return &s
}
