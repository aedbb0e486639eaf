package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditStamp is a single who/when pair applied to an Audit record.
type AuditStamp struct {
	At time.Time
	By string
}

// Audit tracks creation and last modification of a record.
// Updated fields stay nil until the first update.
type Audit struct {
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt *time.Time
	UpdatedBy *string
}

// Created returns an Audit stamped only with creation metadata.
func Created(stamp AuditStamp) Audit {
	return Audit{
		CreatedAt: stamp.At,
		CreatedBy: stamp.By,
	}
}

// Touch returns a copy of the audit with the updated fields replaced by stamp.
// Creation fields are preserved.
func (a Audit) Touch(stamp AuditStamp) Audit {
	at := stamp.At
	by := stamp.By
	a.UpdatedAt = &at
	a.UpdatedBy = &by
	return a
}

// Joke is a catalog entry.
// ID is the storage key and is never exposed outside the service; callers address jokes by UUID.
type Joke struct {
	ID      int64
	UUID    uuid.UUID
	Content string
	Audit   Audit
}

// IsNew reports whether the joke has not been persisted yet.
func (j *Joke) IsNew() bool {
	return j.ID == 0
}

// Role is reference data seeded by migrations.
type Role struct {
	ID   int64
	Name string
}

// Account is a user account bound to a role.
// The catalog never mutates accounts; it only counts them.
type Account struct {
	ID       int64
	Username string
	RoleID   int64
}
