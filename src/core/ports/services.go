package ports

import (
	"context"

	"github.com/google/uuid"

	"jokecatalog/src/core/domain"
)

// AuditStamper supplies the actor and time used to stamp audit records.
type AuditStamper interface {
	Stamp(ctx context.Context) domain.AuditStamp
}

// IDGenerator supplies public identifiers for new records.
type IDGenerator interface {
	NewUUID() uuid.UUID
}
