// Package audit supplies the actor and timestamp recorded on created and
// updated records.
package audit

import (
	"context"

	"jokecatalog/src/core/domain"
)

type actorKey struct{}

// WithActor returns a context carrying the acting user.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the acting user stored in ctx, if any.
func ActorFrom(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey{}).(string)
	return actor, ok && actor != ""
}

// Stamper implements ports.AuditStamper.
type Stamper struct {
	clock        TimeProvider
	defaultActor string
}

// NewStamper creates a Stamper. defaultActor is used when the context carries no actor.
func NewStamper(clock TimeProvider, defaultActor string) *Stamper {
	if clock == nil {
		clock = RealTimeProvider{}
	}
	return &Stamper{clock: clock, defaultActor: defaultActor}
}

// Stamp returns the current actor and time.
func (s *Stamper) Stamp(ctx context.Context) domain.AuditStamp {
	actor, ok := ActorFrom(ctx)
	if !ok {
		actor = s.defaultActor
	}
	return domain.AuditStamp{At: s.clock.Now(), By: actor}
}
