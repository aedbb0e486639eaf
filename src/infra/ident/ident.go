// Package ident generates public identifiers.
package ident

import (
	"sync"

	"github.com/google/uuid"
)

// RandomGenerator issues random (version 4) UUIDs.
type RandomGenerator struct{}

// NewUUID returns a fresh random UUID.
func (RandomGenerator) NewUUID() uuid.UUID {
	return uuid.New()
}

// SequenceGenerator returns a fixed list of UUIDs in order, then random ones.
// It makes identifiers predictable in tests.
type SequenceGenerator struct {
	mu   sync.Mutex
	ids  []uuid.UUID
	next int
}

// NewSequenceGenerator creates a generator that yields ids first.
func NewSequenceGenerator(ids ...uuid.UUID) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

// NewUUID returns the next queued UUID, or a random one once the queue is spent.
// It is safe for concurrent use.
func (g *SequenceGenerator) NewUUID() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next >= len(g.ids) {
		return uuid.New()
	}
	id := g.ids[g.next]
	g.next++
	return id
}
