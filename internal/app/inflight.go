package app

import (
	"errors"
	"sync"
)

// ErrActionInFlight indicates a mutating action for the same entity is
// already outstanding from this console instance.
var ErrActionInFlight = errors.New("action already in flight for this entity")

type inflightKey struct {
	kind string
	id   int64
}

// InflightGuard tracks which entities currently have a mutating request
// outstanding. At most one mutating action per entity id may be in flight;
// entities of different kinds or ids proceed independently.
type InflightGuard struct {
	mu     sync.Mutex
	active map[inflightKey]struct{}
}

// NewInflightGuard creates an empty guard.
func NewInflightGuard() *InflightGuard {
	return &InflightGuard{active: make(map[inflightKey]struct{})}
}

// Acquire marks (kind, id) as busy. It reports false if a prior action on
// the same entity has not released yet.
func (g *InflightGuard) Acquire(kind string, id int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := inflightKey{kind: kind, id: id}
	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

// Release clears the busy marker for (kind, id).
func (g *InflightGuard) Release(kind string, id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, inflightKey{kind: kind, id: id})
}
