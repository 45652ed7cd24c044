package engine

import (
	"sort"
	"sync"

	"github.com/ashenfell/brawlarc/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern; iteration order is ascending slot index so query
// results are reproducible across runs
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity
	sorted     bool

	// alive guards Add against stale generations; nil is permissive
	alive func(core.Entity) bool
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
		sorted:     true,
	}
}

// Add inserts or updates a component for an entity
// A stale or null handle is a no-op, never a crash
func (s *Store[T]) Add(e core.Entity, val T) {
	if e.IsNull() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.alive != nil && !s.alive(e) {
		return
	}
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
		s.sorted = false
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Update applies fn to the component in place if present
func (s *Store[T]) Update(e core.Entity, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.components[e]
	if !ok {
		return false
	}
	fn(&val)
	s.components[e] = val
	return true
}

// Remove deletes a component from an entity
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; exists {
		delete(s.components, e)
		for i, entity := range s.entities {
			if entity == e {
				s.entities[i] = s.entities[len(s.entities)-1]
				s.entities = s.entities[:len(s.entities)-1]
				s.sorted = false
				break
			}
		}
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns entities with this component in ascending slot order
// The returned slice is a copy; structural changes during iteration are
// never observed by the caller
func (s *Store[T]) All() []core.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortLocked()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
	s.sorted = true
}

func (s *Store[T]) sortLocked() {
	if s.sorted {
		return
	}
	sort.Slice(s.entities, func(i, j int) bool {
		return s.entities[i].Slot() < s.entities[j].Slot()
	})
	s.sorted = true
}

// QueryableStore is the store surface the query builder intersects over
type QueryableStore interface {
	All() []core.Entity
	Has(e core.Entity) bool
	Count() int
}

// storeEraser lets the world detach an entity from every registered store
// without knowing component types
type storeEraser interface {
	Remove(e core.Entity)
	Clear()
	bindAlive(fn func(core.Entity) bool)
}

func (s *Store[T]) bindAlive(fn func(core.Entity) bool) {
	s.alive = fn
}
