// Package pipeline holds the client-side working set of deals for one
// session: the insertion-ordered collection, the active filters, and the
// derived summary figures. A Store is created when a session starts and
// discarded when it ends; it is never shared between sessions.
package pipeline

import (
	"time"

	"gamyam/internal/models"
)

// Store is the in-memory deal collection for a single session. It trusts
// its callers: input is validated before it gets here, and operations on
// unknown ids are silent no-ops rather than errors. All operations are
// synchronous and never fail.
type Store struct {
	items   []models.Deal
	filters Filters
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// ReplaceAll installs a full list fetched from the server, preserving its
// order. Uniqueness of ids is trusted, not re-checked.
func (s *Store) ReplaceAll(deals []models.Deal) {
	s.items = make([]models.Deal, len(deals))
	copy(s.items, deals)
}

// Add appends a deal. The caller guarantees the id is not already present.
func (s *Store) Add(deal models.Deal) {
	s.items = append(s.items, deal)
}

// Update replaces the entry with the same id wholesale. Unknown id is a
// no-op: the store trusts the caller to have confirmed existence.
func (s *Store) Update(deal models.Deal) {
	for i := range s.items {
		if s.items[i].ID == deal.ID {
			s.items[i] = deal
			return
		}
	}
}

// Remove deletes the entry with the given id, if present.
func (s *Store) Remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// SetStage mutates only the stage of the entry with the given id and
// restamps UpdatedAt, like every other field mutation.
func (s *Store) SetStage(id string, stage models.Stage) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Stage = stage
			s.items[i].UpdatedAt = s.now()
			return
		}
	}
}

// Get returns the deal with the given id, or nil if absent.
func (s *Store) Get(id string) *models.Deal {
	for i := range s.items {
		if s.items[i].ID == id {
			d := s.items[i]
			return &d
		}
	}
	return nil
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []models.Deal {
	out := make([]models.Deal, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}

// SetFilters replaces the active filters wholesale.
func (s *Store) SetFilters(f Filters) {
	s.filters = f
}

// ClearFilters resets the filters to the all-absent state.
func (s *Store) ClearFilters() {
	s.filters = Filters{}
}

func (s *Store) Filters() Filters {
	return s.filters
}

// Filtered returns the deals matching the active filters, in insertion
// order. The underlying collection is not touched.
func (s *Store) Filtered() []models.Deal {
	out := make([]models.Deal, 0, len(s.items))
	for _, d := range s.items {
		if s.filters.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}
