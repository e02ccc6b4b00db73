package solver

import "wayfarer/internal/models"

// Pool is the mutable working set of candidate places for one planning run.
// It pairs the immutable candidate slice with a used-bitmap so selection
// state never leaks into the places themselves. A pool is owned by exactly
// one build and passed explicitly into each day's solve; nothing here is
// safe for concurrent use and nothing needs to be.
type Pool struct {
	places []models.Place
	used   []bool
}

// NewPool wraps a candidate list. The slice is kept by reference; callers
// sharing a cached list across runs must pass a copy.
func NewPool(places []models.Place) *Pool {
	return &Pool{
		places: places,
		used:   make([]bool, len(places)),
	}
}

// Len returns the number of candidates.
func (p *Pool) Len() int {
	return len(p.places)
}

// Place returns the candidate at index i.
func (p *Pool) Place(i int) models.Place {
	return p.places[i]
}

// Used reports whether the candidate at index i has been placed.
func (p *Pool) Used(i int) bool {
	return p.used[i]
}

// MarkUsed removes the candidate at index i from further candidacy.
func (p *Pool) MarkUsed(i int) {
	p.used[i] = true
}
