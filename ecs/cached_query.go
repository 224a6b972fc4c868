package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// CachedQuery memoizes the results of a projection for repeated iteration.
// Worlds are append-only, so Execute only projects entities spawned since the
// previous call; rows that were already evaluated are never revisited.
type CachedQuery[C, R any] struct {
	world   *World[C]
	project Projection[C, R]

	scanned  int
	rows     []uint32
	results  *intmap.Map[uint32, R]
	executed bool
}

// NewCachedQuery creates a cached query over world.
func NewCachedQuery[C, R any](world *World[C], project Projection[C, R]) *CachedQuery[C, R] {
	return &CachedQuery[C, R]{
		world:   world,
		project: project,
		results: intmap.New[uint32, R](64),
	}
}

// Execute brings the cache up to date with the world.
func (q *CachedQuery[C, R]) Execute() {
	ids := q.world.snapshot()
	for row := q.scanned; row < len(ids); row++ {
		bundle, ok := q.world.bundle(ids[row])
		if !ok {
			continue
		}
		result, ok := q.project(bundle)
		if !ok {
			continue
		}
		q.rows = append(q.rows, uint32(row))
		q.results.Put(uint32(row), result)
	}
	q.scanned = len(ids)
	q.executed = true
}

// Reset drops every cached result. The next Execute rescans the whole world.
func (q *CachedQuery[C, R]) Reset() {
	q.scanned = 0
	q.rows = nil
	q.results.Clear()
	q.executed = false
}

// Len returns the number of cached matches.
func (q *CachedQuery[C, R]) Len() int {
	return len(q.rows)
}

// Iter returns an iterator over the cached (id, result) pairs in spawn order.
// Panics if Execute() has never been called.
func (q *CachedQuery[C, R]) Iter() iter.Seq2[EntityId, R] {
	if !q.executed {
		panic("CachedQuery.Iter() called before CachedQuery.Execute()")
	}

	ids := q.world.snapshot()
	rows := q.rows[:len(q.rows):len(q.rows)]
	return func(yield func(EntityId, R) bool) {
		for _, row := range rows {
			result, _ := q.results.Get(row)
			if !yield(ids[row], cloneValue(result)) {
				return
			}
		}
	}
}

// Values returns an iterator over the cached results only.
// Panics if Execute() has never been called.
func (q *CachedQuery[C, R]) Values() iter.Seq[R] {
	if !q.executed {
		panic("CachedQuery.Values() called before CachedQuery.Execute()")
	}

	seq := q.Iter()
	return func(yield func(R) bool) {
		for _, result := range seq {
			if !yield(result) {
				return
			}
		}
	}
}
