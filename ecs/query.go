package ecs

import "iter"

// Projection extracts a result of type R from a bundle. It returns false when
// the bundle lacks anything the projection requires; such entities are skipped.
type Projection[C, R any] func(bundle *C) (R, bool)

// Row2 holds the values of a two-field query.
type Row2[A, B any] struct {
	A A
	B B
}

// Row3 holds the values of a three-field query.
type Row3[A, B, D any] struct {
	A A
	B B
	C D
}

// Row4 holds the values of a four-field query.
type Row4[A, B, D, E any] struct {
	A A
	B B
	C D
	D E
}

// Clone copies each value, cloning those that implement Cloner.
func (r Row2[A, B]) Clone() Row2[A, B] {
	return Row2[A, B]{A: cloneValue(r.A), B: cloneValue(r.B)}
}

func (r Row3[A, B, D]) Clone() Row3[A, B, D] {
	return Row3[A, B, D]{A: cloneValue(r.A), B: cloneValue(r.B), C: cloneValue(r.C)}
}

func (r Row4[A, B, D, E]) Clone() Row4[A, B, D, E] {
	return Row4[A, B, D, E]{A: cloneValue(r.A), B: cloneValue(r.B), C: cloneValue(r.C), D: cloneValue(r.D)}
}

// Project1 projects a single field.
func Project1[C, A any](a Field[C, A]) Projection[C, A] {
	return func(bundle *C) (A, bool) {
		return a.Value(bundle)
	}
}

// Project2 projects two fields; both must be present.
func Project2[C, A, B any](a Field[C, A], b Field[C, B]) Projection[C, Row2[A, B]] {
	return func(bundle *C) (Row2[A, B], bool) {
		var row Row2[A, B]
		if !a.Has(bundle) || !b.Has(bundle) {
			return row, false
		}
		row.A, _ = a.Value(bundle)
		row.B, _ = b.Value(bundle)
		return row, true
	}
}

// Project3 projects three fields; all must be present.
func Project3[C, A, B, D any](a Field[C, A], b Field[C, B], c Field[C, D]) Projection[C, Row3[A, B, D]] {
	return func(bundle *C) (Row3[A, B, D], bool) {
		var row Row3[A, B, D]
		if !a.Has(bundle) || !b.Has(bundle) || !c.Has(bundle) {
			return row, false
		}
		row.A, _ = a.Value(bundle)
		row.B, _ = b.Value(bundle)
		row.C, _ = c.Value(bundle)
		return row, true
	}
}

// Project4 projects four fields; all must be present.
func Project4[C, A, B, D, E any](a Field[C, A], b Field[C, B], c Field[C, D], d Field[C, E]) Projection[C, Row4[A, B, D, E]] {
	return func(bundle *C) (Row4[A, B, D, E], bool) {
		var row Row4[A, B, D, E]
		if !a.Has(bundle) || !b.Has(bundle) || !c.Has(bundle) || !d.Has(bundle) {
			return row, false
		}
		row.A, _ = a.Value(bundle)
		row.B, _ = b.Value(bundle)
		row.C, _ = c.Value(bundle)
		row.D, _ = d.Value(bundle)
		return row, true
	}
}

// Select returns a lazy sequence of (id, result) pairs for every entity the
// projection accepts, in spawn order.
//
// The id sequence is captured when Select is called: entities spawned later,
// including during iteration, are not visited. Ranging over the returned
// sequence more than once restarts from the beginning of the same snapshot.
func Select[C, R any](w *World[C], project Projection[C, R]) iter.Seq2[EntityId, R] {
	ids := w.snapshot()
	return func(yield func(EntityId, R) bool) {
		for _, id := range ids {
			bundle, ok := w.bundle(id)
			if !ok {
				continue
			}
			result, ok := project(bundle)
			if !ok {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Query1 yields every entity that has field a, with a copy of its value.
func Query1[C, A any](w *World[C], a Field[C, A]) iter.Seq2[EntityId, A] {
	return Select(w, Project1(a))
}

// Query2 yields every entity that has both fields.
func Query2[C, A, B any](w *World[C], a Field[C, A], b Field[C, B]) iter.Seq2[EntityId, Row2[A, B]] {
	return Select(w, Project2(a, b))
}

// Query3 yields every entity that has all three fields.
func Query3[C, A, B, D any](w *World[C], a Field[C, A], b Field[C, B], c Field[C, D]) iter.Seq2[EntityId, Row3[A, B, D]] {
	return Select(w, Project3(a, b, c))
}

// Query4 yields every entity that has all four fields.
func Query4[C, A, B, D, E any](w *World[C], a Field[C, A], b Field[C, B], c Field[C, D], d Field[C, E]) iter.Seq2[EntityId, Row4[A, B, D, E]] {
	return Select(w, Project4(a, b, c, d))
}
