package recdb

import "iter"

// Meta carries the identity and liveness of a record. Embed it as the first
// field of every struct kept in a Store.
type Meta struct {
	ID     int  `msgpack:"i"`
	Active bool `msgpack:"a"`
}

func (m *Meta) meta() *Meta { return m }

// Row constrains record pointer types: a record is a struct embedding Meta.
type Row[T any] interface {
	*T
	meta() *Meta
}

// Store is an ordered collection of records of one entity type. Records are
// kept in insertion order; all lookups are linear scans. A Store is not safe
// for concurrent use.
type Store[T any, P Row[T]] struct {
	name string
	cap  int
	rows []T
}

// NewStore creates an empty store. A capacity of zero means unbounded;
// a positive capacity makes Insert fail with ErrStoreFull once reached.
func NewStore[T any, P Row[T]](name string, capacity int) *Store[T, P] {
	if capacity < 0 {
		panic("recdb: negative store capacity")
	}
	return &Store[T, P]{name: name, cap: capacity}
}

func (s *Store[T, P]) Name() string { return s.name }

func (s *Store[T, P]) Capacity() int { return s.cap }

// Len counts every record ever inserted, deactivated ones included.
func (s *Store[T, P]) Len() int { return len(s.rows) }

// Insert appends a copy of *row, assigning the next sequential ID and marking
// the record active. IDs are never reused, even after deactivation.
func (s *Store[T, P]) Insert(row P) (int, error) {
	if s.cap > 0 && len(s.rows) >= s.cap {
		return 0, storeErrf(s.name, 0, ErrStoreFull, "capacity %d", s.cap)
	}
	m := row.meta()
	m.ID = len(s.rows) + 1
	m.Active = true
	s.rows = append(s.rows, *(*T)(row))
	return m.ID, nil
}

// Get returns the active record with the given ID, or nil. Deactivated
// records are invisible here; use Everything to reach them.
func (s *Store[T, P]) Get(id int) P {
	if id <= 0 || id > len(s.rows) {
		return nil
	}
	for i := range s.rows {
		p := P(&s.rows[i])
		if m := p.meta(); m.ID == id {
			if !m.Active {
				return nil
			}
			return p
		}
	}
	return nil
}

// Update locates an active record by ID and mutates it in place.
func (s *Store[T, P]) Update(id int, mutate func(P)) error {
	p := s.Get(id)
	if p == nil {
		return storeErrf(s.name, id, ErrNotFound, "")
	}
	mutate(p)
	return nil
}

// Deactivate soft-deletes a record. The record keeps its position and ID, and
// records referencing it are not touched.
func (s *Store[T, P]) Deactivate(id int) error {
	p := s.Get(id)
	if p == nil {
		return storeErrf(s.name, id, ErrNotFound, "")
	}
	p.meta().Active = false
	return nil
}

// All yields active records in insertion order.
func (s *Store[T, P]) All() iter.Seq[P] {
	return s.Scan(func(P) bool { return true })
}

// Everything yields every record in insertion order, deactivated ones
// included.
func (s *Store[T, P]) Everything() iter.Seq[P] {
	return func(yield func(P) bool) {
		for i := range s.rows {
			if !yield(P(&s.rows[i])) {
				return
			}
		}
	}
}

// Scan yields active records satisfying pred, in insertion order.
func (s *Store[T, P]) Scan(pred func(P) bool) iter.Seq[P] {
	return func(yield func(P) bool) {
		for i := range s.rows {
			p := P(&s.rows[i])
			if p.meta().Active && pred(p) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// First returns the first active record satisfying pred, or nil.
func (s *Store[T, P]) First(pred func(P) bool) P {
	for p := range s.Scan(pred) {
		return p
	}
	return nil
}

// Count counts active records satisfying pred.
func (s *Store[T, P]) Count(pred func(P) bool) int {
	var n int
	for range s.Scan(pred) {
		n++
	}
	return n
}
