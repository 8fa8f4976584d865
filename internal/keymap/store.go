package keymap

import "sync/atomic"

// Store publishes the active Map. Readers get a snapshot that is never
// mutated; a reload replaces the whole Map.
type Store struct {
	current atomic.Pointer[Map]
}

// NewStore returns a store holding m.
func NewStore(m Map) *Store {
	s := &Store{}
	s.Swap(m)
	return s
}

// Load returns the current snapshot (nil when nothing was stored).
func (s *Store) Load() Map {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return nil
}

// Swap installs m and returns the previous map.
func (s *Store) Swap(m Map) Map {
	if old := s.current.Swap(&m); old != nil {
		return *old
	}
	return nil
}
