package guide

import "sync/atomic"

var emptyCatalog = &Catalog{}

// State holds the current Catalog. Readers always see a complete snapshot.
type State struct {
	current atomic.Pointer[Catalog]
}

func NewState() *State {
	return &State{}
}

// Snapshot returns the current catalog, or an empty one before the first refresh.
func (s *State) Snapshot() *Catalog {
	if c := s.current.Load(); c != nil {
		return c
	}
	return emptyCatalog
}

func (s *State) Store(c *Catalog) {
	s.current.Store(c)
}
