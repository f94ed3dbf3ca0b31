package catalog

import (
	"fmt"
	"sync/atomic"
)

// Store holds the current catalog behind an atomic pointer. Requests read
// the catalog lock-free; a reload builds a complete replacement and swaps
// the pointer, so in-flight requests keep the snapshot they started with.
type Store struct {
	path    string
	current atomic.Pointer[Catalog]
}

// NewStore creates a store serving the given catalog. path is remembered
// for later reloads and may be empty when reloading is not needed.
func NewStore(path string, c *Catalog) *Store {
	s := &Store{path: path}
	if c == nil {
		c = New(nil)
	}
	s.current.Store(c)
	return s
}

// Current returns the catalog snapshot to use for a request.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Reload re-reads the catalog file and swaps it in. On failure the
// previous catalog stays in place.
func (s *Store) Reload() (*Catalog, error) {
	if s.path == "" {
		return nil, fmt.Errorf("no catalog path configured")
	}
	c, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.current.Store(c)
	return c, nil
}
