// Package catalog holds the per-session working state: registered listing
// sources, the current filter criteria, and the user's shortlist. It is the
// explicit session-state object the pipeline is handed — there are no
// ambient globals, and every mutation goes through a defined action.
// Sessions live in memory only and vanish with the process.
package catalog

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/aqarhub/aqarfinder/internal/metrics"
	"github.com/aqarhub/aqarfinder/internal/provider"
	"github.com/aqarhub/aqarfinder/pkg/types"
)

// ErrSessionNotFound is returned when a session ID is unknown.
var ErrSessionNotFound = errors.New("session not found")

// Session is one user's browsing state.
type Session struct {
	ID       string
	Language string

	mu        sync.Mutex
	criteria  types.Criteria
	sources   []provider.Provider
	shortlist []types.Listing
}

// SetCriteria replaces the session's filter criteria.
func (s *Session) SetCriteria(c types.Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = c
}

// Criteria returns the session's current filter criteria.
func (s *Session) Criteria() types.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// AddSource registers a listing source. Sources accumulate; every search
// re-runs the full ingest over all of them.
func (s *Session) AddSource(p provider.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources = append(s.sources, p)
}

// Sources returns the registered sources in registration order.
func (s *Session) Sources() []provider.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]provider.Provider, len(s.sources))
	copy(out, s.sources)
	return out
}

// AddToShortlist appends a listing to the session shortlist. The shortlist
// accumulates raw normalized records for the session's lifetime; saving the
// same listing twice keeps both entries, as the original did.
func (s *Session) AddToShortlist(l types.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shortlist = append(s.shortlist, l)
	metrics.ShortlistSavesTotal.Inc()
}

// Shortlist returns the saved listings in save order.
func (s *Session) Shortlist() []types.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Listing, len(s.shortlist))
	copy(out, s.shortlist)
	return out
}

// SetLanguage records the user's language choice ("en" or "ar").
func (s *Session) SetLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Language = lang
}

// Catalog is the in-memory session registry.
type Catalog struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{sessions: make(map[string]*Session)}
}

// NewSession creates and registers a session with a fresh UUID.
func (c *Catalog) NewSession(language string) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Language: language,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[s.ID] = s
	return s
}

// Get looks up a session by ID.
func (c *Catalog) Get(id string) (*Session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Count returns the number of live sessions.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sessions)
}
