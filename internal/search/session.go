package search

import (
	"github.com/google/uuid"

	"ondas/internal/catalog"
	"ondas/internal/page"
)

// Session owns the current search state for one user interaction: the last
// query and its ranked results. Each Search replaces the whole buffer, so
// pagination always reads a single consistent result set.
type Session struct {
	id      string
	store   *catalog.Store
	query   string
	results []Result
}

func NewSession(store *catalog.Store) *Session {
	return &Session{
		id:    uuid.New().String(),
		store: store,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Search runs query and makes its results the session's current results.
// While the store is not ready the session state is left untouched and
// catalog.ErrNotLoaded is returned.
func (s *Session) Search(query string) ([]Result, error) {
	results, err := Search(s.store, query)
	if err != nil {
		return nil, err
	}

	s.query = query
	s.results = results
	return results, nil
}

// Query returns the query behind the current results.
func (s *Session) Query() string {
	return s.query
}

// Results returns the current result buffer.
func (s *Session) Results() []Result {
	return s.results
}

// Page slices the current results into size-element pages and returns the
// requested one, clamped to the valid range.
func (s *Session) Page(number, size int) page.Page[Result] {
	return page.Paginate(s.results, number, size)
}
