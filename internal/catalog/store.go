package catalog

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store holds the category → filenames mapping for the whole exhibition.
// It is populated exactly once by Load and read-only afterwards; searches
// must be rejected until Load has succeeded.
type Store struct {
	path   string
	images map[CategoryID][]string
	loaded bool
	mu     sync.RWMutex
}

func NewStore(path string) *Store {
	return &Store{
		path:   path,
		images: make(map[CategoryID][]string),
	}
}

// Load reads the database file. The file maps each category identifier to
// an ordered list of filenames; the original export is JSON, which the YAML
// decoder accepts as-is. Categories absent from the file end up with empty
// lists, unknown keys are rejected. A failed Load leaves the store not
// ready, so searches keep reporting ErrNotLoaded until a reload succeeds.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read database file: %w", err)
	}

	var file map[string][]string
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse database file %q: %w", s.path, err)
	}

	images := make(map[CategoryID][]string, len(categoryTable))
	for key, filenames := range file {
		id := CategoryID(key)
		if !id.Valid() {
			return fmt.Errorf("%w: %q in database file %q", ErrUnknownCategory, key, s.path)
		}
		images[id] = filenames
	}
	for _, id := range categoryOrder {
		if images[id] == nil {
			images[id] = []string{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = images
	s.loaded = true
	return nil
}

// Ready reports whether the database has been loaded.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Images returns the ordered filenames of a category.
func (s *Store) Images(id CategoryID) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	images := s.images[id]
	out := make([]string, len(images))
	copy(out, images)
	return out
}

// CategoryCount returns the number of images in one category.
func (s *Store) CategoryCount(id CategoryID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images[id])
}

// Count returns the total number of images across all categories.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, images := range s.images {
		total += len(images)
	}
	return total
}
