package gallery

import (
	"fmt"
	"strings"
	"sync"
)

// Store owns the source templates, the translated set derived from them, and
// the displayed subsequence selected by the active filter. Translated and
// displayed views always preserve source cardinality and order; filtering
// rebuilds displayed from scratch and never mutates the inputs.
type Store struct {
	mu         sync.RWMutex
	source     []Template
	translated []Template
	displayed  []Template
	language   string
}

// NewStore creates a store over the source dataset. Until the first
// SetTranslated the translated view is the source itself.
func NewStore(source []Template) *Store {
	s := &Store{
		source:     source,
		translated: source,
	}
	s.displayed = append([]Template(nil), source...)
	return s
}

// Source returns the immutable source dataset.
func (s *Store) Source() []Template {
	return s.source
}

// Language returns the language of the current translated set.
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetTranslated atomically replaces the translated set for the given
// language. The list must mirror the source dataset one-to-one.
func (s *Store) SetTranslated(language string, list []Template) error {
	if len(list) != len(s.source) {
		return fmt.Errorf("translated set has %d entries, source has %d", len(list), len(s.source))
	}

	s.mu.Lock()
	s.translated = list
	s.language = language
	s.mu.Unlock()
	return nil
}

// Categories returns the distinct categories across the source dataset in
// first-occurrence order, with the synthetic "All" entry first.
// Uncategorized records count as the default category.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	categories := []string{CategoryAll}
	for _, t := range s.source {
		c := t.CategoryOrDefault()
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories
}

// Filter rebuilds the displayed view: templates whose category matches (or
// "All"), and whose subject, body, and category concatenation contains the
// query case-insensitively. Returns the new displayed list.
func (s *Store) Filter(category, query string) []Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))

	displayed := make([]Template, 0, len(s.translated))
	for _, t := range s.translated {
		if category != "" && category != CategoryAll && t.CategoryOrDefault() != category {
			continue
		}
		if query != "" {
			if !matchesQuery(t, query) {
				continue
			}
		}
		displayed = append(displayed, t)
	}

	s.displayed = displayed
	return displayed
}

// Entry pairs a template with its stable position in the dataset.
type Entry struct {
	Index    int
	Template Template
}

// Match evaluates the filter without touching the displayed view, returning
// matches with their stable dataset positions. The JSON API uses this so its
// queries never disturb the UI state.
func (s *Store) Match(category, query string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))

	var matches []Entry
	for i, t := range s.translated {
		if category != "" && category != CategoryAll && t.CategoryOrDefault() != category {
			continue
		}
		if query != "" {
			if !matchesQuery(t, query) {
				continue
			}
		}
		matches = append(matches, Entry{Index: i, Template: t})
	}
	return matches
}

// TranslatedAt returns the translated template at stable dataset position i.
func (s *Store) TranslatedAt(i int) (Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.translated) {
		return Template{}, false
	}
	return s.translated[i], true
}

// matchesQuery reports whether the lowercased query occurs in the template's
// searchable text. Fields are joined with a space separator so a query can
// never match across a field boundary (end of subject running into start of
// body).
func matchesQuery(t Template, query string) bool {
	haystack := strings.ToLower(t.Subject + " " + t.Body + " " + t.CategoryOrDefault())
	return strings.Contains(haystack, query)
}

// Displayed returns the current filtered view.
func (s *Store) Displayed() []Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.displayed
}

// At returns the displayed template at index i.
func (s *Store) At(i int) (Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.displayed) {
		return Template{}, false
	}
	return s.displayed[i], true
}

// Counts returns the shown and total template counts for the live readout.
func (s *Store) Counts() (shown, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.displayed), len(s.translated)
}

// CountLabel formats the "<shown> / <total>" readout.
func (s *Store) CountLabel() string {
	shown, total := s.Counts()
	return fmt.Sprintf("%d / %d", shown, total)
}
