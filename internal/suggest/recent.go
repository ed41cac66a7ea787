package suggest

import (
	"strings"

	"carbitrage/internal/domain"
)

// MaxRecent caps the remembered search list
const MaxRecent = 10

// RecentLimit caps how many recents appear when the box is empty
const RecentLimit = 5

// Recents is a bounded most-recent-first list of submitted searches.
// Not safe for concurrent use; the UI owns it.
type Recents struct {
	items []string
}

// NewRecents creates a list seeded from persisted state. Input beyond
// the cap is dropped from the old end.
func NewRecents(seed []string) *Recents {
	r := &Recents{}
	for i := len(seed) - 1; i >= 0; i-- {
		r.Add(seed[i])
	}
	return r
}

// Add records a submitted search at the front. Duplicates move to the
// front instead of repeating; blank input is ignored.
func (r *Recents) Add(q string) {
	q = strings.TrimSpace(q)
	if q == "" {
		return
	}

	for i, existing := range r.items {
		if strings.EqualFold(existing, q) {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}

	r.items = append([]string{q}, r.items...)
	if len(r.items) > MaxRecent {
		r.items = r.items[:MaxRecent]
	}
}

// Clear drops the whole list
func (r *Recents) Clear() {
	r.items = nil
}

// List returns a copy, most recent first
func (r *Recents) List() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

// Suggestions returns up to limit recents as autocomplete entries
func (r *Recents) Suggestions(limit int) []domain.Suggestion {
	if limit <= 0 {
		limit = RecentLimit
	}
	out := make([]domain.Suggestion, 0, limit)
	for _, q := range r.items {
		out = append(out, domain.Suggestion{Type: domain.SuggestionRecent, Text: q})
		if len(out) == limit {
			break
		}
	}
	return out
}
