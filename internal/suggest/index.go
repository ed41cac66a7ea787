// Package suggest builds autocomplete entries for the search box from
// the catalog's makes, models and locations, plus the user's recent
// searches.
package suggest

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"carbitrage/internal/domain"
)

const (
	// MinQueryLen is the shortest query that produces live suggestions
	MinQueryLen = 2
	// DefaultLimit caps live suggestion lists
	DefaultLimit = 8

	cacheSize = 256
)

// entry is one indexed candidate
type entry struct {
	suggestion domain.Suggestion
	lowered    string
}

// Index matches prefixes and substrings of catalog terms. The index is
// immutable after construction; lookups are memoized because the UI
// queries on every keystroke.
type Index struct {
	entries []entry
	cache   *lru.Cache[string, []domain.Suggestion]
}

// NewIndex builds an index over the given records. Makes come first,
// then models tagged with their body style, then dealer locations.
func NewIndex(vehicles []domain.Vehicle) *Index {
	makeCounts := map[string]int{}
	modelCounts := map[string]int{}
	modelBody := map[string]string{}
	modelMake := map[string]string{}
	locCounts := map[string]int{}

	for _, v := range vehicles {
		makeCounts[v.Make]++
		modelCounts[v.Model]++
		modelBody[v.Model] = v.BodyType
		modelMake[v.Model] = v.Make
		loc := fmt.Sprintf("%s, %s", v.Location.City, v.Location.State)
		locCounts[loc]++
	}

	var entries []entry
	for _, v := range vehicles {
		if makeCounts[v.Make] == 0 {
			continue
		}
		entries = append(entries, entry{
			suggestion: domain.Suggestion{
				Type:  domain.SuggestionMake,
				Text:  v.Make,
				Count: makeCounts[v.Make],
			},
			lowered: strings.ToLower(v.Make),
		})
		makeCounts[v.Make] = 0 // emit each make once, in catalog order
	}
	for _, v := range vehicles {
		if modelCounts[v.Model] == 0 {
			continue
		}
		full := modelMake[v.Model] + " " + v.Model
		entries = append(entries, entry{
			suggestion: domain.Suggestion{
				Type:     domain.SuggestionModel,
				Text:     full,
				Subtitle: modelBody[v.Model],
				Count:    modelCounts[v.Model],
			},
			lowered: strings.ToLower(full),
		})
		modelCounts[v.Model] = 0
	}
	for _, v := range vehicles {
		loc := fmt.Sprintf("%s, %s", v.Location.City, v.Location.State)
		if locCounts[loc] == 0 {
			continue
		}
		entries = append(entries, entry{
			suggestion: domain.Suggestion{
				Type:  domain.SuggestionLocation,
				Text:  loc,
				Count: locCounts[loc],
			},
			lowered: strings.ToLower(loc),
		})
		locCounts[loc] = 0
	}

	cache, _ := lru.New[string, []domain.Suggestion](cacheSize)
	return &Index{entries: entries, cache: cache}
}

// Suggest returns up to limit entries whose text contains the query,
// case-insensitively. Queries shorter than MinQueryLen yield nothing.
func (ix *Index) Suggest(q string, limit int) []domain.Suggestion {
	q = strings.ToLower(strings.TrimSpace(q))
	if len([]rune(q)) < MinQueryLen {
		return []domain.Suggestion{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	key := fmt.Sprintf("%s|%d", q, limit)
	if cached, ok := ix.cache.Get(key); ok {
		return cached
	}

	out := make([]domain.Suggestion, 0, limit)
	for _, e := range ix.entries {
		if strings.Contains(e.lowered, q) {
			out = append(out, e.suggestion)
			if len(out) == limit {
				break
			}
		}
	}

	ix.cache.Add(key, out)
	return out
}
