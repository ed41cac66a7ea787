package catalog

import (
	"sort"

	"carbitrage/internal/domain"
)

// Store holds the in-memory vehicle catalog. Records are immutable for
// the lifetime of the store; readers receive copies of the slice header
// and must not reorder it.
type Store struct {
	vehicles []domain.Vehicle
	byID     map[string]domain.Vehicle
}

// NewStore creates a store over the given records
func NewStore(vehicles []domain.Vehicle) *Store {
	byID := make(map[string]domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}
	return &Store{vehicles: vehicles, byID: byID}
}

// NewSampleStore creates a store over the built-in inventory
func NewSampleStore() *Store {
	return NewStore(sampleVehicles)
}

// All returns every record in catalog order
func (s *Store) All() []domain.Vehicle {
	out := make([]domain.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Get looks up a record by id. The second return value reports whether
// the id exists; absence is not an error.
func (s *Store) Get(id string) (domain.Vehicle, bool) {
	v, ok := s.byID[id]
	return v, ok
}

// Len returns the record count
func (s *Store) Len() int {
	return len(s.vehicles)
}

// Featured returns up to limit records ranked by arbitrage score
// descending, breaking ties by catalog order.
func (s *Store) Featured(limit int) []domain.Vehicle {
	if limit <= 0 {
		return []domain.Vehicle{}
	}
	ranked := s.All()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ArbitrageScore > ranked[j].ArbitrageScore
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Similar returns up to limit records sharing a make or body type with
// the given vehicle, excluding the vehicle itself, ranked by arbitrage
// score descending.
func (s *Store) Similar(id string, limit int) []domain.Vehicle {
	ref, ok := s.byID[id]
	if !ok || limit <= 0 {
		return []domain.Vehicle{}
	}

	related := make([]domain.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if v.ID == ref.ID {
			continue
		}
		if v.Make == ref.Make || v.BodyType == ref.BodyType {
			related = append(related, v)
		}
	}
	sort.SliceStable(related, func(i, j int) bool {
		return related[i].ArbitrageScore > related[j].ArbitrageScore
	})
	if len(related) > limit {
		related = related[:limit]
	}
	return related
}
