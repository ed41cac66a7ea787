package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbitrage/internal/catalog"
	"carbitrage/internal/domain"
	"carbitrage/internal/eventbus"
)

const eventTimeout = 2 * time.Second

func ids(vehicles []domain.Vehicle) []string {
	out := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, v.ID)
	}
	return out
}

type harness struct {
	bus        eventbus.EventBus
	client     *catalog.Client
	controller *Controller
	completed  chan eventbus.SearchCompletedEvent
	failed     chan eventbus.SearchFailedEvent
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	bus := eventbus.New()
	client := catalog.NewInstantClient(catalog.NewSampleStore())

	h := &harness{
		bus:        bus,
		client:     client,
		controller: NewController(client, bus),
		completed:  make(chan eventbus.SearchCompletedEvent, 16),
		failed:     make(chan eventbus.SearchFailedEvent, 16),
	}
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchCompletedEvent); ok {
			h.completed <- ev
		}
	})
	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchFailedEvent); ok {
			h.failed <- ev
		}
	})
	return h
}

// waitCompleted blocks until a completion with at least the given seq arrives
func (h *harness) waitCompleted(t *testing.T, minSeq uint64) eventbus.SearchCompletedEvent {
	t.Helper()
	deadline := time.After(eventTimeout)
	for {
		select {
		case ev := <-h.completed:
			if ev.Seq >= minSeq {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for search completion seq >= %d", minSeq)
		}
	}
}

func TestSetFiltersResetsToFirstPage(t *testing.T) {
	h := newHarness(t)
	h.controller.SetPageSize(2)

	h.controller.SetPage(2)
	h.waitCompleted(t, 1)
	require.Equal(t, 2, h.controller.Page())

	h.controller.SetFilters(domain.FilterCriteria{BodyTypes: []string{"sedan"}})
	ev := h.waitCompleted(t, 2)

	assert.Equal(t, 1, h.controller.Page())
	assert.Equal(t, 1, ev.Results.Page)
	assert.Equal(t, []string{"sedan"}, ev.Criteria.BodyTypes)
}

func TestUpdateFiltersMergesAndResetsPage(t *testing.T) {
	h := newHarness(t)
	h.controller.SetFilters(domain.FilterCriteria{Makes: []string{"Toyota"}, PriceMax: 40000})
	h.waitCompleted(t, 1)

	priceMax := 30000
	h.controller.UpdateFilters(domain.FilterPatch{PriceMax: &priceMax})
	h.waitCompleted(t, 2)

	c := h.controller.Criteria()
	assert.Equal(t, []string{"Toyota"}, c.Makes, "untouched dimension survives the patch")
	assert.Equal(t, 30000, c.PriceMax)
	assert.Equal(t, 1, h.controller.Page())
}

func TestRepeatedPatchIsIdempotent(t *testing.T) {
	h := newHarness(t)
	q := "toyota camry"

	h.controller.UpdateFilters(domain.FilterPatch{Query: &q})
	h.waitCompleted(t, 1)
	first := h.controller.Criteria()

	h.controller.UpdateFilters(domain.FilterPatch{Query: &q})
	h.waitCompleted(t, 2)

	assert.Equal(t, first, h.controller.Criteria())
	assert.Equal(t, 1, h.controller.Page())
}

func TestUpdateFiltersClearsWithZeroPointer(t *testing.T) {
	h := newHarness(t)
	h.controller.SetFilters(domain.FilterCriteria{Makes: []string{"Toyota"}})
	h.waitCompleted(t, 1)

	empty := []string{}
	h.controller.UpdateFilters(domain.FilterPatch{Makes: &empty})
	h.waitCompleted(t, 2)

	assert.Empty(t, h.controller.Criteria().Makes)
}

func TestClearFiltersDropsEverything(t *testing.T) {
	h := newHarness(t)
	h.controller.SetFilters(domain.FilterCriteria{
		Query: "camry", Makes: []string{"Toyota"}, PriceMax: 30000,
	})
	h.waitCompleted(t, 1)

	h.controller.ClearFilters()
	ev := h.waitCompleted(t, 2)

	assert.True(t, h.controller.Criteria().IsZero())
	assert.Equal(t, 5, ev.Results.Total)
	assert.Equal(t, 1, h.controller.Page())
}

func TestSetPageKeepsCriteria(t *testing.T) {
	h := newHarness(t)
	h.controller.SetPageSize(2)
	h.controller.SetFilters(domain.FilterCriteria{Conditions: []string{"used"}})
	h.waitCompleted(t, 1)

	h.controller.SetPage(3)
	ev := h.waitCompleted(t, 2)

	assert.Equal(t, []string{"used"}, h.controller.Criteria().Conditions)
	assert.Equal(t, 3, h.controller.Page())
	assert.Equal(t, 3, ev.Results.Page)
	// All five records are used, so page 3 of 2 holds the last one
	require.Len(t, ev.Results.Vehicles, 1)
	assert.Equal(t, "5", ev.Results.Vehicles[0].ID)
	assert.Equal(t, 5, ev.Results.Total)

	// A page past the end is empty with intact totals
	h.controller.SetPage(99)
	ev = h.waitCompleted(t, 3)
	assert.Empty(t, ev.Results.Vehicles)
	assert.Equal(t, 5, ev.Results.Total)
	assert.Equal(t, 3, ev.Results.TotalPages)
}

func TestRapidMutationsSettleOnLatest(t *testing.T) {
	h := newHarness(t)

	h.controller.SetFilters(domain.FilterCriteria{Query: "camry"})
	h.controller.SetFilters(domain.FilterCriteria{Query: "tesla"})
	h.controller.SetFilters(domain.FilterCriteria{Query: "bmw"})
	h.waitCompleted(t, 3)

	// Whatever order responses landed in, the applied result is the last request's
	results := h.controller.Results()
	require.NotNil(t, results)
	require.Len(t, results.Vehicles, 1)
	assert.Equal(t, "BMW", results.Vehicles[0].Make)
	assert.Equal(t, "bmw", h.controller.Criteria().Query)
}

func TestOnlyLatestResponseIsApplied(t *testing.T) {
	h := newHarness(t)

	queries := []string{"toyota", "honda", "ford", "tesla", "bmw"}
	done := make(chan struct{})
	for _, q := range queries {
		go func(q string) {
			h.controller.SetFilters(domain.FilterCriteria{Query: q})
			done <- struct{}{}
		}(q)
	}
	for range queries {
		<-done
	}

	// Whichever request got the highest sequence number must be the one
	// whose results stick, however the responses interleave.
	latest := h.waitCompleted(t, uint64(len(queries)))
	results := h.controller.Results()
	require.NotNil(t, results)
	assert.Equal(t, ids(latest.Results.Vehicles), ids(results.Vehicles))
	assert.Equal(t, latest.Results.Total, results.Total)
}

func TestUpstreamFailureKeepsPreviousResults(t *testing.T) {
	h := newHarness(t)
	h.controller.SetFilters(domain.FilterCriteria{Query: "camry"})
	h.waitCompleted(t, 1)
	before := h.controller.Results()
	require.NotNil(t, before)

	h.client.SetFailing(true)
	h.controller.Search()

	select {
	case ev := <-h.failed:
		assert.NotEmpty(t, ev.Message)
		assert.ErrorIs(t, ev.Err, catalog.ErrUpstreamUnavailable)
	case <-time.After(eventTimeout):
		t.Fatal("timed out waiting for search failure")
	}

	assert.Equal(t, before, h.controller.Results(), "failed round trip must not clobber results")
}

func TestApplyLinkSeedsCriteria(t *testing.T) {
	h := newHarness(t)
	h.controller.ApplyLink("q=camry&priceMax=30000")
	ev := h.waitCompleted(t, 1)

	c := h.controller.Criteria()
	assert.Equal(t, "camry", c.Query)
	assert.Equal(t, 30000, c.PriceMax)
	assert.Equal(t, 1, h.controller.Page())
	require.Len(t, ev.Results.Vehicles, 1)
	assert.Equal(t, "Camry", ev.Results.Vehicles[0].Model)
}

func TestApplyLinkWithEmptyLinkStillSearches(t *testing.T) {
	h := newHarness(t)
	h.controller.ApplyLink("")
	ev := h.waitCompleted(t, 1)

	assert.True(t, h.controller.Criteria().IsZero())
	assert.Equal(t, 5, ev.Results.Total)
}

func TestCriteriaSnapshotIsIsolated(t *testing.T) {
	h := newHarness(t)
	h.controller.SetFilters(domain.FilterCriteria{Makes: []string{"Toyota"}})
	h.waitCompleted(t, 1)

	snap := h.controller.Criteria()
	snap.Makes[0] = "Mutated"

	assert.Equal(t, []string{"Toyota"}, h.controller.Criteria().Makes)
}
