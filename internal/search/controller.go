// Package search owns the canonical query state: the active filter
// criteria, the current page, and the round trips that turn them into
// result pages.
package search

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"carbitrage/internal/catalog"
	"carbitrage/internal/domain"
	"carbitrage/internal/eventbus"
	"carbitrage/internal/query"
)

// DefaultPageSize is used until the caller configures one
const DefaultPageSize = 12

// Controller holds the single authoritative copy of the search state.
// Every mutation publishes events and issues a fresh evaluation; a
// response is applied only if no newer request superseded it.
type Controller struct {
	client *catalog.Client
	bus    eventbus.EventBus

	mu       sync.Mutex
	criteria domain.FilterCriteria
	page     int
	pageSize int
	results  *domain.ResultPage
	cancel   context.CancelFunc

	seq atomic.Uint64
}

// NewController creates a controller with default paging
func NewController(client *catalog.Client, bus eventbus.EventBus) *Controller {
	return &Controller{
		client:   client,
		bus:      bus,
		page:     1,
		pageSize: DefaultPageSize,
	}
}

// Criteria returns a snapshot of the active criteria
func (c *Controller) Criteria() domain.FilterCriteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria.Clone()
}

// Page returns the current 1-based page number
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageSize returns the configured page size
func (c *Controller) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageSize
}

// Results returns the latest applied result page, or nil before the
// first search completes
func (c *Controller) Results() *domain.ResultPage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}

// SetPageSize reconfigures paging. Before the first search this only
// records the size; afterwards it re-evaluates from the first page.
func (c *Controller) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	c.mu.Lock()
	c.pageSize = size
	c.page = 1
	c.mu.Unlock()
	if c.seq.Load() > 0 {
		c.Search()
	}
}

// SetFilters replaces the criteria wholesale and resets to the first
// page. Changing what is being searched invalidates the position in the
// old result set.
func (c *Controller) SetFilters(criteria domain.FilterCriteria) {
	c.mu.Lock()
	c.criteria = criteria.Clone()
	c.page = 1
	snapshot := c.criteria.Clone()
	c.mu.Unlock()

	c.bus.Publish(eventbus.FiltersChangedEvent{Criteria: snapshot, Page: 1})
	c.Search()
}

// UpdateFilters merges a partial update into the criteria and resets to
// the first page
func (c *Controller) UpdateFilters(patch domain.FilterPatch) {
	c.mu.Lock()
	c.criteria = patch.Apply(c.criteria)
	c.page = 1
	snapshot := c.criteria.Clone()
	c.mu.Unlock()

	c.bus.Publish(eventbus.FiltersChangedEvent{Criteria: snapshot, Page: 1})
	c.Search()
}

// ClearFilters drops every constraint and returns to the default view
func (c *Controller) ClearFilters() {
	c.SetFilters(domain.FilterCriteria{})
}

// SetPage moves within the current result set without touching the
// criteria. Values below 1 clamp to 1.
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()

	c.bus.Publish(eventbus.PageChangedEvent{Page: page})
	c.Search()
}

// NextPage advances one page when one exists
func (c *Controller) NextPage() {
	c.mu.Lock()
	hasNext := c.results != nil && c.results.HasNextPage()
	page := c.page
	c.mu.Unlock()
	if hasNext {
		c.SetPage(page + 1)
	}
}

// PrevPage steps back one page when possible
func (c *Controller) PrevPage() {
	c.mu.Lock()
	page := c.page
	c.mu.Unlock()
	if page > 1 {
		c.SetPage(page - 1)
	}
}

// ApplyLink seeds the state from a deep-link query string. This is a
// one-way import at startup; the controller never writes a link back.
func (c *Controller) ApplyLink(link string) {
	criteria := query.ParseLink(link)
	if criteria.IsZero() {
		c.Search()
		return
	}
	c.SetFilters(criteria)
}

// Search issues an evaluation for the current state. The previous
// in-flight request, if any, is cancelled; its response would be
// discarded by the sequence check regardless.
func (c *Controller) Search() {
	seq := c.seq.Add(1)
	traceID := uuid.NewString()

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	criteria := c.criteria.Clone()
	page := c.page
	pageSize := c.pageSize
	c.mu.Unlock()

	c.bus.Publish(eventbus.SearchStartedEvent{
		Seq: seq, TraceID: traceID, Criteria: criteria, Page: page,
	})

	go func() {
		defer cancel()
		results, err := c.client.Search(ctx, criteria, page, pageSize)

		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			if seq != c.seq.Load() {
				slog.Debug("search: dropping stale failure", "trace_id", traceID, "seq", seq)
				return
			}
			slog.Warn("search: evaluation failed", "trace_id", traceID, "error", err)
			c.bus.Publish(eventbus.SearchFailedEvent{
				Seq: seq, TraceID: traceID,
				Message: "search failed, showing previous results",
				Err:     err,
			})
			return
		}

		// The staleness check has to share the lock with the write,
		// otherwise a newer response can be applied between the two.
		c.mu.Lock()
		if seq != c.seq.Load() {
			c.mu.Unlock()
			slog.Debug("search: dropping stale response", "trace_id", traceID, "seq", seq)
			return
		}
		c.results = &results
		c.mu.Unlock()

		slog.Debug("search: completed",
			"trace_id", traceID, "total", results.Total, "page", results.Page)
		c.bus.Publish(eventbus.SearchCompletedEvent{
			Seq: seq, TraceID: traceID, Criteria: criteria, Results: results,
		})
	}()
}
