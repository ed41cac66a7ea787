package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"carbitrage/internal/domain"
	"carbitrage/internal/query"
)

// ErrUpstreamUnavailable simulates the catalog backend rejecting a
// request. The previous result page stays valid for display.
var ErrUpstreamUnavailable = errors.New("catalog upstream unavailable")

// Round-trip latencies for the simulated backend
const (
	searchLatency  = 500 * time.Millisecond
	detailLatency  = 300 * time.Millisecond
	suggestLatency = 200 * time.Millisecond
)

// Client is the async facade over the catalog store. It behaves like a
// remote listing service: every call costs a round trip and can be
// cancelled through its context.
type Client struct {
	store *Store

	mu      sync.Mutex
	failing bool
	latency bool
}

// NewClient creates a client over the given store with latency
// simulation enabled
func NewClient(store *Store) *Client {
	return &Client{store: store, latency: true}
}

// NewInstantClient creates a client without simulated latency, for tests
func NewInstantClient(store *Store) *Client {
	return &Client{store: store}
}

// SetFailing toggles simulated upstream failure for search calls
func (c *Client) SetFailing(failing bool) {
	c.mu.Lock()
	c.failing = failing
	c.mu.Unlock()
}

func (c *Client) isFailing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failing
}

// wait simulates one network round trip, honoring cancellation
func (c *Client) wait(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	simulate := c.latency
	c.mu.Unlock()
	if !simulate {
		if err := ctx.Err(); err != nil {
			return err
		}
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Search evaluates criteria against the catalog and returns one page
func (c *Client) Search(ctx context.Context, criteria domain.FilterCriteria, page, pageSize int) (domain.ResultPage, error) {
	if err := c.wait(ctx, searchLatency); err != nil {
		return domain.ResultPage{}, err
	}
	if c.isFailing() {
		return domain.ResultPage{}, ErrUpstreamUnavailable
	}
	return query.Evaluate(c.store.All(), criteria, page, pageSize)
}

// VehicleByID fetches one record. The bool reports existence; a missing
// id is not an error.
func (c *Client) VehicleByID(ctx context.Context, id string) (domain.Vehicle, bool, error) {
	if err := c.wait(ctx, detailLatency); err != nil {
		return domain.Vehicle{}, false, err
	}
	v, ok := c.store.Get(id)
	return v, ok, nil
}

// Featured returns the highest-scored records for the home screen
func (c *Client) Featured(ctx context.Context, limit int) ([]domain.Vehicle, error) {
	if err := c.wait(ctx, detailLatency); err != nil {
		return nil, err
	}
	return c.store.Featured(limit), nil
}

// Similar returns records related to the given one
func (c *Client) Similar(ctx context.Context, id string, limit int) ([]domain.Vehicle, error) {
	if err := c.wait(ctx, detailLatency); err != nil {
		return nil, err
	}
	return c.store.Similar(id, limit), nil
}
