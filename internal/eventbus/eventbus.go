package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"carbitrage/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchStarted         = domain.EventSearchStarted
	EventSearchCompleted       = domain.EventSearchCompleted
	EventSearchFailed          = domain.EventSearchFailed
	EventFiltersChanged        = domain.EventFiltersChanged
	EventPageChanged           = domain.EventPageChanged
	EventSuggestionsReady      = domain.EventSuggestionsReady
	EventVehicleLoaded         = domain.EventVehicleLoaded
	EventVehicleNotFound       = domain.EventVehicleNotFound
	EventSimilarLoaded         = domain.EventSimilarLoaded
	EventFeaturedLoaded        = domain.EventFeaturedLoaded
	EventFavoriteToggled       = domain.EventFavoriteToggled
	EventRecentSearchesChanged = domain.EventRecentSearchesChanged
	EventConfigLoaded          = domain.EventConfigLoaded
	EventConfigSaved           = domain.EventConfigSaved
	EventError                 = domain.EventError
)

// Re-export domain event types
type SearchStartedEvent = domain.SearchStartedEvent
type SearchCompletedEvent = domain.SearchCompletedEvent
type SearchFailedEvent = domain.SearchFailedEvent
type FiltersChangedEvent = domain.FiltersChangedEvent
type PageChangedEvent = domain.PageChangedEvent
type SuggestionsReadyEvent = domain.SuggestionsReadyEvent
type VehicleLoadedEvent = domain.VehicleLoadedEvent
type VehicleNotFoundEvent = domain.VehicleNotFoundEvent
type SimilarLoadedEvent = domain.SimilarLoadedEvent
type FeaturedLoadedEvent = domain.FeaturedLoadedEvent
type FavoriteToggledEvent = domain.FavoriteToggledEvent
type RecentSearchesChangedEvent = domain.RecentSearchesChangedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// registration pairs a handler with an id so Subscribe can hand back a
// working unsubscribe func
type registration struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]registration
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]registration),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventSuggestionsReady:
		// Don't log suggestion traffic, it fires per keystroke
	default:
		slog.Debug("eventbus: publishing", "event", event.Type())
	}

	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		// Channel full, log and drop
		slog.Warn("eventbus: channel full, dropping event", "event", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		regs := b.handlers[eventType]
		for i, r := range regs {
			if r.id == id {
				b.handlers[eventType] = append(regs[:i], regs[i+1:]...)
				break
			}
		}
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			regs := b.handlers[event.Type()]
			// Make a copy to avoid holding lock during handler execution
			regsCopy := make([]registration, len(regs))
			copy(regsCopy, regs)
			b.mu.RUnlock()

			for _, reg := range regsCopy {
				// Call handler in a goroutine to avoid blocking
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							slog.Error("eventbus: handler panic",
								"event", eventType, "panic", r, "stack", string(debug.Stack()))
						}
					}()
					h(event)
				}(reg.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
					// Discard event
				default:
					return
				}
			}
		}
	}
}
