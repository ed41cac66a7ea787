package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carbitrage/internal/domain"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := New()
	got := make(chan DomainEvent, 1)

	bus.Subscribe(EventPageChanged, func(e DomainEvent) {
		got <- e
	})
	bus.Publish(PageChangedEvent{Page: 3})

	select {
	case e := <-got:
		ev, ok := e.(PageChangedEvent)
		assert.True(t, ok)
		assert.Equal(t, 3, ev.Page)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestSubscribersAreTypeScoped(t *testing.T) {
	bus := New()
	got := make(chan DomainEvent, 4)

	bus.Subscribe(EventSearchCompleted, func(e DomainEvent) {
		got <- e
	})
	bus.Publish(PageChangedEvent{Page: 1})
	bus.Publish(FiltersChangedEvent{})

	select {
	case e := <-got:
		t.Fatalf("unexpected event %v", e.Type())
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	got := make(chan DomainEvent, 4)

	unsub := bus.Subscribe(EventPageChanged, func(e DomainEvent) {
		got <- e
	})
	unsub()
	bus.Publish(PageChangedEvent{Page: 1})

	select {
	case <-got:
		t.Fatal("received event after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotKillDispatch(t *testing.T) {
	bus := New()
	got := make(chan DomainEvent, 1)

	bus.Subscribe(EventError, func(DomainEvent) {
		panic("handler blew up")
	})
	bus.Subscribe(EventError, func(e DomainEvent) {
		got <- e
	})
	bus.Publish(ErrorEvent{Message: "boom"})

	select {
	case e := <-got:
		assert.Equal(t, domain.EventError, e.Type())
	case <-time.After(2 * time.Second):
		t.Fatal("surviving handler never ran")
	}
}
