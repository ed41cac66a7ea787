package ui

import (
	"carbitrage/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// debounceMsg fires after the suggestion debounce interval. Input carries
// the text that was in the box when the timer was armed; Seq pairs the
// message with the latest keystroke so earlier timers are ignored.
type debounceMsg struct {
	Seq   uint64
	Input string
}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}
