// Package events provides in-process pub/sub for store notifications.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types published by the hydration store.
const (
	TypeEntryAdded          = "entry_added"
	TypeEntryDeleted        = "entry_deleted"
	TypeGoalRecalculated    = "goal_recalculated"
	TypeOnboardingCompleted = "onboarding_completed"
	TypeLogCleared          = "log_cleared"
)

// Event represents a lightweight domain event.
type Event struct {
	ID        string
	Type      string
	Payload   map[string]interface{}
	CreatedAt time.Time
}

// Handler reacts to an event.
type Handler func(event Event)

// Bus provides in-process pub/sub for events.
type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a given event type.
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type. Handlers run synchronously;
// caller decides concurrency model.
func (b *Bus) Publish(eventType string, payload map[string]interface{}) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subscribers[eventType]...)
	b.mu.RUnlock()

	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	for _, handler := range handlers {
		handler(event)
	}
}
