package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus(t *testing.T) {
	bus := NewBus()

	t.Run("DeliversToSubscribers", func(t *testing.T) {
		var got []Event
		bus.Subscribe(TypeEntryAdded, func(e Event) { got = append(got, e) })
		bus.Subscribe(TypeEntryAdded, func(e Event) { got = append(got, e) })

		bus.Publish(TypeEntryAdded, map[string]interface{}{"id": "123"})

		assert.Len(t, got, 2)
		assert.Equal(t, TypeEntryAdded, got[0].Type)
		assert.Equal(t, "123", got[0].Payload["id"])
		assert.NotEmpty(t, got[0].ID)
		assert.False(t, got[0].CreatedAt.IsZero())

		// Both handlers saw the same event instance.
		assert.Equal(t, got[0].ID, got[1].ID)
	})

	t.Run("IgnoresUnsubscribedTypes", func(t *testing.T) {
		called := false
		bus.Subscribe(TypeLogCleared, func(Event) { called = true })

		bus.Publish(TypeGoalRecalculated, nil)
		assert.False(t, called)
	})
}
