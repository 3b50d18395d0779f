package sse

import (
	"context"

	"github.com/Domje/Arc-Looterputer/internal/event"
	"github.com/Domje/Arc-Looterputer/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.ShoppingListUpdated, s.handleShoppingListUpdated)

	logger.Info(LogMsgSubscribed, "types", []string{string(event.ShoppingListUpdated)})
}

func (s *Subscriber) handleShoppingListUpdated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ShoppingListUpdatedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeShoppingListUpdated, ShoppingListPayload{
		Action:   payload.Action,
		ItemKeys: payload.ItemKeys,
		Count:    payload.Count,
	})

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast,
		"event_type", EventTypeShoppingListUpdated,
		"action", payload.Action,
		"count", payload.Count)
	return nil
}
