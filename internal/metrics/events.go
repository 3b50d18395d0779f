package metrics

import (
	"context"

	"github.com/Domje/Arc-Looterputer/internal/event"
	"github.com/Domje/Arc-Looterputer/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	bus.Subscribe(event.ShoppingListUpdated, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ShoppingListUpdated:
		payload, err := event.DecodePayload[event.ShoppingListUpdatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ShoppingListMutations.WithLabelValues(payload.Action).Inc()
		ShoppingListSize.Set(float64(payload.Count))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
