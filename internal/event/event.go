package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Domje/Arc-Looterputer/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	ShoppingListUpdated Type = domain.EventTypeShoppingListUpdated
)

// ShoppingListUpdatedPayloadV1 is the typed payload for shopping list updates
type ShoppingListUpdatedPayloadV1 struct {
	Action    string   `json:"action"`
	ItemKeys  []string `json:"item_keys,omitempty"`
	Count     int      `json:"count"`
	Timestamp int64    `json:"timestamp"`
}

// NewShoppingListUpdatedEvent creates a shopping list update event. count is
// the list length after the mutation.
func NewShoppingListUpdatedEvent(action string, itemKeys []string, count int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShoppingListUpdated,
		Payload: ShoppingListUpdatedPayloadV1{
			Action:    action,
			ItemKeys:  itemKeys,
			Count:     count,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type synchronously.
// All handlers run even when one fails; their errors are returned together.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
