package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Domje/Arc-Looterputer/internal/logger"
	"github.com/Domje/Arc-Looterputer/internal/metrics"
)

// Event is one message on an /events stream
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is one open stream. EventChannel is closed when the client is
// unregistered or the hub stops.
type Client struct {
	ID           string
	EventChannel chan Event

	types   map[string]struct{}
	dropped atomic.Int64
}

// Wants reports whether the client asked for eventType. A client without a
// type filter gets everything.
func (c *Client) Wants(eventType string) bool {
	if len(c.types) == 0 {
		return true
	}
	_, ok := c.types[eventType]
	return ok
}

// Dropped is the number of events skipped because the client fell behind.
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

// Hub fans shopping list events out to the connected streams. Clients are
// added and removed under the lock; delivery runs on a single goroutine
// fed by Broadcast.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	stopped bool

	events   chan Event
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewHub creates a hub. Call Start before broadcasting.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		events:  make(chan Event, BroadcastBufferSize),
		done:    make(chan struct{}),
	}
}

// Start runs the delivery loop.
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.deliverLoop()
}

// Stop ends delivery and closes every client channel. Calling it again is a
// no-op.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()

		h.mu.Lock()
		h.stopped = true
		for id, c := range h.clients {
			close(c.EventChannel)
			delete(h.clients, id)
		}
		h.mu.Unlock()
		metrics.SSEClients.Set(0)
	})
}

// Register adds a client that receives the given event types, or all types
// when none are given. On a stopped hub the returned channel is already
// closed.
func (h *Hub) Register(eventTypes []string) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		c.types = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			c.types[t] = struct{}{}
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(c.EventChannel)
		return c
	}
	h.clients[c.ID] = c
	metrics.SSEClients.Set(float64(len(h.clients)))
	return c
}

// Unregister removes a client and closes its channel. Unknown ids are
// ignored.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(c.EventChannel)
	delete(h.clients, clientID)
	metrics.SSEClients.Set(float64(len(h.clients)))
}

// Broadcast queues an event for every interested client. It never blocks;
// when the queue is full the event is dropped.
func (h *Hub) Broadcast(eventType string, payload any) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.events <- evt:
	default:
		metrics.SSEEventsDropped.WithLabelValues(eventType).Inc()
		logger.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) deliverLoop() {
	defer h.wg.Done()
	for {
		select {
		case evt := <-h.events:
			h.deliver(evt)
		case <-h.done:
			return
		}
	}
}

// deliver holds the read lock while sending so Unregister cannot close a
// channel mid-send.
func (h *Hub) deliver(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.Wants(evt.Type) {
			continue
		}
		select {
		case c.EventChannel <- evt:
		default:
			c.dropped.Add(1)
			metrics.SSEEventsDropped.WithLabelValues(evt.Type).Inc()
		}
	}
}

// FormatSSEMessage renders an event in text/event-stream framing. Events
// without an id omit the id line.
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if evt.ID != "" {
		fmt.Fprintf(&b, "id: %s\n", evt.ID)
	}
	fmt.Fprintf(&b, "event: %s\ndata: %s\n\n", evt.Type, data)
	return b.Bytes(), nil
}
