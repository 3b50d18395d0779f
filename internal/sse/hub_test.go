package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/event"
	"github.com/Domje/Arc-Looterputer/internal/testing/leaktest"
)

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n },
		time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt := <-c.EventChannel:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastAndFilter(t *testing.T) {
	leaktest.Check(t)

	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	filtered := hub.Register([]string{"something-else"})
	waitForClients(t, hub, 2)

	hub.Broadcast(EventTypeShoppingListUpdated, ShoppingListPayload{Action: domain.ListActionAdded, Count: 1})

	evt := receive(t, all)
	assert.Equal(t, EventTypeShoppingListUpdated, evt.Type)
	assert.NotEmpty(t, evt.ID)

	select {
	case evt := <-filtered.EventChannel:
		t.Fatalf("filtered client received %s", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	leaktest.Check(t)

	hub := NewHub()
	hub.Start()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(client.ID)
	waitForClients(t, hub, 0)

	_, ok := <-client.EventChannel
	assert.False(t, ok)

	hub.Stop()
}

func TestHub_StopClosesClients(t *testing.T) {
	leaktest.Check(t)

	hub := NewHub()
	hub.Start()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Stop()

	_, ok := <-client.EventChannel
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_SlowClientDropsInsteadOfBlocking(t *testing.T) {
	leaktest.Check(t)

	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	slow := hub.Register(nil)
	other := hub.Register([]string{"something-else"})
	waitForClients(t, hub, 2)

	for range ClientEventBuffer + 5 {
		hub.Broadcast(EventTypeShoppingListUpdated, ShoppingListPayload{Action: domain.ListActionAdded})
	}

	require.Eventually(t, func() bool { return slow.Dropped() == 5 }, time.Second, 5*time.Millisecond)
	assert.Len(t, slow.EventChannel, ClientEventBuffer)
	assert.Zero(t, other.Dropped())
	assert.Empty(t, other.EventChannel)
}

func TestHub_RegisterAfterStop(t *testing.T) {
	leaktest.Check(t)

	hub := NewHub()
	hub.Start()
	hub.Stop()
	hub.Stop()

	client := hub.Register(nil)
	_, ok := <-client.EventChannel
	assert.False(t, ok)
	assert.Zero(t, hub.ClientCount())

	hub.Unregister(client.ID)
}

func TestClient_Wants(t *testing.T) {
	hub := NewHub()

	all := hub.Register(nil)
	assert.True(t, all.Wants(EventTypeShoppingListUpdated))
	assert.True(t, all.Wants(EventTypeKeepalive))

	listOnly := hub.Register([]string{EventTypeShoppingListUpdated})
	assert.True(t, listOnly.Wants(EventTypeShoppingListUpdated))
	assert.False(t, listOnly.Wants(EventTypeKeepalive))
}

func TestSubscriber_BridgesShoppingListEvents(t *testing.T) {
	leaktest.Check(t)

	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register([]string{EventTypeShoppingListUpdated})
	waitForClients(t, hub, 1)

	err := bus.Publish(context.Background(),
		event.NewShoppingListUpdatedEvent(domain.ListActionRemoved, []string{"battery"}, 3))
	require.NoError(t, err)

	evt := receive(t, client)
	payload, ok := evt.Payload.(ShoppingListPayload)
	require.True(t, ok)
	assert.Equal(t, ShoppingListPayload{Action: domain.ListActionRemoved, ItemKeys: []string{"battery"}, Count: 3}, payload)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: EventTypeKeepalive, Timestamp: 1})
	require.NoError(t, err)

	lines := strings.Split(string(msg), "\n")
	assert.Equal(t, "id: abc", lines[0])
	assert.Equal(t, "event: keepalive", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "data: {"))
	assert.True(t, strings.HasSuffix(string(msg), "\n\n"))

	noID, err := FormatSSEMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(noID), "event: keepalive\n"))
}
