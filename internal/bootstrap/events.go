package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/Domje/Arc-Looterputer/internal/event"
	"github.com/Domje/Arc-Looterputer/internal/metrics"
	"github.com/Domje/Arc-Looterputer/internal/sse"
)

// InitializeEventSystem creates the event bus and attaches the subscribers:
// event metrics and, when hub is not nil, the SSE bridge.
func InitializeEventSystem(hub *sse.Hub) (event.Bus, error) {
	bus := event.NewMemoryBus()

	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Debug(LogMsgMetricsCollectorRegistered)

	if hub != nil {
		sse.NewSubscriber(hub, bus).Subscribe()
	}

	slog.Info(LogMsgEventSystemInitialized, "sse", hub != nil)
	return bus, nil
}
