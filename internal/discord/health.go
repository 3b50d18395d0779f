package discord

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
	SSEConnected     bool       `json:"sse_connected"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandNano atomic.Int64
)

// RecordCommand counts a handled slash command
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandNano.Store(time.Now().UnixNano())
}

// HandleHealth reports gateway and API connectivity. Degraded answers use 503.
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	connected := h.bot.Session != nil && h.bot.Session.DataReady
	apiReachable := h.bot.Client != nil && h.bot.Client.Healthy(ctx)

	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		APIReachable:     apiReachable,
		SSEConnected:     h.bot.SSE != nil && h.bot.SSE.IsConnected(),
	}
	if nano := lastCommandNano.Load(); nano > 0 {
		last := time.Unix(0, nano)
		health.LastCommandTime = &last
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Warn("Failed to encode health response", "error", err)
	}
}
