package discord

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Domje/Arc-Looterputer/internal/sse"
)

// SSEEvent is one event read from the API's event stream
type SSEEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// SSEEventHandler handles a specific event type
type SSEEventHandler func(event SSEEvent) error

// SSEClient follows the API's /events stream and reconnects with
// exponential backoff when it drops.
type SSEClient struct {
	baseURL    string
	apiKey     string
	eventTypes []string
	httpClient *http.Client

	mu        sync.RWMutex
	handlers  map[string][]SSEEventHandler
	connected bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSSEClient creates a new SSE client. An empty eventTypes receives every
// event type.
func NewSSEClient(baseURL, apiKey string, eventTypes []string) *SSEClient {
	return &SSEClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		eventTypes: eventTypes,
		handlers:   make(map[string][]SSEEventHandler),
		// no timeout: the stream stays open
		httpClient: &http.Client{},
	}
}

// OnEvent registers a handler for a specific event type
func (c *SSEClient) OnEvent(eventType string, handler SSEEventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[eventType] = append(c.handlers[eventType], handler)
}

// Start connects in the background until ctx ends or Stop is called
func (c *SSEClient) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	c.wg.Add(1)
	go c.connectLoop(ctx)
}

// Stop closes the stream and waits for the reader to exit
func (c *SSEClient) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
}

// IsConnected reports whether the stream is currently open
func (c *SSEClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *SSEClient) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

func (c *SSEClient) connectLoop(ctx context.Context) {
	defer c.wg.Done()
	defer slog.Info(sseLogMsgClientStopped)

	backoff := sseInitialBackoff
	failures := 0

	for ctx.Err() == nil {
		err := c.connect(ctx)
		c.setConnected(false)
		if ctx.Err() != nil {
			return
		}

		if err == nil || errors.Is(err, errStreamHealthy) {
			backoff = sseInitialBackoff
			failures = 0
		} else {
			failures++
		}

		slog.Warn(sseLogMsgConnectionFailed,
			"error", err,
			"backoff", backoff,
			"consecutive_failures", failures)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
		if failures > 0 {
			backoff = min(time.Duration(float64(backoff)*sseBackoffMultiplier), sseMaxBackoff)
		}
	}
}

// errStreamHealthy marks a stream that delivered events before closing; the
// next attempt starts from the initial backoff.
var errStreamHealthy = errors.New("stream closed after delivering events")

func (c *SSEClient) connect(ctx context.Context) error {
	target := c.baseURL + apiPrefix + "/events"
	if len(c.eventTypes) > 0 {
		target += "?types=" + url.QueryEscape(strings.Join(c.eventTypes, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	c.setConnected(true)
	slog.Info(sseLogMsgClientConnected, "url", target)

	return c.readEvents(resp.Body)
}

// readEvents parses the stream until it ends. Events are separated by a
// blank line; multi-line data fields are joined with newlines.
func (c *SSEClient) readEvents(body io.Reader) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, sseBufferSize), sseBufferSize)

	var id, eventType string
	var data []string
	delivered := false

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			if len(data) > 0 {
				c.dispatchEvent(id, eventType, strings.Join(data, "\n"))
				delivered = true
			}
			id, eventType, data = "", "", nil
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "id":
			id = value
		case "event":
			eventType = value
		case "data":
			data = append(data, value)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream: %w", err)
	}
	if delivered {
		return errStreamHealthy
	}
	return errors.New("stream closed unexpectedly")
}

func (c *SSEClient) dispatchEvent(id, eventType, data string) {
	if eventType == sse.EventTypeKeepalive || eventType == sse.EventTypeConnected {
		return
	}

	var event SSEEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "data", data)
		return
	}
	if eventType != "" {
		event.Type = eventType
	}
	if id != "" {
		event.ID = id
	}

	c.mu.RLock()
	handlers := c.handlers[event.Type]
	c.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(event); err != nil {
			slog.Error(sseLogMsgHandlerError, "event_type", event.Type, "error", err)
		}
	}
}
