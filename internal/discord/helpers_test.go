package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper implements http.RoundTripper for intercepting Discord calls
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a fake Looterputer API and a Discord session whose
// HTTP calls are captured instead of sent.
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	edits     []discordgo.WebhookEdit
	responses []discordgo.InteractionResponse
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: NewAPIClient(server.URL, "test-api-key"),
		Session:   session,
	}

	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			ctx.capture(req)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	return ctx
}

func (c *TestContext) capture(req *http.Request) {
	if req.Body == nil {
		return
	}
	body, _ := io.ReadAll(req.Body)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch req.Method {
	case http.MethodPatch:
		var edit discordgo.WebhookEdit
		if json.Unmarshal(body, &edit) == nil {
			c.edits = append(c.edits, edit)
		}
	case http.MethodPost:
		var resp discordgo.InteractionResponse
		if json.Unmarshal(body, &resp) == nil {
			c.responses = append(c.responses, resp)
		}
	}
}

// LastEmbed returns the first embed of the last response edit, or nil
func (c *TestContext) LastEmbed() *discordgo.MessageEmbed {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.edits) - 1; i >= 0; i-- {
		if e := c.edits[i].Embeds; e != nil && len(*e) > 0 {
			return (*e)[0]
		}
	}
	return nil
}

// LastContent returns the text of the last response edit
func (c *TestContext) LastContent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.edits) - 1; i >= 0; i-- {
		if c.edits[i].Content != nil {
			return *c.edits[i].Content
		}
	}
	return ""
}

// LastResponse returns the last interaction callback body
func (c *TestContext) LastResponse() *discordgo.InteractionResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.responses) == 0 {
		return nil
	}
	return &c.responses[len(c.responses)-1]
}

// WriteJSON writes data as a JSON 200 answer
func WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// WriteAPIError writes an API error body with the given status
func WriteAPIError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func subCommand(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: opts,
	}
}

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:     "interaction-id",
			AppID:  "app-id",
			Token:  "interaction-token",
			Type:   discordgo.InteractionApplicationCommand,
			Locale: discordgo.EnglishUS,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user", Username: "Tester"},
			},
		},
	}
}

func autocompleteInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	i := commandInteraction(name, opts...)
	i.Type = discordgo.InteractionApplicationCommandAutocomplete
	return i
}
