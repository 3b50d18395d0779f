package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Domje/Arc-Looterputer/internal/handler"
	"github.com/Domje/Arc-Looterputer/internal/info"
)

const (
	apiPrefix         = "/api/v1"
	apiTimeout        = 10 * time.Second
	apiMaxRetries     = 3
	apiRetryBaseDelay = 500 * time.Millisecond
)

// APIError is a non-2xx answer from the Looterputer API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.StatusCode)
	}
	return "API error: " + e.Message
}

// APIClient talks to the Looterputer HTTP API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: apiTimeout,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx
// answers with exponential backoff.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + apiPrefix + path

	var lastErr error
	for attempt := 0; attempt <= apiMaxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(rand.IntN(100)) * time.Millisecond
			delay := apiRetryBaseDelay*time.Duration(1<<(attempt-1)) + jitter
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		lastErr = readAPIError(resp)
		resp.Body.Close()
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call runs a request and decodes a 2xx JSON body into out (when non-nil).
func (c *APIClient) call(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var errResp handler.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&errResp); err == nil {
		apiErr.Message = errResp.Error
	}
	return apiErr
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func withLang(path, lang string) string {
	if lang == "" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "lang=" + url.QueryEscape(lang)
}

// SearchItems runs a catalog search
func (c *APIClient) SearchItems(ctx context.Context, query, lang string) (*handler.ItemSearchResponse, error) {
	var out handler.ItemSearchResponse
	path := withLang("/items?q="+url.QueryEscape(query), lang)
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetItem returns one item with its recipe, upgrade and recycle lists
func (c *APIClient) GetItem(ctx context.Context, id, lang string) (*handler.ItemDetail, error) {
	var out handler.ItemDetail
	path := withLang("/items/"+url.PathEscape(id), lang)
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListModules returns every hideout station
func (c *APIClient) ListModules(ctx context.Context, lang string) ([]handler.ModuleView, error) {
	var out []handler.ModuleView
	if err := c.call(ctx, http.MethodGet, withLang("/hideout", lang), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetModule returns a station with its upgrade levels
func (c *APIClient) GetModule(ctx context.Context, id, lang string) (*handler.ModuleView, error) {
	var out handler.ModuleView
	path := withLang("/hideout/"+url.PathEscape(id), lang)
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLevel returns the requirements of one station level
func (c *APIClient) GetLevel(ctx context.Context, id string, level int, lang string) (*handler.LevelView, error) {
	var out handler.LevelView
	path := withLang("/hideout/"+url.PathEscape(id)+"/levels/"+strconv.Itoa(level), lang)
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCraftables lists the items crafted at a station
func (c *APIClient) GetCraftables(ctx context.Context, id, lang string) ([]handler.ItemView, error) {
	var out []handler.ItemView
	path := withLang("/hideout/"+url.PathEscape(id)+"/craftables", lang)
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetShoppingList returns the current shopping list
func (c *APIClient) GetShoppingList(ctx context.Context, lang string) (*handler.ShoppingListResponse, error) {
	var out handler.ShoppingListResponse
	if err := c.call(ctx, http.MethodGet, withLang("/shopping-list", lang), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddToShoppingList adds one item by ID
func (c *APIClient) AddToShoppingList(ctx context.Context, itemID string) (*handler.AddItemResponse, error) {
	var out handler.AddItemResponse
	req := handler.AddItemRequest{ItemID: itemID}
	if err := c.call(ctx, http.MethodPost, "/shopping-list", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFromShoppingList removes one item by key
func (c *APIClient) RemoveFromShoppingList(ctx context.Context, key string) error {
	return c.call(ctx, http.MethodDelete, "/shopping-list/"+url.PathEscape(key), nil, nil)
}

// ClearShoppingList empties the list
func (c *APIClient) ClearShoppingList(ctx context.Context) error {
	return c.call(ctx, http.MethodDelete, "/shopping-list", nil, nil)
}

// AddRecipe puts the ingredients of an item's recipe on the list
func (c *APIClient) AddRecipe(ctx context.Context, itemID string) (*handler.MaterialsResponse, error) {
	var out handler.MaterialsResponse
	req := handler.AddRecipeRequest{ItemID: itemID}
	if err := c.call(ctx, http.MethodPost, "/shopping-list/recipe", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddUpgrade puts the items required by a station level on the list
func (c *APIClient) AddUpgrade(ctx context.Context, moduleID string, level int) (*handler.MaterialsResponse, error) {
	var out handler.MaterialsResponse
	req := handler.AddUpgradeRequest{ModuleID: moduleID, Level: level}
	if err := c.call(ctx, http.MethodPost, "/shopping-list/upgrade", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInfo returns help text for the discord platform
func (c *APIClient) GetInfo(ctx context.Context, feature string) (*handler.InfoResponse, error) {
	params := url.Values{}
	params.Set("platform", info.PlatformDiscord)
	if feature != "" {
		params.Set("feature", feature)
	}
	var out handler.InfoResponse
	if err := c.call(ctx, http.MethodGet, "/info?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
