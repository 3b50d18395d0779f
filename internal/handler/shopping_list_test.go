package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListHandlers_Lifecycle(t *testing.T) {
	env := newTestEnv(t)

	get := func() ShoppingListResponse {
		w := serve(HandleGetShoppingList(env.list, env.translator), httptest.NewRequest(http.MethodGet, "/shopping-list", nil))
		require.Equal(t, http.StatusOK, w.Code)
		return decode[ShoppingListResponse](t, w)
	}

	empty := get()
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.TotalValue)
	assert.NotEmpty(t, empty.Summary)

	add := HandleAddToShoppingList(env.list)
	w := serve(add, httptest.NewRequest(http.MethodPost, "/shopping-list", jsonBody(t, AddItemRequest{ItemID: "scrap"})))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode[AddItemResponse](t, w).Added)

	w = serve(add, httptest.NewRequest(http.MethodPost, "/shopping-list", jsonBody(t, AddItemRequest{ItemID: "scrap"})))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MsgItemAlreadyPresent, decode[AddItemResponse](t, w).Message)

	list := get()
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Scrap", list.Items[0].Name)
	assert.Empty(t, list.Summary)

	req := withURLParams(httptest.NewRequest(http.MethodDelete, "/shopping-list/scrap", nil), "key", "scrap")
	w = serve(HandleRemoveFromShoppingList(env.list), req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, get().Count)
}

func TestHandleGetShoppingList_TotalValue(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, id := range []string{"scrap", "anvil", "metal_parts"} {
		_, err := env.list.AddByID(ctx, id)
		require.NoError(t, err)
	}

	w := serve(HandleGetShoppingList(env.list, env.translator), httptest.NewRequest(http.MethodGet, "/shopping-list", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_value":85`)

	list := decode[ShoppingListResponse](t, w)
	assert.Equal(t, 3, list.Count)
	assert.InDelta(t, 85.0, list.TotalValue, 1e-9)
}

func TestHandleAddToShoppingList_Errors(t *testing.T) {
	env := newTestEnv(t)
	handler := HandleAddToShoppingList(env.list)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"malformed json", `{"item_id":`, http.StatusBadRequest, ErrMsgInvalidRequest},
		{"missing item id", `{}`, http.StatusBadRequest, "This field is required"},
		{"unknown item", `{"item_id":"ghost"}`, http.StatusNotFound, ErrMsgItemNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(handler, httptest.NewRequest(http.MethodPost, "/shopping-list", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleAddRecipe(t *testing.T) {
	env := newTestEnv(t)
	handler := HandleAddRecipe(env.list)

	w := serve(handler, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, AddRecipeRequest{ItemID: "anvil"})))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"metal_parts"}, decode[MaterialsResponse](t, w).Added)

	// Everything already present
	w = serve(handler, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, AddRecipeRequest{ItemID: "anvil"})))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{}, decode[MaterialsResponse](t, w).Added)

	w = serve(handler, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, AddRecipeRequest{ItemID: "scrap"})))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgNoRecipeError)
}

func TestHandleAddUpgrade(t *testing.T) {
	env := newTestEnv(t)
	handler := HandleAddUpgrade(env.list)

	w := serve(handler, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, AddUpgradeRequest{ModuleID: "gunsmith", Level: 1})))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"metal_parts"}, decode[MaterialsResponse](t, w).Added)

	w = serve(handler, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, AddUpgradeRequest{ModuleID: "gunsmith", Level: 0})))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(handler, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, AddUpgradeRequest{ModuleID: "gunsmith", Level: 4})))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgLevelNotFoundError)
}

func TestHandleClearShoppingList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.list.AddByID(ctx, "scrap")
	require.NoError(t, err)

	w := serve(HandleClearShoppingList(env.list), httptest.NewRequest(http.MethodDelete, "/shopping-list", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	list, err := env.list.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
