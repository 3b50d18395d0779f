package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSearchItems(t *testing.T) {
	env := newTestEnv(t)
	handler := HandleSearchItems(env.search, env.translator)

	t.Run("empty query lists everything ranked", func(t *testing.T) {
		w := serve(handler, httptest.NewRequest(http.MethodGet, "/items", nil))

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[ItemSearchResponse](t, w)
		assert.Equal(t, "all", resp.Mode)
		assert.Equal(t, 3, resp.Count)
		assert.Equal(t, "anvil", resp.Items[0].ID)
		assert.Equal(t, "3 items", resp.Summary)
	})

	t.Run("recycle chain match", func(t *testing.T) {
		w := serve(handler, httptest.NewRequest(http.MethodGet, "/items?q=metal", nil))

		resp := decode[ItemSearchResponse](t, w)
		require.Equal(t, 2, resp.Count)
		assert.Equal(t, "metal_parts", resp.Items[0].ID)
		assert.Equal(t, "scrap", resp.Items[1].ID)
	})

	t.Run("keyword", func(t *testing.T) {
		w := serve(handler, httptest.NewRequest(http.MethodGet, "/items?q=Upgrade", nil))

		resp := decode[ItemSearchResponse](t, w)
		assert.Equal(t, "keyword", resp.Mode)
		require.Len(t, resp.Items, 1)
		assert.True(t, resp.Items[0].Upgradable)
	})

	t.Run("language from query parameter", func(t *testing.T) {
		w := serve(handler, httptest.NewRequest(http.MethodGet, "/items?q=metal&lang=de", nil))

		resp := decode[ItemSearchResponse](t, w)
		require.NotEmpty(t, resp.Items)
		assert.Equal(t, "Metallteile", resp.Items[0].Name)
	})

	t.Run("language from Accept-Language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items?q=metal", nil)
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
		resp := decode[ItemSearchResponse](t, serve(handler, req))

		require.NotEmpty(t, resp.Items)
		assert.Equal(t, "Metallteile", resp.Items[0].Name)
	})

	t.Run("no results carry suggestions", func(t *testing.T) {
		w := serve(handler, httptest.NewRequest(http.MethodGet, "/items?q=scrapp", nil))

		resp := decode[ItemSearchResponse](t, w)
		assert.Zero(t, resp.Count)
		assert.NotNil(t, resp.Items)
		assert.Contains(t, resp.Summary, "scrapp")
		assert.Contains(t, resp.Suggestions, "Scrap")
		assert.Contains(t, resp.DidYouMean, "Scrap")
	})

	t.Run("invalid language", func(t *testing.T) {
		w := serve(handler, httptest.NewRequest(http.MethodGet, "/items?lang=not_a_tag!", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLanguage)
	})
}

func TestHandleGetItem(t *testing.T) {
	env := newTestEnv(t)
	handler := HandleGetItem(env.search)

	t.Run("resolves references and skips dangling ones", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/items/anvil", nil), "id", "anvil")
		w := serve(handler, req)

		require.Equal(t, http.StatusOK, w.Code)
		detail := decode[ItemDetail](t, w)
		assert.Equal(t, "Anvil I", detail.Name)
		assert.Equal(t, "rare", detail.RarityTone)
		require.Len(t, detail.Recipe, 1)
		assert.Equal(t, EntryView{ID: "metal_parts", Name: "Metal Parts", Quantity: 6}, detail.Recipe[0])
		assert.Len(t, detail.UpgradeCost, 1)
		assert.Empty(t, detail.RecyclesInto)
	})

	t.Run("unknown item", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/items/nope", nil), "id", "nope")
		w := serve(handler, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgItemNotFoundError)
	})
}

func TestHandleListKeywords(t *testing.T) {
	w := serve(HandleListKeywords(), httptest.NewRequest(http.MethodGet, "/items/keywords", nil))

	resp := decode[KeywordsResponse](t, w)
	assert.Contains(t, resp.Keywords, "craft")
	assert.Len(t, resp.Keywords, 8)
}
