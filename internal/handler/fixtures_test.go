package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Domje/Arc-Looterputer/internal/catalog"
	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/event"
	"github.com/Domje/Arc-Looterputer/internal/hideout"
	"github.com/Domje/Arc-Looterputer/internal/locale"
	"github.com/Domje/Arc-Looterputer/internal/search"
	"github.com/Domje/Arc-Looterputer/internal/shoppinglist"
	"github.com/Domje/Arc-Looterputer/internal/storage"
)

type testEnv struct {
	catalog    *catalog.Catalog
	search     search.Service
	hideout    hideout.Service
	list       shoppinglist.Service
	translator *locale.Translator
}

func priority(p float64) *float64 { return &p }

func worth(v float64) *float64 { return &v }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	items := []domain.Item{
		{
			ID:           "metal_parts",
			Name:         domain.TranslatedText("en", "Metal Parts", "de", "Metallteile"),
			Rarity:       domain.PlainText("Common"),
			Value:        worth(75),
			CraftBench:   domain.Benches{"refiner"},
			Recipe:       domain.Quantities{"scrap": 2},
			RecyclesInto: nil,
		},
		{
			ID:           "scrap",
			Name:         domain.PlainText("Scrap"),
			Rarity:       domain.PlainText("Common"),
			Value:        worth(10),
			RecyclesInto: domain.Quantities{"metal_parts": 1},
		},
		{
			ID:          "anvil",
			Name:        domain.PlainText("Anvil I"),
			Rarity:      domain.PlainText("Rare"),
			Priority:    priority(5),
			CraftBench:  domain.Benches{"gunsmith"},
			Recipe:      domain.Quantities{"metal_parts": 6, "ghost": 1},
			UpgradeCost: domain.Quantities{"metal_parts": 3},
		},
	}
	modules := []domain.HideoutModule{
		{ID: "workbench", Name: domain.PlainText("Workbench")},
		{
			ID:       "gunsmith",
			Name:     domain.TranslatedText("en", "Gunsmith", "de", "Büchsenmacher"),
			MaxLevel: 1,
			Levels: []domain.HideoutLevel{{
				Level:              1,
				RequirementItemIDs: []domain.ItemRequirement{{ItemID: "metal_parts", Quantity: 20}},
				OtherRequirements:  []string{"Coins: 500", "Finish the tutorial"},
			}},
		},
	}

	c := catalog.New(items, modules)
	h := hideout.NewService(c)
	tr, err := locale.NewTranslator()
	require.NoError(t, err)

	return &testEnv{
		catalog:    c,
		search:     search.NewService(c, search.DefaultCacheConfig),
		hideout:    h,
		list:       shoppinglist.NewService(storage.NewMemory(), event.NewMemoryBus(), c, h),
		translator: tr,
	}
}

// withURLParams attaches chi route parameters given as key, value pairs.
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
