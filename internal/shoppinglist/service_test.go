package shoppinglist

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domje/Arc-Looterputer/internal/catalog"
	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/event"
	"github.com/Domje/Arc-Looterputer/internal/hideout"
	"github.com/Domje/Arc-Looterputer/internal/storage"
)

type recorder struct {
	mu       sync.Mutex
	payloads []event.ShoppingListUpdatedPayloadV1
}

func (r *recorder) handle(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.ShoppingListUpdatedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, p)
	return nil
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.payloads))
	for i, p := range r.payloads {
		out[i] = p.Action
	}
	return out
}

func newTestCatalog() *catalog.Catalog {
	items := []domain.Item{
		{ID: "metal_parts", Name: domain.PlainText("Metal Parts")},
		{ID: "rubber_parts", Name: domain.PlainText("Rubber Parts")},
		{ID: "mech", Name: domain.PlainText("Mechanical Components"), Recipe: domain.Quantities{"metal_parts": 7, "rubber_parts": 3, "ghost": 1}},
		{ID: "rock", Name: domain.PlainText("Rock")},
	}
	modules := []domain.HideoutModule{{
		ID:       "gunsmith",
		MaxLevel: 1,
		Levels: []domain.HideoutLevel{{
			Level: 1,
			RequirementItemIDs: []domain.ItemRequirement{
				{ItemID: "metal_parts", Quantity: 20},
				{ItemID: "rock", Quantity: 1},
			},
		}},
	}}
	return catalog.New(items, modules)
}

func newTestService(t *testing.T, store storage.Store) (Service, *recorder) {
	t.Helper()
	bus := event.NewMemoryBus()
	rec := &recorder{}
	bus.Subscribe(event.ShoppingListUpdated, rec.handle)

	c := newTestCatalog()
	return NewService(store, bus, c, hideout.NewService(c)), rec
}

func TestService_AddDedupesByIdentity(t *testing.T) {
	ctx := context.Background()
	svc, rec := newTestService(t, storage.NewMemory())

	added, err := svc.Add(ctx, domain.Item{ID: "battery", Name: domain.PlainText("Battery")})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.Add(ctx, domain.Item{ID: "battery", Name: domain.PlainText("Battery (renamed)")})
	require.NoError(t, err)
	assert.False(t, added)

	added, err = svc.Add(ctx, domain.Item{Name: domain.PlainText("Nameless Scrap")})
	require.NoError(t, err)
	assert.True(t, added)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Battery", list[0].Name.Resolve())

	assert.Equal(t, []string{domain.ListActionAdded, domain.ListActionAdded}, rec.actions(),
		"duplicates do not publish")
	assert.Equal(t, 2, rec.payloads[1].Count)
}

func TestService_RemoveAlwaysPublishes(t *testing.T) {
	ctx := context.Background()
	svc, rec := newTestService(t, storage.NewMemory())

	_, err := svc.AddByID(ctx, "rock")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, domain.Item{ID: "rock"}))
	require.NoError(t, svc.Remove(ctx, domain.Item{ID: "rock"}))

	ok, err := svc.Contains(ctx, domain.Item{ID: "rock"})
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []string{domain.ListActionAdded, domain.ListActionRemoved, domain.ListActionRemoved}, rec.actions())
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()
	svc, rec := newTestService(t, storage.NewMemory())

	_, err := svc.AddByID(ctx, "rock")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, domain.ListActionCleared, rec.actions()[1])
}

func TestTotalValue(t *testing.T) {
	value := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		list []domain.Item
		want float64
	}{
		{"empty", nil, 0},
		{"all valued", []domain.Item{{ID: "a", Value: value(250)}, {ID: "b", Value: value(40)}}, 290},
		{"missing values count as zero", []domain.Item{{ID: "a", Value: value(250)}, {ID: "b"}, {ID: "c", Value: value(12.5)}}, 262.5},
		{"none valued", []domain.Item{{ID: "a"}, {ID: "b"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TotalValue(tt.list), 1e-9)
		})
	}
}

func TestService_AddByIDUnknown(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemory())

	_, err := svc.AddByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestService_AddRecipe(t *testing.T) {
	ctx := context.Background()
	svc, rec := newTestService(t, storage.NewMemory())

	_, err := svc.AddByID(ctx, "rubber_parts")
	require.NoError(t, err)

	added, err := svc.AddRecipe(ctx, "mech")
	require.NoError(t, err)
	assert.Equal(t, []string{"metal_parts"}, added, "present and dangling entries are skipped")
	assert.Len(t, rec.actions(), 2, "one update per batch")

	added, err = svc.AddRecipe(ctx, "mech")
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Len(t, rec.actions(), 2)

	_, err = svc.AddRecipe(ctx, "rock")
	assert.ErrorIs(t, err, domain.ErrNoRecipe)
}

func TestService_AddUpgradeLevel(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	added, err := svc.AddUpgradeLevel(ctx, "gunsmith", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"metal_parts", "rock"}, added)

	_, err = svc.AddUpgradeLevel(ctx, "gunsmith", 2)
	assert.ErrorIs(t, err, domain.ErrLevelNotFound)

	_, err = svc.AddUpgradeLevel(ctx, "refiner", 1)
	assert.ErrorIs(t, err, domain.ErrModuleNotFound)
}

func TestService_MalformedStoredList(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, StorageKey, []byte(`{"not":"a list"}`)))

	svc, _ := newTestService(t, store)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	added, err := svc.AddByID(ctx, "rock")
	require.NoError(t, err)
	assert.True(t, added)
}

type brokenStore struct{ storage.Store }

var errBroken = errors.New("disk on fire")

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, errBroken }

func TestService_StorageErrors(t *testing.T) {
	svc, rec := newTestService(t, brokenStore{storage.NewMemory()})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, errBroken)

	_, err = svc.AddByID(context.Background(), "rock")
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Empty(t, rec.actions())
}

func TestService_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	var wg sync.WaitGroup
	for _, id := range []string{"metal_parts", "rubber_parts", "mech", "rock", "rock", "mech"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddByID(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 4)
}
