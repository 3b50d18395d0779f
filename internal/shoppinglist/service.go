// Package shoppinglist keeps a single list of item snapshots in a key-value
// store and announces every change on the event bus.
package shoppinglist

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/Domje/Arc-Looterputer/internal/catalog"
	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/event"
	"github.com/Domje/Arc-Looterputer/internal/hideout"
	"github.com/Domje/Arc-Looterputer/internal/logger"
	"github.com/Domje/Arc-Looterputer/internal/metrics"
	"github.com/Domje/Arc-Looterputer/internal/storage"
)

// Service manages the shopping list.
type Service interface {
	List(ctx context.Context) ([]domain.Item, error)
	Add(ctx context.Context, item domain.Item) (bool, error)
	AddByID(ctx context.Context, itemID string) (bool, error)
	Remove(ctx context.Context, item domain.Item) error
	RemoveByKey(ctx context.Context, key string) error
	Contains(ctx context.Context, item domain.Item) (bool, error)
	Clear(ctx context.Context) error
	AddRecipe(ctx context.Context, itemID string) ([]string, error)
	AddUpgradeLevel(ctx context.Context, moduleID string, level int) ([]string, error)
}

type service struct {
	mu      sync.Mutex
	store   storage.Store
	bus     event.Bus
	catalog *catalog.Catalog
	hideout hideout.Service
}

// NewService creates a shopping list service. Read-modify-write cycles are
// serialised within the process.
func NewService(store storage.Store, bus event.Bus, c *catalog.Catalog, h hideout.Service) Service {
	return &service{
		store:   store,
		bus:     bus,
		catalog: c,
		hideout: h,
	}
}

func (s *service) List(ctx context.Context) ([]domain.Item, error) {
	return s.load(ctx)
}

func (s *service) Contains(ctx context.Context, item domain.Item) (bool, error) {
	list, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(list, item.Identity()) >= 0, nil
}

func (s *service) Add(ctx context.Context, item domain.Item) (bool, error) {
	added, err := s.addAll(ctx, []domain.Item{item})
	return len(added) > 0, err
}

func (s *service) AddByID(ctx context.Context, itemID string) (bool, error) {
	item, err := s.catalog.ItemByID(itemID)
	if err != nil {
		return false, err
	}
	return s.Add(ctx, *item)
}

func (s *service) Remove(ctx context.Context, item domain.Item) error {
	return s.RemoveByKey(ctx, item.Identity())
}

// RemoveByKey drops every entry whose identity is key. The list is saved and
// an update published even when nothing matched.
func (s *service) RemoveByKey(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	list = slices.DeleteFunc(list, func(it domain.Item) bool { return it.Identity() == key })

	if err := s.save(ctx, list); err != nil {
		return err
	}
	s.publish(ctx, domain.ListActionRemoved, []string{key}, len(list))
	return nil
}

func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf(ErrMsgSaveFailed, fmt.Errorf("%w: %w", domain.ErrStorage, err))
	}
	s.publish(ctx, domain.ListActionCleared, nil, 0)
	return nil
}

// AddRecipe adds the materials of an item's recipe. Returns the keys that
// were not already on the list.
func (s *service) AddRecipe(ctx context.Context, itemID string) ([]string, error) {
	item, err := s.catalog.ItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsCraftable() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoRecipe, itemID)
	}
	return s.addEntries(ctx, s.catalog.Resolve(item.Recipe))
}

// AddUpgradeLevel adds the items needed to build a hideout level.
func (s *service) AddUpgradeLevel(ctx context.Context, moduleID string, level int) ([]string, error) {
	req, err := s.hideout.Requirements(moduleID, level)
	if err != nil {
		return nil, err
	}
	return s.addEntries(ctx, req.Items)
}

func (s *service) addEntries(ctx context.Context, entries []catalog.Entry) ([]string, error) {
	items := make([]domain.Item, len(entries))
	for i, e := range entries {
		items[i] = *e.Item
	}
	return s.addAll(ctx, items)
}

// addAll appends the items not yet present with one save and one update.
func (s *service) addAll(ctx context.Context, items []domain.Item) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, item := range items {
		key := item.Identity()
		if indexOf(list, key) >= 0 {
			continue
		}
		list = append(list, item)
		added = append(added, key)
	}

	if len(added) == 0 {
		logger.FromContext(ctx).Debug(LogMsgNothingToAdd)
		return nil, nil
	}

	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	s.publish(ctx, domain.ListActionAdded, added, len(list))
	return added, nil
}

func (s *service) load(ctx context.Context) ([]domain.Item, error) {
	data, ok, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadFailed, fmt.Errorf("%w: %w", domain.ErrStorage, err))
	}
	if !ok {
		return []domain.Item{}, nil
	}

	var list []domain.Item
	if err := json.Unmarshal(data, &list); err != nil {
		logger.FromContext(ctx).Warn(LogMsgMalformedList, "error", err)
		return []domain.Item{}, nil
	}
	if list == nil {
		list = []domain.Item{}
	}
	return list, nil
}

func (s *service) save(ctx context.Context, list []domain.Item) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf(ErrMsgEncode, err)
	}
	if err := s.store.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf(ErrMsgSaveFailed, fmt.Errorf("%w: %w", domain.ErrStorage, err))
	}
	return nil
}

func (s *service) publish(ctx context.Context, action string, keys []string, count int) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgListUpdated, "action", action, "items", keys, "count", count)

	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event.NewShoppingListUpdatedEvent(action, keys, count)); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(event.ShoppingListUpdated)).Inc()
		log.Warn(LogMsgPublishFailed, "action", action, "error", err)
	}
}

// TotalValue sums the value of every item on the list. Items without a
// value count as zero.
func TotalValue(list []domain.Item) float64 {
	total := 0.0
	for i := range list {
		if v := list[i].Value; v != nil {
			total += *v
		}
	}
	return total
}

func indexOf(list []domain.Item, key string) int {
	return slices.IndexFunc(list, func(it domain.Item) bool { return it.Identity() == key })
}
