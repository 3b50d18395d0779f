package search

import (
	"context"
	"strings"

	"github.com/Domje/Arc-Looterputer/internal/catalog"
	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/logger"
	"github.com/Domje/Arc-Looterputer/internal/metrics"
)

// SuggestionLimit caps the "did you mean" list attached to empty results.
const SuggestionLimit = 3

// LogMsgSearchCompleted is logged at debug level for every query.
const LogMsgSearchCompleted = "Catalog search completed"

// Result is the outcome of one query. Items point into the catalog and must
// not be modified.
type Result struct {
	Query       string         `json:"query"`
	Mode        Mode           `json:"mode"`
	Items       []*domain.Item `json:"items"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

// Service runs queries against a loaded catalog.
type Service interface {
	Search(ctx context.Context, query string) Result
	Catalog() *catalog.Catalog
	CacheStats() CacheStats
}

type service struct {
	catalog *catalog.Catalog
	cache   *resultCache
}

// NewService creates a search service over c. Results are cached per
// normalized query; the catalog is immutable so entries only age out.
func NewService(c *catalog.Catalog, cfg CacheConfig) Service {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheConfig.Size
	}
	metrics.CatalogItems.Set(float64(c.Len()))
	metrics.CatalogModules.Set(float64(len(c.Modules())))
	return &service{
		catalog: c,
		cache:   newResultCache(cfg),
	}
}

func (s *service) Search(ctx context.Context, query string) Result {
	key := strings.ToLower(query)
	mode := ModeOf(query)
	metrics.SearchesTotal.WithLabelValues(string(mode)).Inc()

	if cached, ok := s.cache.Get(key); ok {
		metrics.SearchCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		cached.Query = query
		return cached
	}
	metrics.SearchCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()

	items := s.catalog.Items()
	result := Result{
		Query: query,
		Mode:  mode,
		Items: Search(query, items),
	}
	if len(result.Items) == 0 && mode == ModeText {
		result.Suggestions = Suggest(query, items, SuggestionLimit)
	}

	metrics.SearchResultSize.Observe(float64(len(result.Items)))
	s.cache.Set(key, result)

	logger.FromContext(ctx).Debug(LogMsgSearchCompleted,
		"query", query,
		"mode", mode,
		"results", len(result.Items),
		"suggestions", len(result.Suggestions))
	return result
}

func (s *service) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *service) CacheStats() CacheStats {
	return s.cache.Stats()
}
