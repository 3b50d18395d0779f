// Package info serves the help documents shown by the bot and the API.
package info

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed topics/*.yaml
var embeddedTopics embed.FS

// Loader handles loading and caching info features from YAML files
type Loader struct {
	fsys    fs.FS
	cache   map[string]*Feature
	cacheMu sync.RWMutex
	loaded  bool
	loadErr error
}

// NewLoader creates a loader reading *.yaml files from the root of fsys
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*Feature),
	}
}

// NewDirLoader reads help documents from dir, or the built-in documents when
// dir is empty.
func NewDirLoader(dir string) *Loader {
	if dir == "" {
		return NewEmbeddedLoader()
	}
	return NewLoader(os.DirFS(dir))
}

// NewEmbeddedLoader reads the help documents compiled into the binary
func NewEmbeddedLoader() *Loader {
	sub, err := fs.Sub(embeddedTopics, "topics")
	if err != nil {
		panic(fmt.Sprintf("embedded topics: %v", err))
	}
	return NewLoader(sub)
}

// Load reads all YAML feature files. The feature name is the file name
// without its extension.
func (l *Loader) Load() error {
	l.cacheMu.Lock()
	defer l.cacheMu.Unlock()
	return l.loadLocked()
}

func (l *Loader) loadLocked() error {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		l.loadErr = fmt.Errorf("failed to read info directory: %w", err)
		return l.loadErr
	}

	cache := make(map[string]*Feature, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		feature, err := l.loadFeatureFile(entry.Name())
		if err != nil {
			l.loadErr = fmt.Errorf("failed to load feature %s: %w", name, err)
			return l.loadErr
		}
		cache[name] = feature
	}

	l.cache = cache
	l.loaded = true
	l.loadErr = nil
	return nil
}

func (l *Loader) loadFeatureFile(name string) (*Feature, error) {
	data, err := fs.ReadFile(l.fsys, path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var feature Feature
	if err := yaml.Unmarshal(data, &feature); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &feature, nil
}

// ensureLoaded loads lazily on first use and returns the cache under a read
// lock. Callers must call the returned unlock function.
func (l *Loader) ensureLoaded() (map[string]*Feature, func()) {
	l.cacheMu.RLock()
	if l.loaded {
		return l.cache, l.cacheMu.RUnlock
	}
	l.cacheMu.RUnlock()

	l.cacheMu.Lock()
	if !l.loaded {
		_ = l.loadLocked()
	}
	l.cacheMu.Unlock()

	l.cacheMu.RLock()
	return l.cache, l.cacheMu.RUnlock
}

// Err returns the error from the last load attempt, if any.
func (l *Loader) Err() error {
	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()
	return l.loadErr
}

// GetFeature returns a feature by name
func (l *Loader) GetFeature(name string) (*Feature, bool) {
	cache, unlock := l.ensureLoaded()
	defer unlock()

	feature, ok := cache[name]
	return feature, ok
}

// GetTopic returns a specific topic within a feature
func (l *Loader) GetTopic(featureName, topicName string) (*Topic, bool) {
	feature, ok := l.GetFeature(featureName)
	if !ok {
		return nil, false
	}

	topic, ok := feature.Topics[topicName]
	if !ok {
		return nil, false
	}
	return &topic, true
}

// SearchTopic searches for a topic across all features by name.
// Features are scanned in name order so the result is deterministic.
func (l *Loader) SearchTopic(topicName string) (*Topic, string, bool) {
	cache, unlock := l.ensureLoaded()
	defer unlock()

	for _, featureName := range sortedKeys(cache) {
		if topic, ok := cache[featureName].Topics[topicName]; ok {
			return &topic, featureName, true
		}
	}
	return nil, "", false
}

// GetAllFeatures returns all loaded features
func (l *Loader) GetAllFeatures() map[string]*Feature {
	cache, unlock := l.ensureLoaded()
	defer unlock()

	result := make(map[string]*Feature, len(cache))
	for k, v := range cache {
		result[k] = v
	}
	return result
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
