package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/logger"
	"github.com/Domje/Arc-Looterputer/internal/validation"
)

//go:embed data/*.json
var sampleData embed.FS

// Options controls how strictly catalog data is read.
type Options struct {
	// Strict turns schema failures, unreadable records and duplicate ids
	// into errors. Otherwise they are logged and skipped.
	Strict bool
}

// Loader reads catalog data files.
type Loader interface {
	// Load reads both files. An empty path selects the embedded sample file.
	Load(itemsPath, hideoutPath string) (*Catalog, error)
	ParseItems(data []byte, source string) ([]domain.Item, error)
	ParseModules(data []byte, source string) ([]domain.HideoutModule, error)
}

type catalogLoader struct {
	opts            Options
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader(opts Options) Loader {
	return &catalogLoader{
		opts:            opts,
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// LoadEmbedded builds a catalog from the sample data compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return NewLoader(Options{}).Load("", "")
}

func (l *catalogLoader) Load(itemsPath, hideoutPath string) (*Catalog, error) {
	itemsData, itemsSource, err := readData(itemsPath, ItemsFileName)
	if err != nil {
		return nil, err
	}
	items, err := l.ParseItems(itemsData, itemsSource)
	if err != nil {
		return nil, err
	}

	hideoutData, hideoutSource, err := readData(hideoutPath, HideoutFileName)
	if err != nil {
		return nil, err
	}
	modules, err := l.ParseModules(hideoutData, hideoutSource)
	if err != nil {
		return nil, err
	}

	report := Validate(items, modules)
	if err := report.Err(); err != nil {
		if l.opts.Strict {
			return nil, err
		}
		logger.Warn(LogMsgDuplicateID, "ids", report.DuplicateIDs)
	}
	if len(report.Dangling) > 0 {
		logger.Warn(LogMsgDanglingRefs, "count", len(report.Dangling))
	}

	c := New(items, modules)
	logger.Info(LogMsgCatalogLoaded,
		"items", c.Len(),
		"modules", len(c.Modules()),
		"items_source", itemsSource,
		"hideout_source", hideoutSource)
	return c, nil
}

func (l *catalogLoader) ParseItems(data []byte, source string) ([]domain.Item, error) {
	if err := l.checkSchema(data, source, validation.ItemsSchema); err != nil {
		return nil, err
	}
	return decodeRecords[domain.Item](data, source, l.opts.Strict)
}

func (l *catalogLoader) ParseModules(data []byte, source string) ([]domain.HideoutModule, error) {
	if err := l.checkSchema(data, source, validation.HideoutSchema); err != nil {
		return nil, err
	}
	return decodeRecords[domain.HideoutModule](data, source, l.opts.Strict)
}

func (l *catalogLoader) checkSchema(data []byte, source, schema string) error {
	err := l.schemaValidator.ValidateBytes(data, schema)
	if err == nil {
		return nil
	}
	if l.opts.Strict {
		return fmt.Errorf(ErrMsgSchemaViolation, domain.ErrMalformedData, source, err)
	}
	logger.Warn(LogMsgSchemaViolations, "source", source, "error", err)
	return nil
}

// decodeRecords decodes a JSON array one element at a time so that a single
// bad record does not discard the rest. Anything that is not an array yields
// an empty result in lenient mode.
func decodeRecords[T any](data []byte, source string, strict bool) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		if strict {
			return nil, fmt.Errorf(ErrMsgNotAnArray, domain.ErrMalformedData, source, err)
		}
		logger.Warn(LogMsgNotAnArray, "source", source, "error", err)
		return []T{}, nil
	}

	out := make([]T, 0, len(raw))
	for i, rec := range raw {
		var v T
		if err := json.Unmarshal(rec, &v); err != nil {
			if strict {
				return nil, fmt.Errorf(ErrMsgBadRecord, domain.ErrMalformedData, source, i, err)
			}
			logger.Warn(LogMsgSkippedRecord, "source", source, "index", i, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// readData reads path from disk, or the named embedded sample when path is
// empty. The returned source names where the bytes came from.
func readData(path, sample string) ([]byte, string, error) {
	if path == "" {
		data, err := fs.ReadFile(sampleData, "data/"+sample)
		if err != nil {
			return nil, "", fmt.Errorf(ErrMsgReadEmbeddedFailed, sample, err)
		}
		return data, "embedded:" + sample, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf(ErrMsgReadDataFileFailed, path, err)
	}
	return data, path, nil
}
