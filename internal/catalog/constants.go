package catalog

// ==================== Data File Names ====================

// Catalog data file names
const (
	// ItemsFileName is the name of the items data file
	ItemsFileName = "items.json"
	// HideoutFileName is the name of the hideout modules data file
	HideoutFileName = "hideoutModules.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadDataFileFailed = "failed to read catalog data file %s: %w"
	ErrMsgReadEmbeddedFailed = "failed to read embedded catalog data %s: %w"
)

// Parse error messages (fragments used with error wrapping)
const (
	ErrMsgNotAnArray      = "%w: %s is not a JSON array: %w"
	ErrMsgSchemaViolation = "%w: %s: %w"
	ErrMsgBadRecord       = "%w: %s record %d: %w"
	ErrMsgDuplicateID     = "%w: %s"
)

// ==================== Log Messages ====================

// Loader log messages
const (
	LogMsgSchemaViolations = "Catalog data does not match schema, loading leniently"
	LogMsgNotAnArray       = "Catalog data is not a JSON array, treating as empty"
	LogMsgSkippedRecord    = "Skipped unreadable catalog record"
	LogMsgDuplicateID      = "Duplicate item id, keeping first occurrence"
	LogMsgDanglingRefs     = "Catalog references unknown item ids"
	LogMsgCatalogLoaded    = "Catalog loaded"
)
