package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgInvalidLanguage   = "Invalid lang parameter"
	ErrMsgInvalidLevel      = "Invalid level parameter"

	// Info error messages
	ErrMsgTopicNotFound   = "Topic '%s' not found in feature '%s'"
	ErrMsgFeatureNotFound = "Feature or topic '%s' not found"
)

// Success messages for API responses
const (
	MsgItemAdded          = "Item added to shopping list"
	MsgItemAlreadyPresent = "Item is already on the shopping list"
	MsgItemRemoved        = "Item removed from shopping list"
	MsgListCleared        = "Shopping list cleared"
	MsgMaterialsAdded     = "Materials added to shopping list"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgReadinessFailed      = "Readiness check failed"
)
