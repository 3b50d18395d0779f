package shoppinglist

// StorageKey is the store key holding the serialized list.
const StorageKey = "arc-raiders-shopping-list"

// Error messages
const (
	ErrMsgLoadFailed = "failed to load shopping list: %w"
	ErrMsgSaveFailed = "failed to save shopping list: %w"
	ErrMsgEncode     = "failed to encode shopping list: %w"
)

// Log messages
const (
	LogMsgMalformedList = "Stored shopping list is malformed, treating as empty"
	LogMsgPublishFailed = "Failed to publish shopping list update"
	LogMsgListUpdated   = "Shopping list updated"
	LogMsgNothingToAdd  = "Nothing new to add to shopping list"
)
