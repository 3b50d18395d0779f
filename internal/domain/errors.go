package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgDuplicateItemID = "duplicate item id"
	ErrMsgMalformedData   = "malformed catalog data"

	// Hideout errors
	ErrMsgModuleNotFound = "hideout module not found"
	ErrMsgLevelNotFound  = "hideout level not found"

	// Recipe errors
	ErrMsgNoRecipe = "item has no recipe"

	// Storage errors
	ErrMsgStorage = "storage error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrDuplicateItemID = errors.New(ErrMsgDuplicateItemID)
	ErrMalformedData   = errors.New(ErrMsgMalformedData)

	ErrModuleNotFound = errors.New(ErrMsgModuleNotFound)
	ErrLevelNotFound  = errors.New(ErrMsgLevelNotFound)

	ErrNoRecipe = errors.New(ErrMsgNoRecipe)

	ErrStorage = errors.New(ErrMsgStorage)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
