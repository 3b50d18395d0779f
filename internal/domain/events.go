package domain

// Event type constants used for event bus subscriptions, SSE streaming and
// metrics tracking.
const (
	// EventTypeShoppingListUpdated is published after every shopping list mutation
	EventTypeShoppingListUpdated = "shopping-list-updated"
)

// Shopping list actions carried in the update payload
const (
	ListActionAdded   = "added"
	ListActionRemoved = "removed"
	ListActionCleared = "cleared"
)
