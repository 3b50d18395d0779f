package sse

// ShoppingListPayload is the SSE payload for shopping list updates
type ShoppingListPayload struct {
	Action   string   `json:"action"`
	ItemKeys []string `json:"item_keys,omitempty"`
	Count    int      `json:"count"`
}

// ConnectedPayload is sent once when a client connects
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
}
