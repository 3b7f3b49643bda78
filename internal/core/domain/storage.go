package domain

import "time"

// SelectionKey stores the in-progress selection as a JSON array. It never
// expires.
const SelectionKey = "selectedIngredients"

// StorageEntry is one client storage write. A zero TTL never expires.
type StorageEntry struct {
	Key   string
	Value string
	TTL   time.Duration
}
