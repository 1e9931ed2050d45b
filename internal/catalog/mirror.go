package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// Storage keys the persisted collections are mirrored under.
const (
	ArtworksKey  = "artworks"
	BookmarksKey = "bookmarks"
)

// KV is the string key-value store a collection can be mirrored into.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// KVMirror serialises the full collection as a JSON array of records.
type KVMirror struct {
	kv  KV
	key string
}

func NewKVMirror(kv KV, key string) *KVMirror {
	return &KVMirror{kv: kv, key: key}
}

func (m *KVMirror) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", m.key, err)
	}
	if err := m.kv.Set(m.key, string(data)); err != nil {
		return fmt.Errorf("failed to store %q: %w", m.key, err)
	}
	return nil
}

// LoadOrSeed reads the collection stored under key. A missing key or a value
// that does not decode to an array falls back to seed.
func LoadOrSeed(kv KV, key string, seed []Item, logger *slog.Logger) []Item {
	if logger == nil {
		logger = slog.Default()
	}

	raw, ok := kv.Get(key)
	if !ok {
		return seed
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("discarding unreadable stored collection", "key", key, "error", err)
		return seed
	}
	if items == nil {
		logger.Warn("discarding stored collection that is not an array", "key", key)
		return seed
	}
	return items
}
