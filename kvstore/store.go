// Package kvstore provides the local key-value byte store the tracker
// persists into: a single SQLite file on device, or an in-memory map for
// tests. Values are opaque bytes; the shapes stored under each key are
// decided by the callers.
package kvstore

// Storage keys used by the tracker.
const (
	KeyData       = "taka_tracker_data"       // ledger snapshot JSON
	KeyTheme      = "taka_tracker_theme"      // "dark" | "light"
	KeyLivery     = "taka_tracker_livery"     // accent id
	KeyCategories = "taka_tracker_categories" // {income, expense} head lists
	KeyPIN        = "taka_tracker_pin"        // 4-digit string
)

// Store is a minimal key-value byte store. Writes are synchronous: when Put
// returns, the value is durable as far as the backend can promise.
type Store interface {
	// Get reads a key. The second return is false when the key is absent.
	Get(key string) ([]byte, bool, error)
	// Put overwrites a key.
	Put(key string, value []byte) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases the backend.
	Close() error
}
