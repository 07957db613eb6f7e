package ports

import "github.com/Pougher/coyote/internal/core/domain"

// LockStore defines the interface for the persisted build state.
type LockStore interface {
	// Get returns the recorded entry for a tracked file path.
	Get(path string) (domain.LockEntry, bool)

	// Put records or updates the entry for a tracked file path.
	Put(entry domain.LockEntry) error

	// Flush writes the state back to durable storage.
	Flush() error
}
