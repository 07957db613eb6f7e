// Package fs implements the staleness oracle over the local filesystem.
package fs

import (
	"os"

	"go.trai.ch/zerr"

	"github.com/Pougher/coyote/internal/core/domain"
	"github.com/Pougher/coyote/internal/core/ports"
)

// Oracle implements ports.Oracle by comparing a file's modification time
// against the baseline recorded in the lock store.
type Oracle struct {
	store ports.LockStore
}

// NewOracle creates an Oracle backed by the given store.
func NewOracle(store ports.LockStore) *Oracle {
	return &Oracle{store: store}
}

// IsStale reports whether path changed since its recorded baseline.
// A file with no recorded entry is stale. A file that cannot be inspected
// is stale too: the command runs and surfaces the real failure itself.
func (o *Oracle) IsStale(path string) bool {
	entry, ok := o.store.Get(path)
	if !ok {
		return true
	}

	info, err := os.Stat(path)
	if err != nil {
		return true
	}

	return info.ModTime().Unix() > entry.ModTime
}

// Record sets the baseline for path to its modification time as of now,
// after the guarding command has completed, so changes the command itself
// made to the file are folded into the baseline.
func (o *Oracle) Record(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat tracked file"), "path", path)
	}

	return o.store.Put(domain.LockEntry{Path: path, ModTime: info.ModTime().Unix()})
}
