// Package lock persists build state in a coyote.LOCK file: a JSON mapping
// from tracked file path to last-recorded modification time, protected by
// a content checksum. Every recipe of a project shares one lock file.
package lock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/Pougher/coyote/internal/core/domain"
	"github.com/Pougher/coyote/internal/core/ports"
)

// DefaultFile is the lock file name in the project directory.
const DefaultFile = "coyote.LOCK"

// Store implements ports.LockStore using a flat JSON file.
type Store struct {
	path   string
	logger ports.Logger

	mu      sync.RWMutex
	entries map[string]int64
}

type lockFile struct {
	LastModified map[string]string `json:"last_modified"`
	Checksum     string            `json:"checksum,omitempty"`
}

// NewStore creates a Store backed by the file at path, loading any existing
// state. Losing the lock file is a performance regression, not data loss,
// so an unreadable or corrupt file degrades to empty state with a warning
// instead of failing the build.
func NewStore(path string, logger ports.Logger) *Store {
	s := &Store{
		path:    filepath.Clean(path),
		logger:  logger,
		entries: make(map[string]int64),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("could not read build state, treating every file as stale: " + err.Error())
		}
		return
	}
	if len(data) == 0 {
		return
	}

	var file lockFile
	if err := json.Unmarshal(data, &file); err != nil {
		s.logger.Warn("malformed build state, treating every file as stale: " + err.Error())
		return
	}

	// Lock files written before checksumming existed carry no checksum and
	// are accepted as-is.
	if file.Checksum != "" && file.Checksum != checksum(file.LastModified) {
		s.logger.Warn("build state checksum mismatch, treating every file as stale")
		return
	}

	for path, seconds := range file.LastModified {
		modTime, err := strconv.ParseInt(seconds, 10, 64)
		if err != nil {
			s.logger.Warn("discarding unparsable build state entry for '" + path + "'")
			continue
		}
		s.entries[path] = modTime
	}
}

// Get returns the recorded entry for a tracked file path.
func (s *Store) Get(path string) (domain.LockEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	modTime, ok := s.entries[path]
	if !ok {
		return domain.LockEntry{}, false
	}
	return domain.LockEntry{Path: path, ModTime: modTime}, true
}

// Put records or updates the entry for a tracked file path and flushes the
// state to disk, so a crash mid-build keeps the baselines of the commands
// that already succeeded.
func (s *Store) Put(entry domain.LockEntry) error {
	s.mu.Lock()
	s.entries[entry.Path] = entry.ModTime
	s.mu.Unlock()

	return s.Flush()
}

// Flush writes the state back to the lock file.
func (s *Store) Flush() error {
	s.mu.RLock()
	file := lockFile{LastModified: make(map[string]string, len(s.entries))}
	for path, modTime := range s.entries {
		file.LastModified[path] = strconv.FormatInt(modTime, 10)
	}
	s.mu.RUnlock()

	file.Checksum = checksum(file.LastModified)

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build state")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec // state file is not sensitive
		return zerr.With(zerr.Wrap(err, "failed to write build state"), "path", s.path)
	}
	return nil
}

// checksum fingerprints the payload. json.Marshal emits map keys in sorted
// order, which keeps the digest stable across runs.
func checksum(payload map[string]string) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
