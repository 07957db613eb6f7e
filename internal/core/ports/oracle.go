package ports

// Oracle defines the interface for staleness decisions about tracked files.
type Oracle interface {
	// IsStale reports whether the file should be considered modified since
	// the last recorded successful build. Files that were never recorded,
	// or that cannot be inspected, are stale.
	IsStale(path string) bool

	// Record sets the file's baseline to its current modification time.
	// Called only after the guarding command has exited successfully.
	Record(path string) error
}
