package domain

// LockEntry records the last-seen modification time of one tracked file.
// Entries live in the coyote.LOCK file and survive across builds; a file's
// recorded time only ever moves forward.
type LockEntry struct {
	// Path is the tracked file path, exactly as it appears in the expanded
	// run_if operand.
	Path string

	// ModTime is the file's modification time in Unix seconds as of the
	// last successful build that checked it.
	ModTime int64
}
