package treewalk

// ErrorClassifier decides which listing failures safe mode may swallow.
type ErrorClassifier interface {
	// IsTransient returns true if err is an expected environmental failure
	// (missing path, permission denied, name too long, generic I/O) that
	// should turn the affected listing into an empty one.
	IsTransient(err error) bool
}
