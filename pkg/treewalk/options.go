package treewalk

import (
	"fmt"
	"path"
)

// Options configures listers and walkers. The zero value lists everything in
// provider order with safe mode off.
type Options struct {
	// Pattern is a shell glob matched against entry names (path.Match syntax).
	// Empty, "*" and "*.*" match every entry.
	Pattern string

	// Order selects how files and directories are grouped.
	Order EnumerationOrder

	// SafeMode turns transient listing failures into empty listings.
	SafeMode bool

	// Logger receives verbose messages about swallowed failures.
	// Nil means discard.
	Logger Logger

	// Classifier decides which failures are transient. Nil means the default
	// OS classification.
	Classifier ErrorClassifier

	// OnSkip, if set, is called with the directory path and the cause every
	// time safe mode swallows a failure.
	OnSkip func(path string, err error)
}

// Validate checks the pattern and order.
func (o Options) Validate() error {
	if !o.Order.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, int(o.Order))
	}
	if _, err := path.Match(o.Pattern, ""); err != nil {
		return fmt.Errorf("%w: malformed pattern %q: %v", ErrInvalidArgument, o.Pattern, err)
	}
	return nil
}

// MatchesAll reports whether the pattern accepts every name.
func (o Options) MatchesAll() bool {
	return o.Pattern == "" || o.Pattern == MatchAllPattern || o.Pattern == "*.*"
}

// Match reports whether name passes the pattern. The pattern must have been
// validated; a malformed pattern matches nothing.
func (o Options) Match(name string) bool {
	if o.MatchesAll() {
		return true
	}
	ok, err := path.Match(o.Pattern, name)
	return err == nil && ok
}
