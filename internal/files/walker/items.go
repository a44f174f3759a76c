package walker

import (
	"fmt"

	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// Factory converts a path record into a caller-defined item.
type Factory[T any] func(rec *treewalk.PathRecord) T

// Items is a Walker whose elements are converted through a Factory.
// The factory runs once per child, when Next produces it.
type Items[T any] struct {
	walker  *Walker
	factory Factory[T]
	current T
	has     bool
}

// Map wraps w so that each child is produced as factory(child.Record()).
func Map[T any](w *Walker, factory Factory[T]) (*Items[T], error) {
	if w == nil {
		return nil, fmt.Errorf("%w: walker must not be nil", treewalk.ErrInvalidArgument)
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: factory must not be nil", treewalk.ErrInvalidArgument)
	}
	return &Items[T]{walker: w, factory: factory}, nil
}

// Next advances to the next child and converts it.
func (it *Items[T]) Next() (bool, error) {
	var zero T
	it.current, it.has = zero, false

	ok, err := it.walker.Next()
	if err != nil || !ok {
		return ok, err
	}
	n, err := it.walker.Current()
	if err != nil {
		return false, err
	}
	it.current, it.has = it.factory(n.Record()), true
	return true, nil
}

// Current returns the converted child.
func (it *Items[T]) Current() (T, error) {
	var zero T
	if _, err := it.walker.Current(); err != nil {
		return zero, err
	}
	if !it.has {
		return zero, treewalk.ErrNoCurrent
	}
	return it.current, nil
}

// Node returns the unconverted child, for callers that want to descend.
func (it *Items[T]) Node() (*Node, error) {
	return it.walker.Current()
}

// Reset always fails.
func (it *Items[T]) Reset() error {
	return it.walker.Reset()
}

// IsCompleted reports whether the underlying walker is exhausted.
func (it *Items[T]) IsCompleted() bool {
	return it.walker.IsCompleted()
}

// Close closes the underlying walker.
func (it *Items[T]) Close() error {
	var zero T
	it.current, it.has = zero, false
	return it.walker.Close()
}

var _ treewalk.Enumerator[string] = (*Items[string])(nil)
