package lister

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vvka-141/treewalk/internal/files/filesystem"
	"github.com/vvka-141/treewalk/internal/files/safeio"
	"github.com/vvka-141/treewalk/internal/logging"
	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// phase tracks which source a grouped Lister reads from. It moves from
// phaseFirst to phaseSecond exactly once.
type phase int

const (
	phaseFirst phase = iota
	phaseSecond
)

// Lister is a forward-only sequence over the direct children of one
// directory. It is not safe for concurrent use.
type Lister struct {
	env     *environment
	sources []*source
	phase   phase

	current   *treewalk.PathRecord
	completed bool
	closed    bool
}

// New creates a Lister for dirPath. The directory is not touched until the
// first Next; a missing directory surfaces there.
func New(fsys filesystem.FileSystemProvider, dirPath string, opts treewalk.Options) (*Lister, error) {
	if strings.TrimSpace(dirPath) == "" {
		return nil, fmt.Errorf("%w: directory path must not be empty", treewalk.ErrInvalidArgument)
	}
	root, err := treewalk.NewRootRecord(dirPath)
	if err != nil {
		return nil, err
	}
	return NewForRecord(fsys, root, opts)
}

// NewForRecord creates a Lister for the directory described by parent.
// Yielded records have parent as their Parent.
func NewForRecord(fsys filesystem.FileSystemProvider, parent *treewalk.PathRecord, opts treewalk.Options) (*Lister, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: filesystem provider must not be nil", treewalk.ErrInvalidArgument)
	}
	if parent == nil {
		return nil, fmt.Errorf("%w: parent record must not be nil", treewalk.ErrInvalidArgument)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	env := &environment{
		fsys:    fsys,
		parent:  parent,
		dirPath: parent.FullPath(),
		opts:    opts,
		logger:  logging.OrNull(opts.Logger),
		errs:    safeio.OrDefault(opts.Classifier),
	}

	l := &Lister{env: env}
	for _, cat := range categoriesFor(opts.Order) {
		l.sources = append(l.sources, &source{env: env, cat: cat})
	}
	return l, nil
}

func categoriesFor(order treewalk.EnumerationOrder) []category {
	switch order {
	case treewalk.OrderFilesThenDirectories:
		return []category{categoryFiles, categoryDirectories}
	case treewalk.OrderDirectoriesThenFiles:
		return []category{categoryDirectories, categoryFiles}
	default:
		return []category{categoryAll}
	}
}

// Parent returns the record of the directory being listed.
func (l *Lister) Parent() *treewalk.PathRecord {
	return l.env.parent
}

// Next advances to the next child. It returns false once every source is
// exhausted, and keeps returning false afterwards. An error that safe mode
// does not swallow completes the lister and releases its handles.
func (l *Lister) Next() (bool, error) {
	if l.closed {
		return false, treewalk.ErrUseAfterClose
	}
	if l.completed {
		return false, nil
	}

	for {
		rec, ok, err := l.active().next()
		if err != nil {
			l.complete()
			return false, err
		}
		if ok {
			l.current = rec
			return true, nil
		}

		if l.phase == phaseFirst && len(l.sources) > 1 {
			l.phase = phaseSecond
			continue
		}

		l.complete()
		return false, nil
	}
}

func (l *Lister) active() *source {
	if l.phase == phaseSecond {
		return l.sources[1]
	}
	return l.sources[0]
}

// Current returns the record produced by the last successful Next.
func (l *Lister) Current() (*treewalk.PathRecord, error) {
	if l.closed {
		return nil, treewalk.ErrUseAfterClose
	}
	if l.current == nil || l.completed {
		return nil, treewalk.ErrNoCurrent
	}
	return l.current, nil
}

// Reset always fails: listings are forward-only.
func (l *Lister) Reset() error {
	if l.closed {
		return treewalk.ErrUseAfterClose
	}
	return treewalk.ErrUnsupportedOperation
}

// IsCompleted reports whether the lister has been exhausted.
func (l *Lister) IsCompleted() bool {
	return l.completed
}

// Close releases every open directory stream. Closing twice is a no-op.
func (l *Lister) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.current = nil
	return l.releaseAll()
}

func (l *Lister) complete() {
	l.completed = true
	l.current = nil
	_ = l.releaseAll()
}

func (l *Lister) releaseAll() error {
	var errs []error
	for _, s := range l.sources {
		s.done = true
		if err := s.release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ treewalk.Enumerator[*treewalk.PathRecord] = (*Lister)(nil)
