package walker

import (
	"github.com/vvka-141/treewalk/internal/files/lister"
	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// Walker yields the children of one node as nodes. A file node has no
// children and its walker is exhausted without touching the filesystem.
// Directory walkers create their lister on the first Next.
type Walker struct {
	node    *Node
	lister  *lister.Lister
	current *Node

	completed bool
	closed    bool
}

// Node returns the node whose children are being walked.
func (w *Walker) Node() *Node {
	return w.node
}

// Next advances to the next child. A listing error completes this walker
// only; walkers of other nodes are unaffected.
func (w *Walker) Next() (bool, error) {
	if w.closed {
		return false, treewalk.ErrUseAfterClose
	}
	if w.completed {
		return false, nil
	}

	if !w.node.IsDir() {
		w.completed = true
		return false, nil
	}

	if w.lister == nil {
		l, err := lister.NewForRecord(w.node.fsys, w.node.record, w.node.opts)
		if err != nil {
			w.completed = true
			return false, err
		}
		w.lister = l
	}

	ok, err := w.lister.Next()
	if err != nil || !ok {
		w.completed = true
		w.current = nil
		closeErr := w.lister.Close()
		if err != nil {
			return false, err
		}
		return false, closeErr
	}

	rec, err := w.lister.Current()
	if err != nil {
		return false, err
	}
	w.current = w.node.child(rec)
	return true, nil
}

// Current returns the child produced by the last successful Next.
func (w *Walker) Current() (*Node, error) {
	if w.closed {
		return nil, treewalk.ErrUseAfterClose
	}
	if w.current == nil || w.completed {
		return nil, treewalk.ErrNoCurrent
	}
	return w.current, nil
}

// Reset always fails: walks are forward-only.
func (w *Walker) Reset() error {
	if w.closed {
		return treewalk.ErrUseAfterClose
	}
	return treewalk.ErrUnsupportedOperation
}

// IsCompleted reports whether every child has been produced.
func (w *Walker) IsCompleted() bool {
	return w.completed
}

// Close releases the underlying lister. Closing twice is a no-op.
func (w *Walker) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.current = nil
	if w.lister == nil {
		return nil
	}
	return w.lister.Close()
}

var _ treewalk.Enumerator[*Node] = (*Walker)(nil)
