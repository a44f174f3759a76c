package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"

	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// SkipDir and SkipAll are the io/fs sentinels, accepted from a VisitFunc.
var (
	SkipDir = fs.SkipDir
	SkipAll = fs.SkipAll
)

// VisitFunc is called for every descendant in pre-order with err == nil.
//
// When listing a directory's children fails (and safe mode does not swallow
// the failure), it is called a second time for that directory with the
// error. Returning nil then continues with the directory's siblings.
//
// Returning SkipDir from a nil-error call prevents descending into the node.
// Returning SkipAll ends the walk without error. Any other error ends the
// walk and is returned by Walk.
type VisitFunc func(n *Node, err error) error

type frame struct {
	walker *Walker
	depth  int
}

// Walk visits every descendant of root in pre-order. The root itself is not
// visited.
func Walk(root *Node, fn VisitFunc) error {
	return WalkDepth(root, 0, fn)
}

// WalkDepth is Walk limited to maxDepth levels below root; the root's
// children are level 1. A maxDepth of zero or less means no limit.
func WalkDepth(root *Node, maxDepth int, fn VisitFunc) (err error) {
	if root == nil {
		return fmt.Errorf("%w: root node must not be nil", treewalk.ErrInvalidArgument)
	}
	if fn == nil {
		return fmt.Errorf("%w: visit function must not be nil", treewalk.ErrInvalidArgument)
	}

	stack := []frame{{walker: root.Children(), depth: 1}}
	defer func() {
		for _, f := range stack {
			if closeErr := f.walker.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}
	}()

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		ok, nextErr := top.walker.Next()
		if nextErr != nil || !ok {
			stack = stack[:len(stack)-1]
			closeErr := top.walker.Close()
			if nextErr == nil {
				nextErr = closeErr
			}
			if nextErr == nil {
				continue
			}
			if verr := fn(top.walker.Node(), nextErr); verr != nil {
				if errors.Is(verr, SkipDir) {
					continue
				}
				if errors.Is(verr, SkipAll) {
					return nil
				}
				return verr
			}
			continue
		}

		n, curErr := top.walker.Current()
		if curErr != nil {
			return curErr
		}

		if verr := fn(n, nil); verr != nil {
			if errors.Is(verr, SkipDir) {
				continue
			}
			if errors.Is(verr, SkipAll) {
				return nil
			}
			return verr
		}

		if n.IsDir() && (maxDepth <= 0 || top.depth < maxDepth) {
			stack = append(stack, frame{walker: n.Children(), depth: top.depth + 1})
		}
	}
	return nil
}

// All returns the pre-order stream of root's descendants as an iterator.
// Listing failures are yielded as (directory, err) pairs; the stream goes on
// with the directory's siblings if the consumer keeps ranging.
func All(root *Node, maxDepth int) iter.Seq2[*Node, error] {
	return func(yield func(*Node, error) bool) {
		stopped := false
		err := WalkDepth(root, maxDepth, func(n *Node, err error) error {
			if !yield(n, err) {
				stopped = true
				return SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield(root, err)
		}
	}
}

// Collect walks root and converts every descendant with factory. It stops at
// the first listing failure and returns what was collected so far.
func Collect[T any](root *Node, maxDepth int, factory Factory[T]) ([]T, error) {
	if factory == nil {
		return nil, fmt.Errorf("%w: factory must not be nil", treewalk.ErrInvalidArgument)
	}

	var items []T
	err := WalkDepth(root, maxDepth, func(n *Node, err error) error {
		if err != nil {
			return err
		}
		items = append(items, factory(n.Record()))
		return nil
	})
	return items, err
}
