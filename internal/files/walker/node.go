package walker

import (
	"fmt"
	"strings"

	"github.com/vvka-141/treewalk/internal/files/filesystem"
	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// Node is one entry of the lazy tree. Nodes are immutable and cheap; listing
// happens only when a Walker from Children is advanced.
type Node struct {
	record *treewalk.PathRecord
	fsys   filesystem.FileSystemProvider
	opts   treewalk.Options
}

// NewRoot creates the root node for rootPath. The path is not checked; a
// missing root surfaces on the first Next of its children.
func NewRoot(fsys filesystem.FileSystemProvider, rootPath string, opts treewalk.Options) (*Node, error) {
	if strings.TrimSpace(rootPath) == "" {
		return nil, fmt.Errorf("%w: root path must not be empty", treewalk.ErrInvalidArgument)
	}
	rec, err := treewalk.NewRootRecord(rootPath)
	if err != nil {
		return nil, err
	}
	return NewNode(fsys, rec, opts)
}

// NewNode wraps an existing record, for example one produced by a lister.
func NewNode(fsys filesystem.FileSystemProvider, rec *treewalk.PathRecord, opts treewalk.Options) (*Node, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: filesystem provider must not be nil", treewalk.ErrInvalidArgument)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: record must not be nil", treewalk.ErrInvalidArgument)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Node{record: rec, fsys: fsys, opts: opts}, nil
}

// child wraps a record yielded while listing n.
func (n *Node) child(rec *treewalk.PathRecord) *Node {
	return &Node{record: rec, fsys: n.fsys, opts: n.opts}
}

// Record returns the node's path record.
func (n *Node) Record() *treewalk.PathRecord { return n.record }

// Name returns the record name.
func (n *Node) Name() string { return n.record.Name() }

// IsDir reports whether the node can have children.
func (n *Node) IsDir() bool { return n.record.IsDir() }

// Depth returns the record depth; 0 for a root.
func (n *Node) Depth() int { return n.record.Depth() }

// Options returns the parameters shared by every node of the tree.
func (n *Node) Options() treewalk.Options { return n.opts }

// Children returns a fresh Walker over the node's direct children.
// Every call starts a new, independent listing.
func (n *Node) Children() *Walker {
	return &Walker{node: n}
}

func (n *Node) String() string {
	return n.record.String()
}
