package treewalk

import (
	"fmt"
	"os"
	"strings"
)

// Separator is the separator used to join record names into paths.
const Separator = string(os.PathSeparator)

// PathRecord describes one filesystem entry relative to its parent.
// A record is immutable once constructed. Parent is a plain back-pointer: a
// record never references its children, so chains are finite and acyclic.
type PathRecord struct {
	name    string
	parent  *PathRecord
	isDir   bool
	size    int64
	hasSize bool
	depth   int
}

// NewRootRecord creates a root directory record for path.
// Existence is not checked; a missing root surfaces on the first listing.
func NewRootRecord(path string) (*PathRecord, error) {
	return NewRecord(nil, path, true)
}

// NewRecord creates a record for name under parent. A nil parent makes a root.
// Returns ErrInvalidArgument if name is empty or whitespace.
func NewRecord(parent *PathRecord, name string, isDir bool) (*PathRecord, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: record name must not be empty", ErrInvalidArgument)
	}

	r := &PathRecord{
		name:   name,
		parent: parent,
		isDir:  isDir,
	}
	if parent != nil {
		r.depth = parent.depth + 1
	}
	return r, nil
}

// NewFileRecord creates a file record with a known size.
func NewFileRecord(parent *PathRecord, name string, size int64) (*PathRecord, error) {
	r, err := NewRecord(parent, name, false)
	if err != nil {
		return nil, err
	}
	r.size = size
	r.hasSize = true
	return r, nil
}

// Name returns the entry's name relative to its parent. For a root this is
// the root path as given by the caller.
func (r *PathRecord) Name() string { return r.name }

// Parent returns the parent record, or nil for a root.
func (r *PathRecord) Parent() *PathRecord { return r.parent }

// IsDir reports whether the entry is a directory.
func (r *PathRecord) IsDir() bool { return r.isDir }

// IsRoot reports whether the record has no parent.
func (r *PathRecord) IsRoot() bool { return r.parent == nil }

// Depth returns the number of ancestors: 0 for a root.
func (r *PathRecord) Depth() int { return r.depth }

// Size returns the file size and true when it is known.
// Directories never carry a size.
func (r *PathRecord) Size() (int64, bool) {
	return r.size, r.hasSize
}

// Root returns the first record of the parent chain.
func (r *PathRecord) Root() *PathRecord {
	root := r
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// FullPath joins every name from the root down to r with Separator.
func (r *PathRecord) FullPath() string {
	return JoinPath(r.segments()...)
}

// RelativePath returns the path below the root, without the root segment.
// This is the "ignore root" form: for a drive root such as `C:\` it drops the
// drive and the separator that follows it. Roots with several components
// (`/tmp/x`) are dropped whole. A root record returns "".
func (r *PathRecord) RelativePath() string {
	segs := r.segments()
	return JoinPath(segs[1:]...)
}

// String returns FullPath.
func (r *PathRecord) String() string {
	return r.FullPath()
}

func (r *PathRecord) segments() []string {
	segs := make([]string, r.depth+1)
	for cur, i := r, r.depth; cur != nil; cur, i = cur.parent, i-1 {
		segs[i] = cur.name
	}
	return segs
}

// JoinPath joins path segments with Separator without doubling a separator
// that a segment already ends with, so `C:\` + `dir` gives `C:\dir` and
// `/` + `tmp` gives `/tmp`. Unlike filepath.Join it does not clean the result.
func JoinPath(segments ...string) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 && b.Len() > 0 && !endsWithSeparator(b.String()) {
			b.WriteString(Separator)
		}
		b.WriteString(seg)
	}
	return b.String()
}

func endsWithSeparator(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == '/' || last == os.PathSeparator
}
