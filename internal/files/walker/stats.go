package walker

import "github.com/vvka-141/treewalk/pkg/treewalk"

// Stats accumulates totals over a walk. The zero value is ready to use.
// Not safe for concurrent use.
type Stats struct {
	Files       int   `json:"files" yaml:"files"`
	Directories int   `json:"directories" yaml:"directories"`
	Bytes       int64 `json:"bytes" yaml:"bytes"`
	Skipped     int   `json:"skipped" yaml:"skipped"`

	SkippedPaths []string `json:"skipped_paths,omitempty" yaml:"skipped_paths,omitempty"`

	seen map[string]struct{}
}

// Add counts one record.
func (s *Stats) Add(rec *treewalk.PathRecord) {
	if rec.IsDir() {
		s.Directories++
		return
	}
	s.Files++
	if size, ok := rec.Size(); ok {
		s.Bytes += size
	}
}

// RecordSkip counts a listing swallowed by safe mode. Its signature matches
// treewalk.Options.OnSkip. A directory skipped by both sources of a grouped
// order is counted once, even when skips below it are recorded in between.
func (s *Stats) RecordSkip(path string, err error) {
	if _, dup := s.seen[path]; dup {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	s.seen[path] = struct{}{}
	s.Skipped++
	s.SkippedPaths = append(s.SkippedPaths, path)
}

// Total returns the number of entries counted.
func (s *Stats) Total() int {
	return s.Files + s.Directories
}
