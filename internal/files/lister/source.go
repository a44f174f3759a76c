package lister

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/vvka-141/treewalk/internal/files/filesystem"
	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// category selects which entries a source yields.
type category int

const (
	categoryAll category = iota
	categoryFiles
	categoryDirectories
)

func (c category) String() string {
	switch c {
	case categoryFiles:
		return "files"
	case categoryDirectories:
		return "directories"
	default:
		return "entries"
	}
}

// source is one sub-enumerator of a Lister. It opens its own directory
// stream on first use and owns it until exhaustion, failure or close.
type source struct {
	env    *environment
	cat    category
	stream filesystem.DirStream
	opened bool
	done   bool
}

// environment is the state shared by the sources of one Lister.
type environment struct {
	fsys    filesystem.FileSystemProvider
	parent  *treewalk.PathRecord
	dirPath string
	opts    treewalk.Options
	logger  treewalk.Logger
	errs    treewalk.ErrorClassifier
}

// next returns the next matching record, or false once the source is
// exhausted. In safe mode a transient failure exhausts the source silently.
func (s *source) next() (*treewalk.PathRecord, bool, error) {
	if s.done {
		return nil, false, nil
	}

	if !s.opened {
		s.opened = true
		stream, err := s.env.fsys.OpenDir(s.env.dirPath)
		if err != nil {
			return nil, false, s.fail(err)
		}
		s.stream = stream
	}

	for {
		info, err := s.stream.Next()
		if errors.Is(err, io.EOF) {
			s.done = true
			return nil, false, s.release()
		}
		var entryErr *filesystem.EntryError
		if errors.As(err, &entryErr) && s.env.opts.SafeMode && s.env.errs.IsTransient(entryErr.Err) {
			s.env.logger.Verbose("Skipping entry %q of %s: %v", entryErr.Name, s.env.dirPath, entryErr.Err)
			continue
		}
		if err != nil {
			return nil, false, s.fail(err)
		}

		if !s.env.opts.Match(info.Name()) {
			continue
		}

		resolved, isDir, keep := s.accept(info)
		if !keep {
			continue
		}

		rec, err := s.record(info.Name(), resolved, isDir)
		if err != nil {
			// Blank names are legal on some filesystems but cannot form a record
			s.env.logger.Verbose("Ignoring entry %q in %s: %v", info.Name(), s.env.dirPath, err)
			continue
		}
		return rec, true, nil
	}
}

// accept decides whether info belongs to this source and whether it is a
// directory. The returned info describes the link target for symbolic links.
func (s *source) accept(info filesystem.FileInfo) (resolved filesystem.FileInfo, isDir bool, keep bool) {
	switch s.cat {
	case categoryAll:
		resolved = s.probe(info)
		return resolved, resolved.IsDir(), true
	case categoryFiles:
		resolved = s.resolve(info)
		return resolved, false, !resolved.IsDir()
	default:
		resolved = s.resolve(info)
		return resolved, true, resolved.IsDir()
	}
}

// probe re-checks the entry through the provider to tell files from
// directories in a combined listing. If the probe fails the listing's own
// info is used.
func (s *source) probe(info filesystem.FileInfo) filesystem.FileInfo {
	target, err := s.env.fsys.Stat(treewalk.JoinPath(s.env.dirPath, info.Name()))
	if err != nil {
		return info
	}
	return target
}

// resolve follows symbolic links so a link to a directory is grouped with
// directories and a link to a file reports the target's size. A dangling
// link counts as a file.
func (s *source) resolve(info filesystem.FileInfo) filesystem.FileInfo {
	if info.Mode()&fs.ModeSymlink == 0 {
		return info
	}
	return s.probe(info)
}

// record names the entry as listed; the target only supplies its kind and size.
func (s *source) record(name string, info filesystem.FileInfo, isDir bool) (*treewalk.PathRecord, error) {
	if isDir {
		return treewalk.NewRecord(s.env.parent, name, true)
	}
	return treewalk.NewFileRecord(s.env.parent, name, info.Size())
}

// fail ends the source. The error is swallowed when safe mode is on and the
// classifier deems it transient.
func (s *source) fail(err error) error {
	s.done = true
	closeErr := s.release()

	if s.env.opts.SafeMode && s.env.errs.IsTransient(err) {
		s.env.logger.Verbose("Skipping %s of %s: %v", s.cat, s.env.dirPath, err)
		if s.env.opts.OnSkip != nil {
			s.env.opts.OnSkip(s.env.dirPath, err)
		}
		return nil
	}
	return errors.Join(fmt.Errorf("failed to list %s: %w", s.env.dirPath, err), closeErr)
}

// release closes the stream if one is open. Close failures only surface in
// strict mode; safe mode logs them.
func (s *source) release() error {
	if s.stream == nil {
		return nil
	}
	stream := s.stream
	s.stream = nil
	if err := stream.Close(); err != nil {
		if s.env.opts.SafeMode {
			s.env.logger.Verbose("Ignoring close failure for %s: %v", s.env.dirPath, err)
			return nil
		}
		return fmt.Errorf("failed to close listing of %s: %w", s.env.dirPath, err)
	}
	return nil
}
