package filesystem

import (
	"io/fs"
)

// EntryError reports that one entry of a listing could not be described.
// The stream that returned it stays usable; the next call moves on to the
// following entry.
type EntryError struct {
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	return "entry " + e.Name + ": " + e.Err.Error()
}

func (e *EntryError) Unwrap() error { return e.Err }

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// DirStream is a forward-only listing of the direct children of one directory.
// It is not safe for concurrent use.
type DirStream interface {
	// Next returns the next entry, or io.EOF once the listing is exhausted.
	// Entries for symbolic links describe the link itself, not its target.
	// A *EntryError affects that entry only.
	Next() (FileInfo, error)

	// Close releases the underlying handle. Closing twice is a no-op.
	Close() error
}

// FileSystemProvider is the platform listing primitive.
// Implementations must be safe for concurrent use; every stream they return
// owns its own handle.
type FileSystemProvider interface {
	// OpenDir opens a stream over the entries of the directory at path.
	// Errors are returned as produced by the platform so callers can
	// classify them (fs.ErrNotExist, fs.ErrPermission, *fs.PathError, ...).
	// Some providers defer failures to the first Next call.
	OpenDir(path string) (DirStream, error)

	// Stat returns file information for the given path, following symbolic links.
	Stat(path string) (FileInfo, error)
}
