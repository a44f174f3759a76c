package filesystem

import (
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type readFailure struct {
	after int
	err   error
}

// memoryStream implements DirStream over a snapshot of a directory's children
type memoryStream struct {
	fs        *MemoryFileSystem
	entries   []*memoryFileInfo
	pos       int
	failure   *readFailure
	entryErrs map[string]error // by entry name
	closeErr  error
	closed    bool
}

func (s *memoryStream) Next() (FileInfo, error) {
	if s.closed {
		return nil, fs.ErrClosed
	}
	if s.failure != nil && s.pos >= s.failure.after {
		return nil, s.failure.err
	}
	if s.pos >= len(s.entries) {
		return nil, io.EOF
	}
	info := s.entries[s.pos]
	s.pos++
	if err, ok := s.entryErrs[info.name]; ok {
		return nil, &EntryError{Name: info.name, Err: err}
	}
	return info, nil
}

func (s *memoryStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.fs.release()
	return s.closeErr
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Listings are returned in lexical name order. Failures can be injected per
// directory to exercise error handling without touching real permissions.
type MemoryFileSystem struct {
	mu          sync.Mutex
	entries     map[string]*memoryFileInfo // absolute path -> metadata
	root        string
	openErrors  map[string]error
	readErrors  map[string]readFailure
	entryErrors map[string]error
	closeErrors map[string]error
	openStreams int
	opened      int
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries:    make(map[string]*memoryFileInfo),
		root:       root,
		openErrors:  make(map[string]error),
		readErrors:  make(map[string]readFailure),
		entryErrors: make(map[string]error),
		closeErrors: make(map[string]error),
	}
	mfs.entries[root] = newDirInfo(root, time.Now())
	return mfs
}

// Root returns the normalized root path.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds a file of the given size, creating parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, size int64) {
	mfs.AddFileWithTime(filePath, size, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, size int64, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	mfs.entries[absPath] = &memoryFileInfo{
		name:    path.Base(absPath),
		size:    size,
		mode:    0644,
		modTime: modTime,
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory, creating parent directories.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.entries[absPath]; !exists {
		mfs.entries[absPath] = newDirInfo(absPath, time.Now())
	}
	mfs.ensureDirectoriesExist(absPath)
}

// FailOpen makes every OpenDir of dirPath return err unchanged.
func (mfs *MemoryFileSystem) FailOpen(dirPath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.openErrors[mfs.resolve(dirPath)] = err
}

// FailRead makes streams over dirPath return err after yielding `after` entries.
func (mfs *MemoryFileSystem) FailRead(dirPath string, after int, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.readErrors[mfs.resolve(dirPath)] = readFailure{after: after, err: err}
}

// FailEntry makes listings report err for the entry at entryPath instead
// of describing it. The rest of the listing is unaffected.
func (mfs *MemoryFileSystem) FailEntry(entryPath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.entryErrors[mfs.resolve(entryPath)] = err
}

// FailClose makes closing a stream over dirPath return err. The stream is
// still released.
func (mfs *MemoryFileSystem) FailClose(dirPath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.closeErrors[mfs.resolve(dirPath)] = err
}

// OpenStreams returns the number of streams opened and not yet closed.
func (mfs *MemoryFileSystem) OpenStreams() int {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return mfs.openStreams
}

// OpenedTotal returns the number of successful OpenDir calls so far.
func (mfs *MemoryFileSystem) OpenedTotal() int {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return mfs.opened
}

// OpenDir implements FileSystemProvider.OpenDir
func (mfs *MemoryFileSystem) OpenDir(dirPath string) (DirStream, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	if err, ok := mfs.openErrors[absPath]; ok {
		return nil, err
	}

	info, exists := mfs.entries[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: dirPath, Err: fs.ErrNotExist}
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: syscall.ENOTDIR}
	}

	stream := &memoryStream{
		fs:       mfs,
		entries:  mfs.childrenOf(absPath),
		closeErr: mfs.closeErrors[absPath],
	}
	for p, err := range mfs.entryErrors {
		if path.Dir(p) == absPath {
			if stream.entryErrs == nil {
				stream.entryErrs = make(map[string]error)
			}
			stream.entryErrs[path.Base(p)] = err
		}
	}
	if failure, ok := mfs.readErrors[absPath]; ok {
		stream.failure = &failure
	}

	mfs.openStreams++
	mfs.opened++
	return stream, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	info, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return info, nil
}

func (mfs *MemoryFileSystem) release() {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.openStreams--
}

// resolve maps a caller path onto the virtual tree. Relative paths are
// taken relative to the root. Caller must hold mu or be in setup.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)

	var absPath string
	switch {
	case p == "." || p == "":
		absPath = mfs.root
	case strings.HasPrefix(p, "/") || path.IsAbs(p):
		absPath = p
	default:
		absPath = path.Join(mfs.root, p)
	}
	return path.Clean(absPath)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(entryPath string) {
	dir := path.Dir(entryPath)
	if dir == entryPath {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}

	mfs.entries[dir] = newDirInfo(dir, time.Now())
	mfs.ensureDirectoriesExist(dir)
}

// childrenOf returns the direct children of dir sorted by name
func (mfs *MemoryFileSystem) childrenOf(dir string) []*memoryFileInfo {
	var children []*memoryFileInfo
	for p, info := range mfs.entries {
		if p != dir && path.Dir(p) == dir {
			children = append(children, info)
		}
	}

	sort.Slice(children, func(i, j int) bool {
		return children[i].name < children[j].name
	})
	return children
}

func newDirInfo(dirPath string, modTime time.Time) *memoryFileInfo {
	return &memoryFileInfo{
		name:    path.Base(dirPath),
		mode:    0755 | fs.ModeDir,
		modTime: modTime,
	}
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
