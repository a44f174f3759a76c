package filesystem

import (
	"io/fs"
	"path"
	"strings"
	"syscall"

	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// IOFileSystem implements FileSystemProvider over an io/fs.FS such as
// embed.FS, os.DirFS or fstest.MapFS.
type IOFileSystem struct {
	fsys  fs.FS
	root  string // root path within fsys (always uses forward slashes)
	batch int
}

// NewIOFileSystem creates a provider over fsys. The root parameter specifies
// the subdirectory within fsys that relative paths resolve against.
// All paths are normalized to use forward slashes for consistency with io/fs.
func NewIOFileSystem(fsys fs.FS, root string) *IOFileSystem {
	return &IOFileSystem{
		fsys:  fsys,
		root:  path.Clean(toSlash(root)),
		batch: treewalk.DefaultReadDirBatch,
	}
}

// OpenDir implements FileSystemProvider.OpenDir
func (p *IOFileSystem) OpenDir(dirPath string) (DirStream, error) {
	name := p.resolve(dirPath)

	f, err := p.fsys.Open(name)
	if err != nil {
		return nil, err
	}

	dir, ok := f.(fs.ReadDirFile)
	if !ok {
		f.Close()
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: syscall.ENOTDIR}
	}
	return newEntryStream(dir, p.batch), nil
}

// Stat implements FileSystemProvider.Stat
func (p *IOFileSystem) Stat(statPath string) (FileInfo, error) {
	return fs.Stat(p.fsys, p.resolve(statPath))
}

// resolve maps a caller path to a valid io/fs name. Leading slashes are
// stripped because io/fs names are unrooted.
func (p *IOFileSystem) resolve(name string) string {
	name = toSlash(name)

	var resolved string
	switch {
	case name == "." || name == "":
		resolved = p.root
	case strings.HasPrefix(name, "/"):
		resolved = strings.TrimLeft(name, "/")
	default:
		resolved = path.Join(p.root, name)
	}

	resolved = path.Clean(resolved)
	if resolved == "" || resolved == "/" {
		return "."
	}
	return resolved
}

// toSlash converts backslashes explicitly so Windows-style input works on
// every platform, not just on Windows.
func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

var _ FileSystemProvider = (*IOFileSystem)(nil)
