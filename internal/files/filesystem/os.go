package filesystem

import (
	"os"

	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// OSFileSystem implements FileSystemProvider for the OS filesystem.
// Directory handles are read in batches so listing a directory never loads
// all of its entries at once.
type OSFileSystem struct {
	batch int
}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return NewOSFileSystemWithBatch(treewalk.DefaultReadDirBatch)
}

// NewOSFileSystemWithBatch creates an OS provider that reads batch entries per
// directory read. Values below 1 are treated as 1.
func NewOSFileSystemWithBatch(batch int) *OSFileSystem {
	if batch < 1 {
		batch = 1
	}
	return &OSFileSystem{batch: batch}
}

// OpenDir opens path for listing. Opening a regular file succeeds; the
// "not a directory" failure is reported by the first Next.
func (p *OSFileSystem) OpenDir(path string) (DirStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return newEntryStream(f, p.batch), nil
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	// os.Stat returns os.FileInfo which implements fs.FileInfo
	return os.Stat(path)
}

var _ FileSystemProvider = (*OSFileSystem)(nil)
