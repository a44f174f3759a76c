package filesystem

import (
	"errors"
	"io"
	"io/fs"
)

// batchReader is the part of *os.File and fs.ReadDirFile the stream needs.
type batchReader interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}

// entryStream turns a batch reader into a DirStream. Entries are pulled from
// the handle batch entries at a time.
type entryStream struct {
	reader  batchReader
	batch   int
	buf     []fs.DirEntry
	pending error
	eof     bool
	closed  bool
}

func newEntryStream(reader batchReader, batch int) *entryStream {
	if batch <= 0 {
		batch = 1
	}
	return &entryStream{reader: reader, batch: batch}
}

func (s *entryStream) Next() (FileInfo, error) {
	if s.closed {
		return nil, fs.ErrClosed
	}

	for {
		for len(s.buf) > 0 {
			entry := s.buf[0]
			s.buf = s.buf[1:]

			info, err := entry.Info()
			if err != nil {
				// Removed between readdir and lstat
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, &EntryError{Name: entry.Name(), Err: err}
			}
			return info, nil
		}

		if s.pending != nil {
			return nil, s.pending
		}
		if s.eof {
			return nil, io.EOF
		}

		entries, err := s.reader.ReadDir(s.batch)
		s.buf = entries
		switch {
		case errors.Is(err, io.EOF):
			s.eof = true
		case err != nil:
			s.pending = err
		}
	}
}

func (s *entryStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.buf = nil
	return s.reader.Close()
}
