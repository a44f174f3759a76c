package lister

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/treewalk/internal/files/filesystem"
	"github.com/vvka-141/treewalk/internal/logging"
	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// newFixture builds /x with files b.txt, d.txt and directories a, c.
func newFixture() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem("/x")
	mfs.AddFile("b.txt", 2)
	mfs.AddFile("d.txt", 4)
	mfs.AddDir("a")
	mfs.AddFile("c/inner.txt", 1)
	return mfs
}

func drain(t *testing.T, l *Lister) []*treewalk.PathRecord {
	t.Helper()
	var recs []*treewalk.PathRecord
	for {
		ok, err := l.Next()
		require.NoError(t, err)
		if !ok {
			return recs
		}
		rec, err := l.Current()
		require.NoError(t, err)
		recs = append(recs, rec)
	}
}

func names(recs []*treewalk.PathRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name()
	}
	return out
}

func TestLister_Ordering(t *testing.T) {
	tests := []struct {
		name  string
		order treewalk.EnumerationOrder
		want  []string
	}{
		{"none keeps provider order", treewalk.OrderNone, []string{"a", "b.txt", "c", "d.txt"}},
		{"files then directories", treewalk.OrderFilesThenDirectories, []string{"b.txt", "d.txt", "a", "c"}},
		{"directories then files", treewalk.OrderDirectoriesThenFiles, []string{"a", "c", "b.txt", "d.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := newFixture()
			l, err := New(mfs, "/x", treewalk.Options{Order: tt.order})
			require.NoError(t, err)
			defer l.Close()

			assert.Equal(t, tt.want, names(drain(t, l)))
			assert.True(t, l.IsCompleted())
			assert.Equal(t, 0, mfs.OpenStreams())
		})
	}
}

func TestLister_DirectoryFlagAndSize(t *testing.T) {
	for _, order := range []treewalk.EnumerationOrder{
		treewalk.OrderNone,
		treewalk.OrderFilesThenDirectories,
		treewalk.OrderDirectoriesThenFiles,
	} {
		t.Run(order.String(), func(t *testing.T) {
			l, err := New(newFixture(), "/x", treewalk.Options{Order: order})
			require.NoError(t, err)
			defer l.Close()

			for _, rec := range drain(t, l) {
				size, known := rec.Size()
				switch rec.Name() {
				case "a", "c":
					assert.True(t, rec.IsDir(), rec.Name())
					assert.False(t, known, "directories carry no size")
				case "b.txt":
					assert.False(t, rec.IsDir())
					assert.True(t, known)
					assert.Equal(t, int64(2), size)
				case "d.txt":
					assert.Equal(t, int64(4), size)
				}
				assert.Equal(t, "/x", rec.Parent().Name())
				assert.Equal(t, 1, rec.Depth())
			}
		})
	}
}

func TestLister_Pattern(t *testing.T) {
	mfs := newFixture()
	mfs.AddDir("logs.txt")

	l, err := New(mfs, "/x", treewalk.Options{Pattern: "*.txt", Order: treewalk.OrderFilesThenDirectories})
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, []string{"b.txt", "d.txt", "logs.txt"}, names(drain(t, l)))
}

func TestLister_MatchAllPatterns(t *testing.T) {
	for _, pattern := range []string{"", "*", "*.*"} {
		l, err := New(newFixture(), "/x", treewalk.Options{Pattern: pattern})
		require.NoError(t, err)
		assert.Len(t, drain(t, l), 4, "pattern %q", pattern)
		l.Close()
	}
}

func TestLister_InvalidArguments(t *testing.T) {
	mfs := newFixture()

	tests := []struct {
		name string
		make func() (*Lister, error)
	}{
		{"empty path", func() (*Lister, error) { return New(mfs, "", treewalk.Options{}) }},
		{"blank path", func() (*Lister, error) { return New(mfs, "   ", treewalk.Options{}) }},
		{"nil provider", func() (*Lister, error) { return New(nil, "/x", treewalk.Options{}) }},
		{"nil parent", func() (*Lister, error) { return NewForRecord(mfs, nil, treewalk.Options{}) }},
		{"malformed pattern", func() (*Lister, error) { return New(mfs, "/x", treewalk.Options{Pattern: "[a-"}) }},
		{"unknown order", func() (*Lister, error) { return New(mfs, "/x", treewalk.Options{Order: 7}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := tt.make()
			assert.Nil(t, l)
			assert.ErrorIs(t, err, treewalk.ErrInvalidArgument)
		})
	}
	assert.Equal(t, 0, mfs.OpenedTotal(), "construction never touches the filesystem")
}

func TestLister_MissingDirectory(t *testing.T) {
	t.Run("safe mode yields nothing", func(t *testing.T) {
		l, err := New(newFixture(), "/x/missing", treewalk.Options{SafeMode: true})
		require.NoError(t, err)
		defer l.Close()

		ok, err := l.Next()
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, l.IsCompleted())
	})

	t.Run("strict mode propagates", func(t *testing.T) {
		l, err := New(newFixture(), "/x/missing", treewalk.Options{})
		require.NoError(t, err)
		defer l.Close()

		ok, err := l.Next()
		assert.False(t, ok)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "/x/missing")

		// The failure completes the lister
		ok, err = l.Next()
		assert.False(t, ok)
		assert.NoError(t, err)
	})
}

func TestLister_SafeModeSwallowsTransientErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"permission", fs.ErrPermission},
		{"not found", fs.ErrNotExist},
		{"path too long", &fs.PathError{Op: "open", Path: "/x/c", Err: syscall.ENAMETOOLONG}},
		{"io", &fs.PathError{Op: "open", Path: "/x/c", Err: syscall.EIO}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := newFixture()
			mfs.FailOpen("c", tt.err)

			var out bytes.Buffer
			var skipped []string
			opts := treewalk.Options{
				Order:    treewalk.OrderFilesThenDirectories,
				SafeMode: true,
				Logger:   logging.NewConsoleLoggerTo(&out, true),
				OnSkip:   func(path string, err error) { skipped = append(skipped, path) },
			}

			l, err := New(mfs, "/x/c", opts)
			require.NoError(t, err)
			defer l.Close()

			assert.Empty(t, drain(t, l))
			// Both sources hit the failure independently
			assert.Equal(t, []string{"/x/c", "/x/c"}, skipped)
			assert.Contains(t, out.String(), "[VERBOSE] Skipping files of /x/c")
		})
	}
}

func TestLister_StrictModePropagatesPermission(t *testing.T) {
	mfs := newFixture()
	mfs.FailOpen("c", fs.ErrPermission)

	l, err := New(mfs, "/x/c", treewalk.Options{})
	require.NoError(t, err)
	defer l.Close()

	_, err = l.Next()
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestLister_UnclassifiedErrorsAlwaysPropagate(t *testing.T) {
	boom := errors.New("boom")
	mfs := newFixture()
	mfs.FailOpen("/x", boom)

	l, err := New(mfs, "/x", treewalk.Options{SafeMode: true})
	require.NoError(t, err)
	defer l.Close()

	_, err = l.Next()
	assert.ErrorIs(t, err, boom)
}

type neverTransient struct{}

func (neverTransient) IsTransient(error) bool { return false }

func TestLister_CustomClassifier(t *testing.T) {
	mfs := newFixture()
	mfs.FailOpen("/x", fs.ErrPermission)

	l, err := New(mfs, "/x", treewalk.Options{SafeMode: true, Classifier: neverTransient{}})
	require.NoError(t, err)
	defer l.Close()

	_, err = l.Next()
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestLister_ReadFailureMidListing(t *testing.T) {
	eio := &fs.PathError{Op: "readdirent", Path: "/x", Err: syscall.EIO}

	t.Run("safe mode keeps what was read", func(t *testing.T) {
		mfs := newFixture()
		mfs.FailRead("/x", 2, eio)

		l, err := New(mfs, "/x", treewalk.Options{SafeMode: true})
		require.NoError(t, err)
		defer l.Close()

		assert.Equal(t, []string{"a", "b.txt"}, names(drain(t, l)))
		assert.Equal(t, 0, mfs.OpenStreams())
	})

	t.Run("strict mode fails after partial output", func(t *testing.T) {
		mfs := newFixture()
		mfs.FailRead("/x", 1, eio)

		l, err := New(mfs, "/x", treewalk.Options{})
		require.NoError(t, err)
		defer l.Close()

		ok, err := l.Next()
		require.NoError(t, err)
		require.True(t, ok)

		_, err = l.Next()
		assert.ErrorIs(t, err, syscall.EIO)
		assert.True(t, l.IsCompleted())
		assert.Equal(t, 0, mfs.OpenStreams(), "a failed lister releases its handles")
	})
}

func TestLister_UnreadableEntry(t *testing.T) {
	denied := &fs.PathError{Op: "lstat", Path: "/x/b.txt", Err: syscall.EACCES}

	t.Run("safe mode skips only that entry", func(t *testing.T) {
		mfs := newFixture()
		mfs.FailEntry("b.txt", denied)
		var buf bytes.Buffer

		l, err := New(mfs, "/x", treewalk.Options{SafeMode: true, Logger: logging.NewConsoleLoggerTo(&buf, true)})
		require.NoError(t, err)
		defer l.Close()

		assert.Equal(t, []string{"a", "c", "d.txt"}, names(drain(t, l)))
		assert.Contains(t, buf.String(), `Skipping entry "b.txt"`)
	})

	t.Run("strict mode fails", func(t *testing.T) {
		mfs := newFixture()
		mfs.FailEntry("b.txt", denied)

		l, err := New(mfs, "/x", treewalk.Options{})
		require.NoError(t, err)
		defer l.Close()

		ok, err := l.Next()
		require.NoError(t, err)
		require.True(t, ok)

		_, err = l.Next()
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.Equal(t, 0, mfs.OpenStreams())
	})
}

func TestLister_CloseFailure(t *testing.T) {
	boom := errors.New("close failed")

	t.Run("safe mode logs it", func(t *testing.T) {
		mfs := newFixture()
		mfs.FailClose("/x", boom)
		var buf bytes.Buffer

		l, err := New(mfs, "/x", treewalk.Options{
			Order:    treewalk.OrderFilesThenDirectories,
			SafeMode: true,
			Logger:   logging.NewConsoleLoggerTo(&buf, true),
		})
		require.NoError(t, err)
		defer l.Close()

		assert.Equal(t, []string{"b.txt", "d.txt", "a", "c"}, names(drain(t, l)))
		assert.Contains(t, buf.String(), "close failed")
		assert.Equal(t, 0, mfs.OpenStreams())
	})

	t.Run("safe mode keeps a swallowed failure swallowed", func(t *testing.T) {
		mfs := newFixture()
		mfs.FailRead("/x", 1, &fs.PathError{Op: "readdirent", Path: "/x", Err: syscall.EIO})
		mfs.FailClose("/x", boom)

		l, err := New(mfs, "/x", treewalk.Options{SafeMode: true})
		require.NoError(t, err)
		defer l.Close()

		assert.Equal(t, []string{"a"}, names(drain(t, l)))
	})

	t.Run("strict mode reports it", func(t *testing.T) {
		mfs := newFixture()
		mfs.FailClose("/x", boom)

		l, err := New(mfs, "/x", treewalk.Options{})
		require.NoError(t, err)
		defer l.Close()

		var gotErr error
		for {
			ok, err := l.Next()
			if err != nil {
				gotErr = err
				break
			}
			if !ok {
				break
			}
		}
		assert.ErrorIs(t, gotErr, boom)
		assert.True(t, l.IsCompleted())
	})
}

func TestLister_Protocol(t *testing.T) {
	l, err := New(newFixture(), "/x", treewalk.Options{})
	require.NoError(t, err)

	_, err = l.Current()
	assert.ErrorIs(t, err, treewalk.ErrNoCurrent, "Current before Next")

	assert.ErrorIs(t, l.Reset(), treewalk.ErrUnsupportedOperation)

	drain(t, l)
	_, err = l.Current()
	assert.ErrorIs(t, err, treewalk.ErrNoCurrent, "Current after completion")

	for i := 0; i < 3; i++ {
		ok, err := l.Next()
		assert.False(t, ok)
		assert.NoError(t, err)
	}
	assert.ErrorIs(t, l.Reset(), treewalk.ErrUnsupportedOperation)

	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	_, err = l.Next()
	assert.ErrorIs(t, err, treewalk.ErrUseAfterClose)
	_, err = l.Current()
	assert.ErrorIs(t, err, treewalk.ErrUseAfterClose)
	assert.ErrorIs(t, l.Reset(), treewalk.ErrUseAfterClose, "Reset after Close")
}

func TestLister_OpensSecondSourceLazily(t *testing.T) {
	mfs := newFixture()
	l, err := New(mfs, "/x", treewalk.Options{Order: treewalk.OrderFilesThenDirectories})
	require.NoError(t, err)
	defer l.Close()

	ok, err := l.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, mfs.OpenedTotal())
	assert.Equal(t, 1, mfs.OpenStreams())

	drain(t, l)
	assert.Equal(t, 2, mfs.OpenedTotal())
	assert.Equal(t, 0, mfs.OpenStreams())
}

func TestLister_CloseMidIterationReleasesStreams(t *testing.T) {
	mfs := newFixture()
	l, err := New(mfs, "/x", treewalk.Options{Order: treewalk.OrderDirectoriesThenFiles})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		ok, err := l.Next()
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, 1, mfs.OpenStreams())

	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
	assert.Equal(t, 0, mfs.OpenStreams())
}

func TestLister_CloseBeforeNext(t *testing.T) {
	mfs := newFixture()
	l, err := New(mfs, "/x", treewalk.Options{})
	require.NoError(t, err)

	require.NoError(t, l.Close())
	assert.Equal(t, 0, mfs.OpenedTotal())
}

func TestLister_NewForRecordKeepsParentChain(t *testing.T) {
	root, err := treewalk.NewRootRecord("/x")
	require.NoError(t, err)
	c, err := treewalk.NewRecord(root, "c", true)
	require.NoError(t, err)

	l, err := NewForRecord(newFixture(), c, treewalk.Options{})
	require.NoError(t, err)
	defer l.Close()

	recs := drain(t, l)
	require.Len(t, recs, 1)
	assert.Same(t, c, recs[0].Parent())
	assert.Same(t, c, l.Parent())
	assert.Equal(t, treewalk.JoinPath("/x", "c", "inner.txt"), recs[0].FullPath())
	assert.Equal(t, 2, recs[0].Depth())
}

func TestLister_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bb"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.txt"), []byte("c"), 0644))

	l, err := New(filesystem.NewOSFileSystem(), dir, treewalk.Options{
		Order:    treewalk.OrderFilesThenDirectories,
		SafeMode: true,
	})
	require.NoError(t, err)
	defer l.Close()

	recs := drain(t, l)
	require.Len(t, recs, 3)

	// Files come first; their order is whatever the directory yields
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, names(recs[:2]))
	assert.False(t, recs[0].IsDir())
	assert.False(t, recs[1].IsDir())
	assert.Equal(t, "sub", recs[2].Name())
	assert.True(t, recs[2].IsDir())
	assert.Equal(t, filepath.Join(dir, "sub"), recs[2].FullPath())
}

func TestLister_SymlinkToDirectoryGroupsWithDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "real"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), nil, 0644))
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	l, err := New(filesystem.NewOSFileSystem(), dir, treewalk.Options{Order: treewalk.OrderDirectoriesThenFiles})
	require.NoError(t, err)
	defer l.Close()

	recs := drain(t, l)
	require.Len(t, recs, 3)
	assert.ElementsMatch(t, []string{"link", "real"}, names(recs[:2]))
	assert.Equal(t, "file", recs[2].Name())
}

func TestLister_SymlinkToFileReportsTargetSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big.bin"), make([]byte, 10000), 0644))
	if err := os.Symlink(filepath.Join(dir, "big.bin"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	for _, order := range []treewalk.EnumerationOrder{
		treewalk.OrderNone,
		treewalk.OrderFilesThenDirectories,
		treewalk.OrderDirectoriesThenFiles,
	} {
		t.Run(order.String(), func(t *testing.T) {
			l, err := New(filesystem.NewOSFileSystem(), dir, treewalk.Options{Order: order})
			require.NoError(t, err)
			defer l.Close()

			recs := drain(t, l)
			require.Len(t, recs, 2)
			for _, rec := range recs {
				assert.False(t, rec.IsDir(), rec.Name())
				size, ok := rec.Size()
				require.True(t, ok, rec.Name())
				assert.Equal(t, int64(10000), size, rec.Name())
			}
		})
	}
}

func TestLister_DanglingSymlinkIsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	l, err := New(filesystem.NewOSFileSystem(), dir, treewalk.Options{Order: treewalk.OrderFilesThenDirectories})
	require.NoError(t, err)
	defer l.Close()

	recs := drain(t, l)
	require.Len(t, recs, 1)
	assert.Equal(t, "dangling", recs[0].Name())
	assert.False(t, recs[0].IsDir())
}

func BenchmarkLister_Memory(b *testing.B) {
	mfs := filesystem.NewMemoryFileSystem("/bench")
	for i := 0; i < 1000; i++ {
		mfs.AddFile(fmt.Sprintf("d/f%04d.txt", i), int64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l, _ := New(mfs, "/bench/d", treewalk.Options{Order: treewalk.OrderFilesThenDirectories})
		for {
			ok, err := l.Next()
			if err != nil || !ok {
				break
			}
		}
		l.Close()
	}
}
