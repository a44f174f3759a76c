// Package lister enumerates the direct children of one directory.
//
// A Lister is a forward-only, non-restartable sequence of path records. It
// groups entries according to an EnumerationOrder, filters them by a name
// pattern, and in safe mode turns transient listing failures into an empty
// listing instead of an error.
//
// Usage:
//
//	l, err := lister.New(filesystem.NewOSFileSystem(), "/var/log", treewalk.Options{
//	    Pattern:  "*.log",
//	    Order:    treewalk.OrderFilesThenDirectories,
//	    SafeMode: true,
//	})
//	if err != nil {
//	    return err
//	}
//	defer l.Close()
//
//	for {
//	    ok, err := l.Next()
//	    if err != nil {
//	        return err
//	    }
//	    if !ok {
//	        break
//	    }
//	    rec, _ := l.Current()
//	    fmt.Println(rec.FullPath())
//	}
package lister
