// Package files provides the tree enumeration engine organized into sub-packages.
//
// The sub-packages are:
//   - filesystem: Directory stream abstraction (OS, in-memory and io/fs backed)
//   - safeio: Classification of I/O failures that safe mode may swallow
//   - lister: Lazy single-level listing with grouping and pattern filtering
//   - walker: Lazy recursive traversal built on listers
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/treewalk/internal/files/filesystem"
//	    "github.com/vvka-141/treewalk/internal/files/walker"
//	)
//
//	opts := treewalk.Options{Pattern: "*", Order: treewalk.OrderDirectoriesThenFiles, SafeMode: true}
//	root, err := walker.NewRoot(filesystem.NewOSFileSystem(), "./project", opts)
//	err = walker.Walk(root, func(n *walker.Node, err error) error {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(n.Record().RelativePath())
//	    return nil
//	})
//
// # Organization
//
// Each sub-package depends only on the ones listed before it. Nothing reads
// a directory until a caller asks for its entries.
package files
