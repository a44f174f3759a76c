// Package filesystem provides the directory-listing primitive the lister is
// built on.
//
// Listings are exposed as forward-only streams so the engine never has to
// hold a whole directory in memory and never rewinds.
//
// Key interfaces:
//   - FileSystemProvider: opens directory streams and stats paths
//   - DirStream: forward-only sequence of entries for one directory
//   - FileInfo: entry metadata, an alias of fs.FileInfo
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation with failure injection for testing
//   - IOFileSystem: adapter over any io/fs.FS, including embed.FS
package filesystem
