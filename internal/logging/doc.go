// Package logging provides concrete implementations of the treewalk.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr or any io.Writer,
//     coloring prefixes when the destination is a terminal
//   - NullLogger: Discards all messages (the default for listers and walkers)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
