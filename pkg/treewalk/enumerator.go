package treewalk

// Enumerator is a forward-only, non-restartable sequence.
//
// The protocol mirrors a pull iterator:
//
//	defer e.Close()
//	for {
//	    ok, err := e.Next()
//	    if err != nil || !ok {
//	        break
//	    }
//	    item, _ := e.Current()
//	    ...
//	}
//
// Implementations are not safe for concurrent use; independent enumerators
// may run on separate goroutines.
type Enumerator[T any] interface {
	// Next advances the sequence. It returns false once the sequence is
	// exhausted and keeps returning false afterwards.
	// Returns ErrUseAfterClose after Close.
	Next() (bool, error)

	// Current returns the element produced by the last successful Next.
	// Returns ErrNoCurrent before the first Next or after completion.
	Current() (T, error)

	// Reset always returns ErrUnsupportedOperation.
	Reset() error

	// Close releases every handle the sequence opened. Closing twice is a no-op.
	Close() error

	// IsCompleted reports whether the sequence has been exhausted.
	IsCompleted() bool
}
