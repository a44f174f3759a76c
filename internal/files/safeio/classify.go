package safeio

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// Kind is the category a filesystem failure falls into.
type Kind int

const (
	// KindNone is the kind of a nil error.
	KindNone Kind = iota

	// KindNotFound covers missing paths and path components that are not directories.
	KindNotFound

	// KindIO covers generic I/O failures reported by the OS.
	KindIO

	// KindPathTooLong covers names or paths exceeding platform limits.
	KindPathTooLong

	// KindPermission covers access-denied failures.
	KindPermission

	// KindUnclassified is everything safe mode must not swallow.
	KindUnclassified
)

var kindNames = [...]string{
	KindNone:         "none",
	KindNotFound:     "not-found",
	KindIO:           "io",
	KindPathTooLong:  "path-too-long",
	KindPermission:   "permission",
	KindUnclassified: "unclassified",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Transient reports whether safe mode may swallow failures of this kind.
func (k Kind) Transient() bool {
	switch k {
	case KindNotFound, KindIO, KindPathTooLong, KindPermission:
		return true
	}
	return false
}

// Classify returns the kind of err. Order matters: engine sentinels first,
// then the specific OS conditions, then any remaining OS-level path error.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	if treewalk.IsProtocolError(err) || errors.Is(err, treewalk.ErrInvalidArgument) {
		return KindUnclassified
	}

	if isPathTooLong(err) {
		return KindPathTooLong
	}

	if errors.Is(err, fs.ErrPermission) {
		return KindPermission
	}

	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return KindNotFound
	}

	if errors.Is(err, syscall.EIO) || errors.Is(err, syscall.ELOOP) {
		return KindIO
	}

	// Any other failure the OS attached to a path is an I/O failure
	var pathErr *fs.PathError
	var sysErr *os.SyscallError
	var linkErr *os.LinkError
	if errors.As(err, &pathErr) || errors.As(err, &sysErr) || errors.As(err, &linkErr) {
		return KindIO
	}

	return KindUnclassified
}

// IsTransient reports whether err is a failure safe mode may swallow.
func IsTransient(err error) bool {
	return Classify(err).Transient()
}

func isPathTooLong(err error) bool {
	if errors.Is(err, syscall.ENAMETOOLONG) {
		return true
	}
	return isPlatformPathTooLong(err)
}

// Classifier implements treewalk.ErrorClassifier using Classify.
type Classifier struct{}

// NewClassifier creates the default classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// IsTransient implements treewalk.ErrorClassifier.
func (c *Classifier) IsTransient(err error) bool {
	return IsTransient(err)
}

// OrDefault returns c, or the default Classifier when c is nil.
func OrDefault(c treewalk.ErrorClassifier) treewalk.ErrorClassifier {
	if c == nil {
		return NewClassifier()
	}
	return c
}

var _ treewalk.ErrorClassifier = (*Classifier)(nil)
