//go:build !windows

package safeio

func isPlatformPathTooLong(err error) bool {
	return false
}
