//go:build windows

package safeio

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isPlatformPathTooLong catches the Win32 codes that do not map onto ENAMETOOLONG.
func isPlatformPathTooLong(err error) bool {
	return errors.Is(err, windows.ERROR_FILENAME_EXCED_RANGE) ||
		errors.Is(err, windows.ERROR_BUFFER_OVERFLOW)
}
