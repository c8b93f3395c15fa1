package corpus

import "errors"

var (
	// ErrInvalidFilenameFormat indicates a file name that is not YYYY-MM.md.
	ErrInvalidFilenameFormat = errors.New("invalid filename format")

	// ErrSourceDirNotFound indicates the source directory does not exist.
	ErrSourceDirNotFound = errors.New("source directory does not exist")
)
