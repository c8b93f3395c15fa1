package nav

import "errors"

var (
	// ErrPapersDirNotFound indicates the papers tree to scan does not exist.
	ErrPapersDirNotFound = errors.New("papers directory does not exist")

	// ErrInvalidMkDocsConfig indicates an mkdocs config without a top-level mapping.
	ErrInvalidMkDocsConfig = errors.New("mkdocs config is not a mapping")
)
