package corpus

import (
	"fmt"
	"regexp"
	"strconv"
)

var filenamePattern = regexp.MustCompile(`^(\d{4})-(\d{2})\.md$`)

// SourceDocument is one monthly source file.
type SourceDocument struct {
	Year  int
	Month int
	Path  string
}

// Name returns the YYYY-MM label of the document.
func (d SourceDocument) Name() string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
}

// OutputName returns the file name used inside the year directory of the output tree.
func (d SourceDocument) OutputName() string {
	return fmt.Sprintf("%02d.md", d.Month)
}

// ParseYearMonth extracts year and month from a file name like 2024-08.md.
// Unpadded months (2024-8.md) and months outside 01-12 are rejected.
func ParseYearMonth(filename string) (year, month int, err error) {
	m := filenamePattern.FindStringSubmatch(filename)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrInvalidFilenameFormat, filename)
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %s: month out of range", ErrInvalidFilenameFormat, filename)
	}
	return year, month, nil
}
