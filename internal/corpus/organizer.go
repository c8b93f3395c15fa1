package corpus

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/FadelMamar/3dcp.fyi/internal/logfields"
)

// Grouping maps a year to its documents, sorted ascending by month.
type Grouping map[int][]SourceDocument

// Years returns the grouped years in ascending order.
func (g Grouping) Years() []int {
	years := make([]int, 0, len(g))
	for y := range g {
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}

// Documents returns the number of documents across all years.
func (g Grouping) Documents() int {
	n := 0
	for _, docs := range g {
		n += len(docs)
	}
	return n
}

// Inventory is the result of scanning a source directory.
type Inventory struct {
	Groups  Grouping
	Skipped []string // file names that did not parse as YYYY-MM.md
}

// Organize lists the *.md files directly inside sourceDir and groups them by year.
// Files with non-conforming names are skipped with a warning on log (the default
// logger when nil).
func Organize(sourceDir string, log *slog.Logger) (*Inventory, error) {
	if log == nil {
		log = slog.Default()
	}
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceDirNotFound, sourceDir)
		}
		return nil, fmt.Errorf("read source directory %s: %w", sourceDir, err)
	}

	inv := &Inventory{Groups: make(Grouping)}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		year, month, err := ParseYearMonth(name)
		if err != nil {
			log.Warn("Skipping file with invalid name format", logfields.File(name))
			inv.Skipped = append(inv.Skipped, name)
			continue
		}
		inv.Groups[year] = append(inv.Groups[year], SourceDocument{
			Year:  year,
			Month: month,
			Path:  filepath.Join(sourceDir, name),
		})
	}

	for year := range inv.Groups {
		slices.SortFunc(inv.Groups[year], func(a, b SourceDocument) int {
			return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Month, b.Month))
		})
	}
	return inv, nil
}
