package nav

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/FadelMamar/3dcp.fyi/internal/corpus"
)

// YearMonths is one year with the months that have a document.
type YearMonths struct {
	Year   int
	Months []int
}

// Provider supplies the years and month documents to build navigation from.
type Provider interface {
	YearMonths() ([]YearMonths, error)
}

// GroupingProvider serves the converter's in-memory grouping.
type GroupingProvider struct {
	Groups corpus.Grouping
}

// YearMonths returns years descending, months in conversion order.
func (p GroupingProvider) YearMonths() ([]YearMonths, error) {
	years := p.Groups.Years()
	slices.Reverse(years)
	out := make([]YearMonths, 0, len(years))
	for _, y := range years {
		ym := YearMonths{Year: y}
		for _, doc := range p.Groups[y] {
			ym.Months = append(ym.Months, doc.Month)
		}
		out = append(out, ym)
	}
	return out, nil
}

// TreeProvider rescans a papers tree laid out as <year>/<month>.md.
type TreeProvider struct {
	PapersDir string
}

// YearMonths lists numeric year directories in descending order. Within a year,
// numeric *.md stems are returned in directory listing order; index.md and other
// non-numeric files are ignored.
func (p TreeProvider) YearMonths() ([]YearMonths, error) {
	entries, err := os.ReadDir(p.PapersDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPapersDirNotFound, p.PapersDir)
		}
		return nil, fmt.Errorf("read papers directory %s: %w", p.PapersDir, err)
	}

	var out []YearMonths
	for _, e := range entries {
		if !e.IsDir() || !isDigits(e.Name()) {
			continue
		}
		year, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		months, err := scanMonths(filepath.Join(p.PapersDir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, YearMonths{Year: year, Months: months})
	}
	slices.SortStableFunc(out, func(a, b YearMonths) int { return cmp.Compare(b.Year, a.Year) })
	return out, nil
}

func scanMonths(yearDir string) ([]int, error) {
	entries, err := os.ReadDir(yearDir)
	if err != nil {
		return nil, fmt.Errorf("read year directory %s: %w", yearDir, err)
	}
	var months []int
	for _, e := range entries {
		name := e.Name()
		stem, ok := strings.CutSuffix(name, ".md")
		if e.IsDir() || !ok || !isDigits(stem) {
			continue
		}
		m, err := strconv.Atoi(stem)
		if err != nil {
			continue
		}
		months = append(months, m)
	}
	return months, nil
}
