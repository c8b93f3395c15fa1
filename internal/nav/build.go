package nav

import (
	"cmp"
	"fmt"
	"path"
	"slices"
	"strconv"
)

// Year range thresholds for the Papers buckets.
const (
	RecentYearsFrom = 2021 // years >= RecentYearsFrom go under "Recent Years"
	MidYearsFrom    = 2015 // years in [MidYearsFrom, RecentYearsFrom) are listed unwrapped
)

const (
	HomeLabel        = "Home"
	OverviewLabel    = "Overview"
	PapersLabel      = "Papers"
	RecentYearsLabel = "Recent Years"
	OlderYearsLabel  = "Older Years"
)

// Bucket is the Papers partition a year belongs to.
type Bucket int

const (
	BucketRecent Bucket = iota
	BucketMid
	BucketOlder
)

// BucketFor returns the bucket of year.
func BucketFor(year int) Bucket {
	switch {
	case year >= RecentYearsFrom:
		return BucketRecent
	case year >= MidYearsFrom:
		return BucketMid
	default:
		return BucketOlder
	}
}

// Options controls page targets in the navigation. Targets are relative to the docs root.
type Options struct {
	HomePage     string
	OverviewPage string
	PapersRoute  string
	// YearIndexLinks adds a self-link to <year>/index.md as the first child of each year.
	YearIndexLinks bool
}

// DefaultOptions returns the mkdocs layout used by the converter.
func DefaultOptions() Options {
	return Options{
		HomePage:     "index.md",
		OverviewPage: "overview/readme-overview.md",
		PapersRoute:  "papers",
	}
}

// MonthPage returns the target of a month document.
func (o Options) MonthPage(year, month int) string {
	return path.Join(o.PapersRoute, strconv.Itoa(year), fmt.Sprintf("%02d.md", month))
}

// YearIndexPage returns the target of a generated year index.
func (o Options) YearIndexPage(year int) string {
	return path.Join(o.PapersRoute, strconv.Itoa(year), yearIndexFile)
}

// MonthLabel returns the YYYY-MM display label.
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// Build produces the Home / Overview / Papers navigation. Years are listed newest first
// and months within a year newest first. Years without months are left out, as are
// empty buckets.
func Build(p Provider, opts Options) ([]Node, error) {
	years, err := p.YearMonths()
	if err != nil {
		return nil, err
	}
	years = slices.Clone(years)
	slices.SortStableFunc(years, func(a, b YearMonths) int { return cmp.Compare(b.Year, a.Year) })

	var recent, mid, older []Node
	for _, ym := range years {
		if len(ym.Months) == 0 {
			continue
		}
		node := yearNode(ym, opts)
		switch BucketFor(ym.Year) {
		case BucketRecent:
			recent = append(recent, node)
		case BucketMid:
			mid = append(mid, node)
		case BucketOlder:
			older = append(older, node)
		}
	}

	papers := make([]Node, 0, len(mid)+2)
	if len(recent) > 0 {
		papers = append(papers, Branch(RecentYearsLabel, recent...))
	}
	papers = append(papers, mid...)
	if len(older) > 0 {
		papers = append(papers, Branch(OlderYearsLabel, older...))
	}

	return []Node{
		Leaf(HomeLabel, opts.HomePage),
		Leaf(OverviewLabel, opts.OverviewPage),
		Branch(PapersLabel, papers...),
	}, nil
}

func yearNode(ym YearMonths, opts Options) Node {
	months := slices.Clone(ym.Months)
	slices.SortFunc(months, func(a, b int) int { return cmp.Compare(b, a) })

	label := strconv.Itoa(ym.Year)
	children := make([]Node, 0, len(months)+1)
	if opts.YearIndexLinks {
		children = append(children, Leaf(label, opts.YearIndexPage(ym.Year)))
	}
	for _, m := range months {
		children = append(children, Leaf(MonthLabel(ym.Year, m), opts.MonthPage(ym.Year, m)))
	}
	return Branch(label, children...)
}
