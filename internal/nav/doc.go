// Package nav builds the mkdocs navigation for the papers tree.
//
// Navigation is built from a Provider of years with their month documents. Two
// providers exist: one over the converter's in-memory grouping and one that rescans
// the papers tree on disk. Both feed the same Build, which orders years and months
// newest first and partitions years into the recent, mid and older buckets.
package nav
