// Package convert turns monthly source documents into the year-partitioned papers tree.
//
// Each document is split into entries on a standalone "-----" line, asset references
// inside every entry are rewritten for the deeper output location, and the entries are
// joined again with a canonical separator. Run drives the whole batch: organize, convert,
// mirror assets and regenerate the overview page.
package convert
