package convert

import "strings"

const (
	// Delimiter separates entries in a source document.
	Delimiter = "\n-----\n"
	// Separator joins entries in a converted document.
	Separator = "\n\n-----\n\n"
)

// SplitEntries splits a document into trimmed, non-empty entries in document order.
// CRLF line endings are normalized before splitting.
func SplitEntries(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	parts := strings.Split(content, Delimiter)
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			entries = append(entries, p)
		}
	}
	return entries
}

// JoinEntries renders entries as converted document content, including the trailing newline.
func JoinEntries(entries []string) string {
	return strings.Join(entries, Separator) + "\n"
}
