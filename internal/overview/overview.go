// Package overview builds the standalone overview page from the project README.
package overview

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
	"github.com/FadelMamar/3dcp.fyi/internal/logfields"
)

// Title is the level-1 heading of the generated page.
const Title = "Overview"

// styleBlock keeps the converted tables compact.
const styleBlock = `<style>
.md-typeset table { font-size: 0.75rem; }
.md-typeset table th, .md-typeset table td { padding: 0.35em 0.6em; text-align: center; }
.md-typeset table td a { white-space: nowrap; }
</style>`

const sectionHeading = "## Overview"

var monthLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\(dat/md/(\d{4})-(\d{2})\.md\)`)

const (
	centerTag       = `<div align="center">`
	centerTagMarked = `<div align="center" markdown>`
)

// Options controls how links inside the section are rewritten.
type Options struct {
	// PapersHref is the relative URL of the papers tree as seen from the overview page.
	PapersHref string
}

// DefaultOptions match the default overview/readme-overview.md location.
func DefaultOptions() Options {
	return Options{PapersHref: "../../papers/"}
}

// PapersHref derives the papers URL for an overview page at page (relative to docs)
// when pages are served with directory-style URLs.
func PapersHref(page, papersRoute string) string {
	page = path.Clean(filepath.ToSlash(page))
	depth := strings.Count(page, "/") + 1
	if strings.TrimSuffix(path.Base(page), path.Ext(page)) == "index" {
		depth--
	}
	return strings.Repeat("../", depth) + strings.Trim(filepath.ToSlash(papersRoute), "/") + "/"
}

// ExtractSection returns the text between "## Overview" and the next "## " heading,
// or the end of the document. Headings inside fenced code blocks are ignored.
// ok is false when the section is missing or empty.
func ExtractSection(readme string) (section string, ok bool) {
	lines := strings.Split(strings.ReplaceAll(readme, "\r\n", "\n"), "\n")

	var fence string
	start := -1
	end := len(lines)
	for i, line := range lines {
		if marker := fenceMarker(line); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(marker, fence):
				fence = ""
			}
			continue
		}
		if fence != "" {
			continue
		}
		if start < 0 {
			if strings.TrimRight(line, " \t") == sectionHeading {
				start = i + 1
			}
			continue
		}
		if strings.HasPrefix(line, "## ") {
			end = i
			break
		}
	}
	if start < 0 {
		return "", false
	}
	section = strings.TrimSpace(strings.Join(lines[start:end], "\n"))
	return section, section != ""
}

// fenceMarker returns the ``` or ~~~ run opening a fence line, or "".
func fenceMarker(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || len(trimmed) < 3 {
		return ""
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return ""
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	if n < 3 {
		return ""
	}
	return trimmed[:n]
}

// RewriteLinks turns [label](dat/md/YYYY-MM.md) links into anchors on the month pages
// and marks centered containers for markdown processing.
func RewriteLinks(block string, opts Options) string {
	block = monthLinkPattern.ReplaceAllString(block, `<a href="`+opts.PapersHref+`${2}/${3}/">${1}</a>`)
	return strings.ReplaceAll(block, centerTag, centerTagMarked)
}

// Render assembles the full page for an extracted section.
func Render(section string, opts Options) string {
	body := ConvertTables(RewriteLinks(section, opts))
	var b strings.Builder
	b.WriteString(styleBlock)
	b.WriteString("\n\n# ")
	b.WriteString(Title)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

// Generate writes the overview page for readmePath to target. It returns the written
// path, or "" when the README or its overview section is absent. A nil log uses the
// default logger.
func Generate(readmePath, target string, opts Options, log *slog.Logger) (string, error) {
	if log == nil {
		log = slog.Default()
	}
	// #nosec G304 - readmePath is the configured project README
	raw, err := os.ReadFile(readmePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("README not found, skipping overview page generation", logfields.Path(readmePath))
			return "", nil
		}
		return "", ferrors.FileSystemError("cannot read README").
			WithCause(err).
			WithContext("path", readmePath).
			Build()
	}

	section, ok := ExtractSection(string(raw))
	if !ok {
		log.Info("Overview section not found in README, skipping overview page generation", logfields.Path(readmePath))
		return "", nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", ferrors.FileSystemError("cannot create overview directory").
			WithCause(err).
			WithContext("path", filepath.Dir(target)).
			Build()
	}
	if err := os.WriteFile(target, []byte(Render(section, opts)), 0o644); err != nil {
		return "", ferrors.FileSystemError("cannot write overview page").
			WithCause(err).
			WithContext("path", target).
			Build()
	}
	log.Info("Overview page written", logfields.Path(target))
	return target, nil
}
