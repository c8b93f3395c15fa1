package overview

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// emptyCell keeps empty cells from collapsing.
const emptyCell = "&nbsp;"

// Cell text may already contain raw anchors from RewriteLinks.
var tableMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

type tableSpan struct {
	start, stop int
	html        string
}

// ConvertTables replaces every top-level GFM pipe table in block with an HTML table.
// Everything outside the tables' source lines is kept byte for byte.
func ConvertTables(block string) string {
	source := []byte(block)
	doc := tableMarkdown.Parser().Parse(text.NewReader(source))

	var spans []tableSpan
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		table, ok := n.(*east.Table)
		if !ok {
			continue
		}
		start, stop, ok := sourceLines(table, source)
		if !ok {
			continue
		}
		spans = append(spans, tableSpan{start: start, stop: stop, html: renderTable(table, source)})
	}
	if len(spans) == 0 {
		return block
	}

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		b.Write(source[prev:s.start])
		b.WriteString(s.html)
		prev = s.stop
	}
	b.Write(source[prev:])
	return b.String()
}

// sourceLines returns the byte range of the whole lines a table was parsed from,
// without the final newline.
func sourceLines(table *east.Table, source []byte) (start, stop int, ok bool) {
	start, stop = len(source), 0
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			lines := cell.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				start = min(start, seg.Start)
				stop = max(stop, seg.Stop)
				ok = true
			}
		}
	}
	if !ok {
		return 0, 0, false
	}
	start = bytes.LastIndexByte(source[:start], '\n') + 1
	if i := bytes.IndexByte(source[stop:], '\n'); i >= 0 {
		stop += i
	} else {
		stop = len(source)
	}
	return start, stop, true
}

func renderTable(table *east.Table, source []byte) string {
	var b strings.Builder
	b.WriteString("<table>\n")
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		if _, ok := row.(*east.TableHeader); ok {
			b.WriteString("<thead>\n")
			writeRow(&b, "th", row, source)
			b.WriteString("</thead>\n<tbody>\n")
			continue
		}
		writeRow(&b, "td", row, source)
	}
	b.WriteString("</tbody>\n</table>")
	return b.String()
}

func writeRow(b *strings.Builder, tag string, row gast.Node, source []byte) {
	b.WriteString("<tr>")
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		b.WriteString("<" + tag + ">")
		b.WriteString(renderCell(cell, source))
		b.WriteString("</" + tag + ">")
	}
	b.WriteString("</tr>\n")
}

// renderCell renders the inline content of a cell; plain text is HTML-escaped.
func renderCell(cell gast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := cell.FirstChild(); c != nil; c = c.NextSibling() {
		if err := tableMarkdown.Renderer().Render(&buf, source, c); err != nil {
			return emptyCell
		}
	}
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return emptyCell
	}
	return out
}
