package nav

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"text/template"
	"time"

	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
	"github.com/FadelMamar/3dcp.fyi/internal/logfields"
)

const yearIndexFile = "index.md"

//go:embed templates/*.tmpl
var templatesFS embed.FS

var yearIndexTemplate = template.Must(template.ParseFS(templatesFS, "templates/year_index.md.tmpl"))

type yearIndexMonth struct {
	Name   string
	Padded string
}

type yearIndexData struct {
	Year   int
	Months []yearIndexMonth
}

// RenderYearIndex renders the index page of one year; months are listed in ascending order.
func RenderYearIndex(year int, months []int) (string, error) {
	sorted := slices.Clone(months)
	slices.Sort(sorted)

	data := yearIndexData{Year: year}
	for _, m := range sorted {
		if m < 1 || m > 12 {
			continue
		}
		data.Months = append(data.Months, yearIndexMonth{
			Name:   time.Month(m).String(),
			Padded: fmt.Sprintf("%02d", m),
		})
	}

	var buf bytes.Buffer
	if err := yearIndexTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteYearIndexes writes <papersDir>/<year>/index.md for every year with months.
// It returns the written paths. A nil log uses the default logger.
func WriteYearIndexes(papersDir string, years []YearMonths, log *slog.Logger) ([]string, error) {
	if log == nil {
		log = slog.Default()
	}
	var written []string
	for _, ym := range years {
		if len(ym.Months) == 0 {
			continue
		}
		content, err := RenderYearIndex(ym.Year, ym.Months)
		if err != nil {
			return written, ferrors.InternalError("cannot render year index").
				WithCause(err).
				WithContext("year", ym.Year).
				Build()
		}
		target := filepath.Join(papersDir, strconv.Itoa(ym.Year), yearIndexFile)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, ferrors.FileSystemError("cannot create year directory").
				WithCause(err).
				WithContext("path", filepath.Dir(target)).
				Build()
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return written, ferrors.FileSystemError("cannot write year index").
				WithCause(err).
				WithContext("path", target).
				Build()
		}
		log.Debug("Year index written", logfields.Year(ym.Year), logfields.Path(target))
		written = append(written, target)
	}
	return written, nil
}
