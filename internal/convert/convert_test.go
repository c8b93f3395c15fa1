package convert

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inful/mdfp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FadelMamar/3dcp.fyi/internal/corpus"
	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
	"github.com/FadelMamar/3dcp.fyi/internal/overview"
)

func TestSplitEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"three entries", "Entry 1\n-----\nEntry 2\n-----\nEntry 3", []string{"Entry 1", "Entry 2", "Entry 3"}},
		{"no delimiter", "  Only entry\n\nwith two paragraphs \n", []string{"Only entry\n\nwith two paragraphs"}},
		{"empty", "", []string{}},
		{"whitespace only", " \n\t\n", []string{}},
		{"empty entries dropped", "A\n-----\n\n-----\nB\n", []string{"A", "B"}},
		{"blank lines around delimiter", "A\n\n-----\n\nB", []string{"A", "B"}},
		{"crlf", "A\r\n-----\r\nB\r\n", []string{"A", "B"}},
		{"inline dashes are not delimiters", "A ----- B\n------\nC", []string{"A ----- B\n------\nC"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitEntries(tt.content))
		})
	}
}

func TestSplitEntriesCountsDelimiters(t *testing.T) {
	for k := 0; k < 5; k++ {
		parts := make([]string, k+1)
		for i := range parts {
			parts[i] = "entry"
		}
		assert.Len(t, SplitEntries(strings.Join(parts, Delimiter)), k+1)
	}
}

func TestRewriteAssetPaths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"icons",
			`<img src="ico/dm/test.svg"> <source srcset="ico/wm/test.svg">`,
			`<img src="../../../ico/dm/test.svg"> <source srcset="../../../ico/wm/test.svg">`,
		},
		{"figure slash", `<img src="fig/test.svg?v=2">`, `<img src="../../../fig/test.svg?v=2">`},
		{"figure backslash", `<img src="fig\test.svg">`, `<img src="../../../fig/test.svg">`},
		{"other icon set untouched", `<img src="ico/xx/test.svg">`, `<img src="ico/xx/test.svg">`},
		{"prose untouched", "see fig/3 and the ico/dm folder", "see fig/3 and the ico/dm folder"},
		{"already rewritten", `<img src="../../../fig/a.svg">`, `<img src="../../../fig/a.svg">`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteAssetPaths(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, RewriteAssetPaths(got), "rewriting must be idempotent")
		})
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "2024-08.md")
	target := filepath.Join(dir, "output", "2024", "08.md")
	require.NoError(t, os.WriteFile(source,
		[]byte("Entry 1 with <img src=\"ico/dm/test.svg\">\n-----\nEntry 2 with <img src=\"fig/test.svg\">"), 0o644))

	count, err := ConvertFile(source, target)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t,
		"Entry 1 with <img src=\"../../../ico/dm/test.svg\">\n\n-----\n\nEntry 2 with <img src=\"../../../fig/test.svg\">\n",
		string(data))

	// converted output re-splits into the reported number of entries
	assert.Len(t, strings.Split(strings.TrimSuffix(string(data), "\n"), Separator), count)
	assert.Len(t, SplitEntries(string(data)), count)
}

func TestConvertFileOverwritesAndReportsChanges(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "2024-08.md")
	target := filepath.Join(dir, "2024", "08.md")
	require.NoError(t, os.WriteFile(source, []byte("A"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte("stale content that is much longer"), 0o644))

	first, err := convertFile(source, target)
	require.NoError(t, err)
	assert.True(t, first.Changed)

	second, err := convertFile(source, target)
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)

	onDisk, ok := fileFingerprint(target)
	require.True(t, ok)
	assert.Equal(t, mdfp.CalculateFingerprint("A\n"), onDisk)
	assert.Equal(t, onDisk, second.Fingerprint)

	_, ok = fileFingerprint(filepath.Join(dir, "missing.md"))
	assert.False(t, ok)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "A\n", string(data))
}

func TestConvertFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := ConvertFile(filepath.Join(dir, "2024-08.md"), filepath.Join(dir, "out", "08.md"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConvert))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func projectOptions(root string) Options {
	return Options{
		SourceDir:    filepath.Join(root, "dat", "md"),
		DocsDir:      filepath.Join(root, "docs"),
		PapersDir:    filepath.Join(root, "docs", "papers"),
		ReadmePath:   filepath.Join(root, "README.md"),
		OverviewPath: filepath.Join(root, "docs", "overview", "readme-overview.md"),
		Overview:     overview.DefaultOptions(),
	}
}

func TestRunEndToEnd(t *testing.T) {
	root := t.TempDir()
	opts := projectOptions(root)

	writeFile(t, filepath.Join(opts.SourceDir, "2024-08.md"), "Entry 1\n-----\nEntry 2")
	writeFile(t, filepath.Join(opts.SourceDir, "2024-09.md"), "Entry 3")
	writeFile(t, filepath.Join(opts.SourceDir, "2023-01.md"), "Entry 4")
	writeFile(t, filepath.Join(opts.SourceDir, "invalid.md"), "ignored")
	writeFile(t, filepath.Join(opts.SourceDir, "fig", "figure.svg"), "<svg></svg>")
	writeFile(t, filepath.Join(opts.SourceDir, "ico", "dm", "icon.svg"), "<svg></svg>")
	writeFile(t, filepath.Join(opts.SourceDir, "ico", "wm", "icon.svg"), "<svg></svg>")
	writeFile(t, opts.ReadmePath, "# T\n\n## Overview\n\n[Aug](dat/md/2024-08.md)\n\n## Next\n")

	res, err := Run(opts)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Files)
	assert.Equal(t, 4, res.Entries)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, []string{"invalid.md"}, res.Skipped)
	assert.Len(t, res.Groups, 2)
	assert.Equal(t, 3, res.Assets.Files)
	assert.Equal(t, opts.OverviewPath, res.OverviewPage)

	for _, p := range []string{"2024/08.md", "2024/09.md", "2023/01.md"} {
		assert.FileExists(t, filepath.Join(opts.PapersDir, filepath.FromSlash(p)))
	}
	for _, p := range []string{"fig/figure.svg", "ico/dm/icon.svg", "ico/wm/icon.svg"} {
		assert.FileExists(t, filepath.Join(opts.DocsDir, filepath.FromSlash(p)))
	}

	again, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Unchanged)
}

func TestRunMissingSourceDirectory(t *testing.T) {
	_, err := Run(projectOptions(t.TempDir()))
	require.Error(t, err)
	assert.ErrorIs(t, err, corpus.ErrSourceDirNotFound)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestRunContinuesAfterFailedDocument(t *testing.T) {
	root := t.TempDir()
	opts := projectOptions(root)
	opts.ReadmePath = ""

	writeFile(t, filepath.Join(opts.SourceDir, "2024-08.md"), "A\n-----\nB")
	writeFile(t, filepath.Join(opts.SourceDir, "2024-09.md"), "C")
	// a directory where the converted file should go makes the write fail
	require.NoError(t, os.MkdirAll(filepath.Join(opts.PapersDir, "2024", "09.md"), 0o755))

	res, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, 2, res.Entries)
	assert.Equal(t, 1, res.Failed)
	assert.Empty(t, res.OverviewPage)
}

func TestRunTagsEveryLogLineWithRunLogger(t *testing.T) {
	root := t.TempDir()
	opts := projectOptions(root)
	var logs bytes.Buffer
	opts.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("run_id", "R1")

	writeFile(t, filepath.Join(opts.SourceDir, "2024-08.md"), "Entry 1")
	writeFile(t, filepath.Join(opts.SourceDir, "notes.md"), "ignored")
	writeFile(t, opts.ReadmePath, "# T\n\n## Overview\n\nSummary.\n")

	_, err := Run(opts)
	require.NoError(t, err)
	_, err = Run(opts)
	require.NoError(t, err)

	text := logs.String()
	assert.Contains(t, text, "Skipping file with invalid name format")
	assert.Contains(t, text, "Asset folder not found")
	assert.Contains(t, text, "Overview page written")
	assert.Contains(t, text, "Document unchanged")

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Contains(t, line, "run_id=R1", line)
	}
}
