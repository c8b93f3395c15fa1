package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	valid := []struct {
		name  string
		year  int
		month int
	}{
		{"2024-08.md", 2024, 8},
		{"1997-02.md", 1997, 2},
		{"2025-12.md", 2025, 12},
	}
	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			year, month, err := ParseYearMonth(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.year, year)
			assert.Equal(t, tc.month, month)
		})
	}

	invalid := []string{
		"invalid.md",
		"2024-8.md",
		"24-08.md",
		"2024-08.markdown",
		"2024-08.md.bak",
		"x2024-08.md",
		"2024-00.md",
		"2024-13.md",
		"",
	}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			_, _, err := ParseYearMonth(name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFilenameFormat))
		})
	}
}

func TestSourceDocumentNames(t *testing.T) {
	doc := SourceDocument{Year: 2024, Month: 8}
	assert.Equal(t, "2024-08", doc.Name())
	assert.Equal(t, "08.md", doc.OutputName())
}

func TestOrganize(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"2024-09.md": "Content 2",
		"2024-08.md": "Content 1",
		"2023-01.md": "Content 3",
		"invalid.md": "Content 4",
		"notes.txt":  "ignored",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "2022-01.md"), 0o755))

	inv, err := Organize(dir, nil)
	require.NoError(t, err)

	require.Len(t, inv.Groups, 2)
	require.Len(t, inv.Groups[2024], 2)
	require.Len(t, inv.Groups[2023], 1)
	assert.Equal(t, 8, inv.Groups[2024][0].Month)
	assert.Equal(t, 9, inv.Groups[2024][1].Month)
	assert.Equal(t, filepath.Join(dir, "2023-01.md"), inv.Groups[2023][0].Path)
	assert.Equal(t, []string{"invalid.md"}, inv.Skipped)
	assert.Equal(t, []int{2023, 2024}, inv.Groups.Years())
	assert.Equal(t, 3, inv.Groups.Documents())
}

func TestOrganizeMissingDirectory(t *testing.T) {
	_, err := Organize(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceDirNotFound)
}
