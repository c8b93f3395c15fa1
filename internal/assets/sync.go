// Package assets mirrors the shared figure and icon folders into the docs tree.
package assets

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
	"github.com/FadelMamar/3dcp.fyi/internal/logfields"
)

const (
	FiguresFolder = "fig"
	IconsFolder   = "ico"
)

// Folders are the asset subfolders mirrored on every run.
var Folders = []string{FiguresFolder, IconsFolder}

// Report summarizes one synchronization.
type Report struct {
	Files   int
	Missing []string // folders absent from the source directory
}

// Sync copies every asset folder from sourceDir into destRoot. Existing destination
// files are overwritten; destination files without a source counterpart are left alone.
// A missing source folder is logged and skipped. A nil log uses the default logger.
func Sync(sourceDir, destRoot string, log *slog.Logger) (Report, error) {
	if log == nil {
		log = slog.Default()
	}
	var report Report
	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return report, ferrors.FileSystemError("cannot create asset destination").
			WithCause(err).
			WithContext("path", destRoot).
			Build()
	}

	for _, folder := range Folders {
		src := filepath.Join(sourceDir, folder)
		info, err := os.Stat(src)
		if err != nil || !info.IsDir() {
			log.Warn("Asset folder not found, skipping", logfields.Folder(folder), logfields.Path(src))
			report.Missing = append(report.Missing, folder)
			continue
		}
		n, err := copyTree(src, filepath.Join(destRoot, folder))
		report.Files += n
		if err != nil {
			return report, ferrors.FileSystemError("cannot mirror asset folder").
				WithCause(err).
				WithContext("path", src).
				Build()
		}
		log.Debug("Mirrored asset folder", logfields.Folder(folder), logfields.Count(n))
	}
	return report, nil
}

// copyTree recursively merges src into dst and returns the number of files copied.
func copyTree(src, dst string) (int, error) {
	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		info, err := d.Info()
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(target, info.Mode().Perm()|0o700)
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if err := copyFile(path, target, info); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}

// copyFile copies a single file, keeping its permissions and modification time.
func copyFile(src, dst string, info fs.FileInfo) error {
	// #nosec G304 - src is inside a configured asset folder
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
