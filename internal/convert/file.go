package convert

import (
	"os"
	"path/filepath"

	"github.com/inful/mdfp"

	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
)

// FileResult describes one converted document.
type FileResult struct {
	Entries int
	// Changed is false when the target already held identical content.
	Changed bool
	// Fingerprint is the mdfp fingerprint of the written content.
	Fingerprint string
}

// ConvertFile converts source into target and returns the number of entries written.
// The target is fully overwritten and its parent directories are created.
func ConvertFile(source, target string) (int, error) {
	res, err := convertFile(source, target)
	return res.Entries, err
}

func convertFile(source, target string) (FileResult, error) {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return FileResult{}, ferrors.FileSystemError("cannot create target directory").
			WithCause(err).
			WithContext("path", filepath.Dir(target)).
			Build()
	}

	// #nosec G304 - source comes from the organized source directory
	raw, err := os.ReadFile(source)
	if err != nil {
		return FileResult{}, ferrors.ConvertError("cannot read source document").
			WithCause(err).
			WithContext("path", source).
			Build()
	}

	entries := SplitEntries(string(raw))
	for i, entry := range entries {
		entries[i] = RewriteAssetPaths(entry)
	}
	content := JoinEntries(entries)

	fp := mdfp.CalculateFingerprint(content)
	changed := true
	if previous, ok := fileFingerprint(target); ok {
		changed = previous != fp
	}

	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return FileResult{}, ferrors.ConvertError("cannot write converted document").
			WithCause(err).
			WithContext("path", target).
			Build()
	}
	return FileResult{Entries: len(entries), Changed: changed, Fingerprint: fp}, nil
}

// fileFingerprint streams an existing file through mdfp. ok is false when the file
// cannot be read.
func fileFingerprint(path string) (fp string, ok bool) {
	// #nosec G304 - path is derived from the configured output tree
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer func() {
		_ = f.Close()
	}()
	fp, err = mdfp.CalculateFingerprintReader(f)
	if err != nil {
		return "", false
	}
	return fp, true
}
