package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID   = "run_id"
	KeyStage   = "stage"
	KeyPath    = "path"
	KeyFile    = "file"
	KeyTarget  = "target"
	KeyYear    = "year"
	KeyMonth   = "month"
	KeyEntries = "entries"
	KeyCount   = "count"
	KeyFolder  = "folder"
	KeyFormat  = "format"
	KeyError   = "error"

	KeyFingerprint = "fingerprint"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr      { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr    { return slog.String(KeyStage, name) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func File(name string) slog.Attr     { return slog.String(KeyFile, name) }
func Target(p string) slog.Attr      { return slog.String(KeyTarget, p) }
func Year(y int) slog.Attr           { return slog.Int(KeyYear, y) }
func Month(m int) slog.Attr          { return slog.Int(KeyMonth, m) }
func Entries(n int) slog.Attr        { return slog.Int(KeyEntries, n) }
func Count(n int) slog.Attr          { return slog.Int(KeyCount, n) }
func Folder(name string) slog.Attr   { return slog.String(KeyFolder, name) }
func Format(f string) slog.Attr      { return slog.String(KeyFormat, f) }
func Fingerprint(fp string) slog.Attr { return slog.String(KeyFingerprint, fp) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
