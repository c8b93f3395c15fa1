package metrics

import (
	"os"
	"path/filepath"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
)

// WriteTextfile gathers reg and writes it in the text exposition format.
// The write is atomic so a collector never reads a partial file.
func WriteTextfile(path string, reg prom.Gatherer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.FileSystemError("cannot create metrics directory").
				WithCause(err).
				WithContext("path", dir).
				Build()
		}
	}
	if err := prom.WriteToTextfile(path, reg); err != nil {
		return ferrors.FileSystemError("cannot write metrics file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
