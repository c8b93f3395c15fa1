package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
)

const initHeader = `# papersite configuration
# Paths are relative to root. papers, overview_page and home_page are relative to docs.
# ${VAR} references are expanded; .env and .env.local are loaded first.
`

// Init writes a configuration file holding the defaults.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return ferrors.InternalError("cannot marshal default configuration").WithCause(err).Build()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.FileSystemError("cannot create configuration directory").
				WithCause(err).
				WithContext("path", dir).
				Build()
		}
	}
	// #nosec G306 - configuration is meant to be committed alongside the docs
	if err := os.WriteFile(path, append([]byte(initHeader), data...), 0o644); err != nil {
		return ferrors.FileSystemError("cannot write configuration file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
