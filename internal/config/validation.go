package config

import (
	"errors"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
)

var errEscapesDocs = errors.New("must be a relative path inside the docs directory")

// Validate checks required fields and the docs-relative paths.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Source, validation.Required),
		validation.Field(&c.Docs, validation.Required),
		validation.Field(&c.Papers, validation.Required, validation.By(insideDocs)),
		validation.Field(&c.OverviewPage, validation.Required, validation.By(insideDocs)),
		validation.Field(&c.HomePage, validation.Required, validation.By(insideDocs)),
		validation.Field(&c.NavigationFile, validation.Required),
		validation.Field(&c.NavigationFormat, validation.Required, validation.In("json", "yaml")),
	)
	if err != nil {
		return ferrors.ConfigError("invalid configuration").WithCause(err).Build()
	}
	return nil
}

func insideDocs(value any) error {
	p, _ := value.(string)
	if p == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(p))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errEscapesDocs
	}
	return nil
}
