package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "papersite.yaml"

// Config describes the project layout. Paths are relative to Root unless absolute.
// Papers, OverviewPage and HomePage are relative to Docs.
type Config struct {
	Root             string `yaml:"root"`
	Source           string `yaml:"source"`
	Docs             string `yaml:"docs"`
	Papers           string `yaml:"papers"`
	Readme           string `yaml:"readme"`
	OverviewPage     string `yaml:"overview_page"`
	HomePage         string `yaml:"home_page"`
	NavigationFile   string `yaml:"navigation_file"`
	NavigationFormat string `yaml:"navigation_format"`
	MkDocsConfig     string `yaml:"mkdocs_config"`
	YearIndex        bool   `yaml:"year_index"`
	MetricsFile      string `yaml:"metrics_file"`
}

// Default returns the layout of a 3DCP-style repository.
func Default() *Config {
	return &Config{
		Root:             ".",
		Source:           "dat/md",
		Docs:             "docs",
		Papers:           "papers",
		Readme:           "README.md",
		OverviewPage:     "overview/readme-overview.md",
		HomePage:         "index.md",
		NavigationFile:   "navigation_structure.txt",
		NavigationFormat: "json",
		MkDocsConfig:     "mkdocs.yml",
	}
}

// Load reads the configuration at path on top of the defaults. A missing file is
// only an error when required is set; otherwise the defaults are returned.
func Load(path string, required bool) (*Config, error) {
	loadEnvFiles()

	cfg := Default()
	// #nosec G304 - path is provided by the user on the command line
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !required:
		return cfg, nil
	case os.IsNotExist(err):
		return nil, ferrors.ConfigError("configuration file not found").
			WithCause(err).
			WithContext("path", path).
			Build()
	case err != nil:
		return nil, ferrors.ConfigError("cannot read configuration file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, ferrors.ConfigError("cannot parse configuration file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads .env and .env.local when present. Variables already set in
// the environment win.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			fmt.Fprintf(os.Stderr, "Note: could not load %s: %v\n", name, err)
		}
	}
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, filepath.FromSlash(p))
}

func (c *Config) SourceDir() string      { return c.resolve(c.Source) }
func (c *Config) DocsDir() string        { return c.resolve(c.Docs) }
func (c *Config) ReadmePath() string     { return c.resolve(c.Readme) }
func (c *Config) NavigationPath() string { return c.resolve(c.NavigationFile) }
func (c *Config) MkDocsPath() string     { return c.resolve(c.MkDocsConfig) }

// MetricsPath is empty when metrics are disabled.
func (c *Config) MetricsPath() string { return c.resolve(c.MetricsFile) }

// PapersDir is the root of the <year>/<month>.md tree.
func (c *Config) PapersDir() string {
	return filepath.Join(c.DocsDir(), filepath.FromSlash(c.Papers))
}

// OverviewPath is the file the overview page is written to.
func (c *Config) OverviewPath() string {
	return filepath.Join(c.DocsDir(), filepath.FromSlash(c.OverviewPage))
}

// PapersRoute is the papers directory as a docs-relative route.
func (c *Config) PapersRoute() string {
	return filepath.ToSlash(filepath.Clean(filepath.FromSlash(c.Papers)))
}

// OverviewRoute is the overview page as a docs-relative route.
func (c *Config) OverviewRoute() string {
	return filepath.ToSlash(filepath.Clean(filepath.FromSlash(c.OverviewPage)))
}

// HomeRoute is the home page as a docs-relative route.
func (c *Config) HomeRoute() string {
	return filepath.ToSlash(filepath.Clean(filepath.FromSlash(c.HomePage)))
}
