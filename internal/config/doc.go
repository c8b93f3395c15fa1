// Package config loads the papersite configuration: where the monthly sources live,
// where the mkdocs docs tree is written, and where the navigation artifact goes.
package config
