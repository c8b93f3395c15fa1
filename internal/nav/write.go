package nav

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "github.com/FadelMamar/3dcp.fyi/internal/foundation/errors"
)

// Format is a serialization format for the navigation artifact.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const navKey = "nav"

// Marshal serializes the navigation in the given format.
func Marshal(nodes []Node, format Format) ([]byte, error) {
	if nodes == nil {
		nodes = []Node{}
	}
	switch format {
	case FormatJSON:
		return json.MarshalIndent(nodes, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(sequence(nodes)); err != nil {
			_ = enc.Close()
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported navigation format %q", format)
	}
}

// WriteFile writes the serialized navigation to path.
func WriteFile(path string, nodes []Node, format Format) error {
	data, err := Marshal(nodes, format)
	if err != nil {
		return ferrors.NavigationError("cannot serialize navigation").
			WithCause(err).
			WithContext("format", string(format)).
			Build()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ferrors.FileSystemError("cannot create navigation directory").
			WithCause(err).
			WithContext("path", filepath.Dir(path)).
			Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.FileSystemError("cannot write navigation file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}

// UpdateMkDocsConfig replaces the nav key of an mkdocs config file in place.
// Every other key keeps its value, order, comments and custom tags.
func UpdateMkDocsConfig(path string, nodes []Node) error {
	// #nosec G304 - path is the configured mkdocs config
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ferrors.NotFoundError("mkdocs config not found").
				WithCause(err).
				WithContext("path", path).
				Build()
		}
		return ferrors.FileSystemError("cannot read mkdocs config").
			WithCause(err).
			WithContext("path", path).
			Build()
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return ferrors.ConfigError("cannot parse mkdocs config").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode}}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return ferrors.ConfigError("cannot update mkdocs config").
			WithCause(ErrInvalidMkDocsConfig).
			WithContext("path", path).
			Build()
	}

	setMappingValue(doc.Content[0], navKey, sequence(nodes))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		_ = enc.Close()
		return ferrors.NavigationError("cannot serialize mkdocs config").WithCause(err).Build()
	}
	if err := enc.Close(); err != nil {
		return ferrors.NavigationError("cannot serialize mkdocs config").WithCause(err).Build()
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return ferrors.FileSystemError("cannot write mkdocs config").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}

func setMappingValue(mapping *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}
