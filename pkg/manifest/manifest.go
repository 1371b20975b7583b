// Package manifest reads project manifests that describe the codebase a
// visualization model is built for: name, root path, declared languages,
// repository coordinates, and free-form properties. The manifest supplies
// the caller side of graph metadata; everything else is computed during
// assembly.
package manifest

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

// DefaultFilename is the conventional manifest name at a project root.
const DefaultFilename = "ivm.toml"

// Repository identifies the source repository of a project.
type Repository struct {
	URL    string `toml:"url"`
	Branch string `toml:"branch"`
	Commit string `toml:"commit"`
}

// Manifest is a parsed project manifest.
//
// Example:
//
//	name = "shop"
//	root_path = "/src/shop"
//	languages = ["go", "typescript"]
//
//	[repository]
//	url = "https://example.com/shop.git"
//	branch = "main"
//
//	[properties]
//	team = "platform"
type Manifest struct {
	Name       string         `toml:"name"`
	RootPath   string         `toml:"root_path"`
	Languages  []string       `toml:"languages"`
	Repository Repository     `toml:"repository"`
	Properties map[string]any `toml:"properties"`
}

// Load reads and parses a manifest file.
func Load(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse parses manifest content directly.
func Parse(data string) (Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// GraphMetadata converts the manifest into the caller-supplied portion of
// graph metadata.
func (m Manifest) GraphMetadata() ivm.GraphMetadata {
	return ivm.GraphMetadata{
		Name:          m.Name,
		RootPath:      m.RootPath,
		Languages:     append([]string(nil), m.Languages...),
		RepositoryURL: m.Repository.URL,
		Branch:        m.Repository.Branch,
		Commit:        m.Repository.Commit,
		Properties:    m.Properties,
	}
}
