package metadata

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrPackageNotFound is returned when no package carries the requested name.
	ErrPackageNotFound = errors.New("package not found")

	// ErrPathResolution is returned when a manifest path has no parent directory.
	ErrPathResolution = errors.New("cannot resolve package path")
)

// Metadata is the subset of `cargo metadata --format-version 1` output
// used by cargo-open.
type Metadata struct {
	Packages        []Package `json:"packages"`
	WorkspaceRoot   string    `json:"workspace_root"`
	TargetDirectory string    `json:"target_directory"`
}

// Package is a single resolved package of the workspace graph.
type Package struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	ID           string `json:"id"`
	ManifestPath string `json:"manifest_path"`
}

// FindPackage returns the first package named exactly name.
// Among duplicate names the winner is whichever cargo listed first.
func (m *Metadata) FindPackage(name string) (*Package, error) {
	for i := range m.Packages {
		if m.Packages[i].Name == name {
			return &m.Packages[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, name)
}

// Dir returns the directory containing the package's Cargo.toml.
func (p Package) Dir() (string, error) {
	dir, file := filepath.Split(p.ManifestPath)
	if dir == "" || file == "" {
		return "", fmt.Errorf("%w: %q has no parent directory", ErrPathResolution, p.ManifestPath)
	}
	return filepath.Dir(p.ManifestPath), nil
}
