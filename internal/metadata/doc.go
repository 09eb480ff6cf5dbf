// Package metadata wraps the `cargo metadata` command used by cargo-open.
// It runs cargo, decodes the workspace description it prints, and locates
// a package and its source directory within that description.
package metadata
