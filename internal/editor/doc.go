// Package editor resolves the user's editor from the environment and
// launches it on a directory.
package editor
