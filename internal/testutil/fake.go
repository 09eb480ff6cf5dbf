// Package testutil builds fake executables for tests that spawn processes.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// WriteScript writes an executable shell script named name into a temp
// directory and returns its path. Tests using it are skipped on Windows.
func WriteScript(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}
	return path
}

// FakeCargo creates a fake cargo binary that prints metadataJSON on stdout.
// It returns the binary path and the file its arguments are recorded to,
// one per line.
func FakeCargo(t *testing.T, metadataJSON string) (bin, argsFile string) {
	t.Helper()
	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	jsonFile := filepath.Join(dir, "metadata.json")
	if err := os.WriteFile(jsonFile, []byte(metadataJSON), 0600); err != nil {
		t.Fatal(err)
	}
	body := fmt.Sprintf("printf '%%s\\n' \"$@\" > %q\ncat %q\n", argsFile, jsonFile)
	return WriteScript(t, "cargo", body), argsFile
}

// FailingCargo creates a fake cargo binary that writes stderr and exits with code.
func FailingCargo(t *testing.T, stderr string, code int) string {
	t.Helper()
	stderrFile := filepath.Join(t.TempDir(), "stderr")
	if err := os.WriteFile(stderrFile, []byte(stderr+"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	body := fmt.Sprintf("cat %q >&2\nexit %d\n", stderrFile, code)
	return WriteScript(t, "cargo", body)
}

// FakeEditor creates a fake editor that records its arguments and exits
// with code. It returns the binary path and the arguments file.
func FakeEditor(t *testing.T, code int) (bin, argsFile string) {
	t.Helper()
	argsFile = filepath.Join(t.TempDir(), "args")
	body := fmt.Sprintf("printf '%%s\\n' \"$@\" > %q\nexit %d\n", argsFile, code)
	return WriteScript(t, "editor", body), argsFile
}

// ReadArgs returns the arguments recorded by a fake executable.
func ReadArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("reading recorded args: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// MetadataJSON renders a minimal `cargo metadata` document for the given
// name/manifest path pairs.
func MetadataJSON(pairs ...string) string {
	var b strings.Builder
	b.WriteString(`{"packages":[`)
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"name":%q,"version":"0.1.0","id":"%s 0.1.0","manifest_path":%q}`, pairs[i], pairs[i], pairs[i+1])
	}
	b.WriteString(`],"workspace_root":"/ws","target_directory":"/ws/target","version":1}`)
	return b.String()
}

// FileExists reports whether path exists, e.g. whether a fake executable
// recorded an invocation.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
