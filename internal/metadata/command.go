package metadata

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Provider returns the workspace metadata for a manifest. An empty
// manifestPath leaves manifest discovery to the provider.
type Provider interface {
	Metadata(manifestPath string) (*Metadata, error)
}

// Error reports a failed metadata query.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "metadata error: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Command runs `cargo metadata` to produce workspace metadata.
type Command struct {
	// Cargo is the cargo executable. Empty means "cargo" from PATH.
	Cargo string
	// Dir is the working directory for cargo. Empty means the current directory.
	Dir string
}

// NewCommand returns a Command using the cargo binary named by the CARGO
// variable of lookup, which cargo sets for its subcommands.
func NewCommand(lookup func(string) (string, bool)) *Command {
	c := &Command{}
	if cargo, ok := lookup("CARGO"); ok && cargo != "" {
		c.Cargo = cargo
	}
	return c
}

// Metadata runs cargo and decodes its output.
func (c *Command) Metadata(manifestPath string) (*Metadata, error) {
	out, err := c.output(c.args(manifestPath)...)
	if err != nil {
		return nil, &Error{Err: err}
	}
	m, err := Parse(out)
	if err != nil {
		return nil, &Error{Err: err}
	}
	return m, nil
}

func (c *Command) args(manifestPath string) []string {
	args := []string{"metadata", "--format-version", "1"}
	if manifestPath != "" {
		args = append(args, "--manifest-path", manifestPath)
	}
	return args
}

func (c *Command) cargo() string {
	if c.Cargo != "" {
		return c.Cargo
	}
	return "cargo"
}

// output executes cargo and returns its stdout.
// Stderr is captured and included in the error message on failure.
func (c *Command) output(args ...string) ([]byte, error) {
	cmd := exec.Command(c.cargo(), args...)
	cmd.Dir = c.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("cargo %s: %w: %s", strings.Join(args, " "), err, msg)
		}
		return nil, fmt.Errorf("cargo %s: %w", strings.Join(args, " "), err)
	}
	return stdout.Bytes(), nil
}
