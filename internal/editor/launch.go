package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Launcher starts an editor on a directory and waits for it to exit.
type Launcher interface {
	Launch(editor, dir string) error
}

// SpawnError reports that the editor process could not be started.
type SpawnError struct {
	Editor string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("launching editor %q: %v", e.Editor, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Exec launches the editor as a child process. Nil streams default to the
// current process's standard streams.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Launch runs editor with dir as its only argument (no shell expansion).
// The editor's exit status is not inspected; only a failure to start it
// or to wait for it is an error.
func (l *Exec) Launch(editor, dir string) error {
	cmd := exec.Command(editor, dir)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err == nil || errors.As(err, &exitErr) {
		return nil
	}
	return &SpawnError{Editor: editor, Err: err}
}
