package main

import (
	"github.com/spf13/cobra"

	"github.com/fbkclanna/cargo-open/internal/editor"
)

// newRootCmd builds the command tree. Cargo runs external subcommands as
// `cargo-open open <args>`, so the root is named after cargo itself.
func newRootCmd(lookup editor.LookupFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cargo",
		Short:         "Open an installed crate in your editor",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newOpenCmd(lookup),
	)

	return cmd
}
