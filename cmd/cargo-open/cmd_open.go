package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fbkclanna/cargo-open/internal/editor"
	"github.com/fbkclanna/cargo-open/internal/metadata"
	"github.com/fbkclanna/cargo-open/internal/opener"
)

func newOpenCmd(lookup editor.LookupFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <CRATE>",
		Short: "Open an installed crate in your editor",
		Long: `Open the source directory of an installed crate in your editor.

The editor is taken from CARGO_EDITOR, VISUAL or EDITOR, checked in that order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, args, lookup)
		},
	}
	cmd.Flags().String("manifest-path", "", "Path to Cargo.toml (default: discovered from the current directory)")
	cmd.Flags().BoolP("verbose", "v", false, "Trace each step on stderr")
	return cmd
}

func runOpen(cmd *cobra.Command, args []string, lookup editor.LookupFunc) error {
	manifestPath, _ := cmd.Flags().GetString("manifest-path")
	verbose, _ := cmd.Flags().GetBool("verbose")

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	o := &opener.Opener{
		Provider: metadata.NewCommand(lookup),
		Lookup:   lookup,
		Launcher: &editor.Exec{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
		Log: log,
	}
	return o.Open(args[0], manifestPath)
}
