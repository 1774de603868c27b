/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for cssvalues.
package check

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"bennypowers.dev/cssvalues/cmd/session"
	"bennypowers.dev/cssvalues/fs"
	"bennypowers.dev/cssvalues/validator"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check style sheets against the property registry",
	Long: `Check every declaration in the given style sheets: unknown properties,
unparseable values, values that do not match the property syntax, and
custom properties that reference each other in a cycle.

With no arguments the files come from the config file.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output problems")
	Cmd.Flags().Bool("inline", false, "Treat files as style attribute bodies")
}

// Files checks each file and returns the combined error for every file
// that has problems at error severity. Warnings are printed but do not
// fail unless opts.Strict is set.
func Files(cmd *cobra.Command, s *session.Session, files []string, opts validator.Options, quiet bool) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var failures error
	for _, file := range files {
		if !quiet {
			fmt.Fprintf(out, "Checking %s...\n", file)
		}

		data, err := s.FS.ReadFile(file)
		if err != nil {
			failures = multierr.Append(failures, fmt.Errorf("reading %s: %w", file, err))
			continue
		}

		problems := validator.Validate(data, file, opts)
		for i := range problems {
			fmt.Fprintf(errOut, "%s: %s\n", problems[i].Severity, problems[i].Error())
		}
		if validator.HasErrors(problems) {
			failures = multierr.Append(failures, fmt.Errorf("%s: %d problems", file, len(problems)))
		}
	}
	return failures
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")
	inline, _ := cmd.Flags().GetBool("inline")

	s, err := session.Load(cmd.Context(), fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		expanded, err := s.Config.ExpandFiles(s.FS, s.Root)
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	opts := validator.Options{
		Strict:   strict || s.Config.Strict,
		Inline:   inline,
		Registry: s.Registry,
		Factory:  s.Factory,
	}
	if err := Files(cmd, s, files, opts, quiet); err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "All files valid.")
	}
	return nil
}
