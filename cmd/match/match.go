/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package match provides the match command for cssvalues.
package match

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/cssvalues/cmd/session"
	"bennypowers.dev/cssvalues/fs"
	"bennypowers.dev/cssvalues/syntax"
	"bennypowers.dev/cssvalues/value"
)

// ErrNoMatch is returned when at least one value does not match.
var ErrNoMatch = errors.New("value does not match")

// Cmd is the match cobra command.
var Cmd = &cobra.Command{
	Use:   "match <syntax> <value>...",
	Short: "Test CSS values against a syntax descriptor",
	Long: `Test each value against a syntax descriptor such as "<length>#" or
"<color> | none" and print true or false. Exits non-zero if any value does
not match.`,
	Example:      `  cssvalues match '<length-percentage>+' '1px 2%' 'auto'`,
	Args:         cobra.MinimumNArgs(2),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	def, err := syntax.Parse(args[0])
	if err != nil {
		return err
	}

	s, err := session.Load(cmd.Context(), fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	misses := 0
	for _, arg := range args[1:] {
		v, err := s.Factory.ParseProperty(arg)
		ok := err == nil && value.MatchSyntax(v, def)
		if !ok {
			misses++
		}
		fmt.Fprintf(out, "%-5t %s\n", ok, arg)
	}
	if misses > 0 {
		return fmt.Errorf("%w: %d of %d", ErrNoMatch, misses, len(args)-1)
	}
	return nil
}
