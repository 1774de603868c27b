/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for cssvalues.
package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/cssvalues/internal/version"
)

// Cmd is the version cobra command.
var Cmd = &cobra.Command{
	Use:          "version",
	Short:        "Print version information",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(version.Info())
	case "text":
		info := version.Info()
		fmt.Fprintf(out, "cssvalues %s (%s, %s)\n", info.Version, info.GoVersion, info.Platform)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
