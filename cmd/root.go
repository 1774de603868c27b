/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for cssvalues.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/cssvalues/cmd/check"
	"bennypowers.dev/cssvalues/cmd/match"
	"bennypowers.dev/cssvalues/cmd/parse"
	"bennypowers.dev/cssvalues/cmd/properties"
	"bennypowers.dev/cssvalues/cmd/version"
	"bennypowers.dev/cssvalues/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cssvalues",
	Short: "Parse, match and check CSS property values",
	Long: `cssvalues parses CSS property values into typed values, serializes them
in canonical and minified form, and checks style sheets against a registry
of property syntaxes.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			logger.SetLevel(logger.LevelDebug)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("quote", "", "Preferred string quote (single, double)")
	flags.StringP("config", "c", "", "Config file (default .config/cssvalues.{yaml,yml,json})")
	flags.BoolP("verbose", "v", false, "Log debug messages")

	for _, name := range []string{"quote", "config", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("CSSVALUES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(match.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(properties.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
