/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package properties provides the properties command for cssvalues.
package properties

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/cssvalues/cmd/session"
	"bennypowers.dev/cssvalues/fs"
	"bennypowers.dev/cssvalues/registry"
)

// Cmd is the properties cobra command.
var Cmd = &cobra.Command{
	Use:   "properties [query]",
	Short: "List the properties in the registry",
	Long: `List the properties known to the registry, including any registries
named in the config file. An optional query filters by name substring,
and --search by regular expression.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("inherited", false, "Only list inherited properties")
	Cmd.Flags().Bool("shorthands", false, "Only list shorthand properties")
	Cmd.Flags().String("search", "", "Only list properties whose name matches a case-insensitive regex")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, names")
}

// Filter selects properties from a registry.
type Filter struct {
	Query      string
	Pattern    *regexp.Regexp
	Inherited  bool
	Shorthands bool
}

// Select returns the matching properties in name order.
func (f Filter) Select(db *registry.Database) []*registry.Property {
	var out []*registry.Property
	for _, name := range db.Names() {
		p, err := db.Property(name)
		if err != nil {
			continue
		}
		if f.Inherited && !p.Inherited {
			continue
		}
		if f.Shorthands && !p.IsShorthand() {
			continue
		}
		if !matchString(p.Name, f.Query, f.Pattern) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func run(cmd *cobra.Command, args []string) error {
	inherited, _ := cmd.Flags().GetBool("inherited")
	shorthands, _ := cmd.Flags().GetBool("shorthands")
	search, _ := cmd.Flags().GetString("search")
	format, _ := cmd.Flags().GetString("format")

	f := Filter{Inherited: inherited, Shorthands: shorthands}
	if len(args) > 0 {
		f.Query = args[0]
	}
	if search != "" {
		pattern, err := regexp.Compile("(?i)" + search)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		f.Pattern = pattern
	}

	s, err := session.Load(cmd.Context(), fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	props := f.Select(s.Registry)
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return outputJSON(out, props)
	case "names":
		for _, p := range props {
			fmt.Fprintln(out, p.Name)
		}
		return nil
	case "table":
		outputTable(out, props)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil && !pattern.MatchString(s) {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

func outputTable(w io.Writer, props []*registry.Property) {
	nameWidth, initialWidth := 4, 7
	for _, p := range props {
		nameWidth = max(nameWidth, len(p.Name))
		initialWidth = max(initialWidth, len(p.Initial))
	}
	for _, p := range props {
		initial := p.Initial
		if initial == "" {
			initial = "-"
		}
		var flags []string
		if p.Inherited {
			flags = append(flags, "inherited")
		}
		if p.IsShorthand() {
			flags = append(flags, "shorthand")
		}
		line := fmt.Sprintf("%-*s  %-*s  %s", nameWidth, p.Name, initialWidth, initial, strings.Join(flags, ","))
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func outputJSON(w io.Writer, props []*registry.Property) error {
	if props == nil {
		props = []*registry.Property{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(props)
}
