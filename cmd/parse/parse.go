/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for cssvalues.
package parse

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/cssvalues/cmd/session"
	"bennypowers.dev/cssvalues/fs"
	"bennypowers.dev/cssvalues/value"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse <value>...",
	Short: "Parse CSS values and print their structure",
	Long: `Parse each argument as a CSS property value and print its kind, type,
canonical text and minified text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("property", "p", "", "Property the values belong to")
	Cmd.Flags().Bool("media", false, "Parse as media feature values")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

// Node is the printed form of a value.
type Node struct {
	Input    string  `json:"input,omitempty"`
	Kind     string  `json:"kind,omitempty"`
	Type     string  `json:"type,omitempty"`
	Text     string  `json:"text,omitempty"`
	Minified string  `json:"minified,omitempty"`
	Error    string  `json:"error,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Describe builds the tree for v.
func Describe(v value.Value) *Node {
	n := &Node{
		Kind:     v.Kind().String(),
		Type:     v.Type().String(),
		Text:     v.CSSText(),
		Minified: v.MinifiedText(),
	}
	for _, c := range children(v) {
		if c != nil {
			n.Children = append(n.Children, Describe(c))
		}
	}
	return n
}

func children(v value.Value) []value.Value {
	switch x := v.(type) {
	case *value.ValueList:
		return x.Items()
	case *value.FunctionValue:
		if l, ok := x.Arguments().(*value.ValueList); ok {
			return l.Items()
		}
		return []value.Value{x.Arguments()}
	case *value.VarValue:
		return []value.Value{x.Fallback()}
	case *value.EnvValue:
		return []value.Value{x.Fallback()}
	case *value.AttrValue:
		return []value.Value{x.Fallback()}
	case *value.RectValue:
		return []value.Value{x.Top(), x.Right(), x.Bottom(), x.Left()}
	case *value.RatioValue:
		return []value.Value{x.Antecedent(), x.Consequent()}
	case *value.CounterValue:
		return []value.Value{x.Style()}
	case *value.CountersValue:
		return []value.Value{x.Style()}
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	property, _ := cmd.Flags().GetString("property")
	media, _ := cmd.Flags().GetBool("media")
	format, _ := cmd.Flags().GetString("format")

	s, err := session.Load(cmd.Context(), fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	nodes := make([]*Node, 0, len(args))
	failed := 0
	for _, arg := range args {
		var v value.Value
		if media {
			v, err = s.Factory.ParseMediaFeature(arg)
		} else {
			v, err = s.Factory.ParsePropertyFor(property, arg)
		}
		if err != nil {
			failed++
			nodes = append(nodes, &Node{Input: arg, Error: err.Error()})
			continue
		}
		n := Describe(v)
		n.Input = arg
		nodes = append(nodes, n)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nodes); err != nil {
			return err
		}
	case "text":
		for _, n := range nodes {
			writeText(out, n)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d values failed to parse", failed, len(args))
	}
	return nil
}

func writeText(w io.Writer, n *Node) {
	fmt.Fprintln(w, n.Input)
	if n.Error != "" {
		fmt.Fprintf(w, "  error:    %s\n", n.Error)
		return
	}
	fmt.Fprintf(w, "  kind:     %s\n", n.Kind)
	fmt.Fprintf(w, "  type:     %s\n", n.Type)
	fmt.Fprintf(w, "  text:     %s\n", n.Text)
	fmt.Fprintf(w, "  minified: %s\n", n.Minified)
}
