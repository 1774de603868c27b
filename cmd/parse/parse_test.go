/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parse

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"bennypowers.dev/cssvalues/testutil"
	"bennypowers.dev/cssvalues/value"
)

func TestDescribe_Golden(t *testing.T) {
	var nodes []*Node
	for _, in := range []string{"1px solid red", "var(--x, 2px)"} {
		v, err := value.ParseProperty(in)
		if err != nil {
			t.Fatalf("ParseProperty(%q): %v", in, err)
		}
		n := Describe(v)
		n.Input = in
		nodes = append(nodes, n)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(nodes); err != nil {
		t.Fatal(err)
	}

	testutil.Golden(t, "describe.golden", buf.Bytes())
}

func TestDescribe_Children(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"rect(1px, 2px, 3px, 4px)", []string{"1px", "2px", "3px", "4px"}},
		{"counter(item, upper-roman)", []string{"upper-roman"}},
		{"counter(item)", nil},
		{"translate(1px, 2px)", []string{"1px", "2px"}},
		{"10px", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := value.ParseProperty(tt.in)
			if err != nil {
				t.Fatalf("ParseProperty(%q): %v", tt.in, err)
			}
			var got []string
			for _, c := range Describe(v).Children {
				got = append(got, c.Text)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("children = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	Cmd.SetOut(&out)
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"keyword", []string{"--format", "text", "--property", "display", "FLEX"}, "text:     flex", false},
		{"media ratio", []string{"--format", "text", "--property", "", "--media", "16/9"}, "type:     ratio", false},
		{"parse error", []string{"--format", "text", "--media=false", "counter(x, inherit)"}, "error:", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			Cmd.SetArgs(tt.args)
			err := Cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q does not contain %q", out.String(), tt.want)
			}
		})
	}
}
