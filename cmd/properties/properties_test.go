/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package properties

import (
	"bytes"
	"encoding/json"
	"regexp"
	"slices"
	"strings"
	"testing"

	"bennypowers.dev/cssvalues/registry"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		query    string
		pattern  *regexp.Regexp
		expected bool
	}{
		{"simple match", "border-top-color", "top", nil, true},
		{"case insensitive", "Z-Index", "index", nil, true},
		{"no match", "color", "margin", nil, false},
		{"empty query", "color", "", nil, true},
		{"regex match", "margin-top", "", regexp.MustCompile(`^margin-`), true},
		{"regex no match", "padding-top", "", regexp.MustCompile(`^margin-`), false},
		{"regex and query", "margin-top", "bottom", regexp.MustCompile(`^margin-`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchString(tt.s, tt.query, tt.pattern)
			if got != tt.expected {
				t.Errorf("matchString(%q, %q, pattern) = %v, want %v", tt.s, tt.query, got, tt.expected)
			}
		})
	}
}

func testRegistry(t *testing.T) *registry.Database {
	t.Helper()
	db, err := registry.Parse([]byte(`
properties:
  - name: color
    initial: black
    inherited: true
    syntax: "<color>"
  - name: margin
    initial: "0"
    longhands: [margin-top, margin-bottom]
  - name: margin-top
    initial: "0"
    syntax: "<length-percentage>"
  - name: margin-bottom
    initial: "0"
    syntax: "<length-percentage>"
`))
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func names(props []*registry.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterSelect(t *testing.T) {
	db := testRegistry(t)
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filters", Filter{}, []string{"color", "margin", "margin-bottom", "margin-top"}},
		{"inherited", Filter{Inherited: true}, []string{"color"}},
		{"shorthands", Filter{Shorthands: true}, []string{"margin"}},
		{"query", Filter{Query: "TOP"}, []string{"margin-top"}},
		{"pattern", Filter{Pattern: regexp.MustCompile(`^margin-`)}, []string{"margin-bottom", "margin-top"}},
		{"nothing", Filter{Query: "padding"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(tt.filter.Select(db))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Select() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutputTable(t *testing.T) {
	db := testRegistry(t)
	var buf bytes.Buffer
	outputTable(&buf, Filter{}.Select(db))

	want := strings.Join([]string{
		"color          black    inherited",
		"margin         0        shorthand",
		"margin-bottom  0",
		"margin-top     0",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("outputTable() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestOutputJSON(t *testing.T) {
	db := testRegistry(t)
	var buf bytes.Buffer
	if err := outputJSON(&buf, Filter{Shorthands: true}.Select(db)); err != nil {
		t.Fatal(err)
	}

	var got []registry.Property
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 1 || got[0].Name != "margin" {
		t.Fatalf("got %+v", got)
	}
	if !slices.Equal(got[0].Longhands, []string{"margin-top", "margin-bottom"}) {
		t.Errorf("Longhands = %v", got[0].Longhands)
	}

	buf.Reset()
	if err := outputJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty output = %q", buf.String())
	}
}
