/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package syntax_test

import (
	"errors"
	"testing"

	"bennypowers.dev/cssvalues/syntax"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want []syntax.Component
	}{
		{"<length>", []syntax.Component{{Name: "length", Category: syntax.Length}}},
		{"<custom-ident>#", []syntax.Component{{Name: "custom-ident", Category: syntax.CustomIdent, Multiplier: syntax.CommaList}}},
		{"<string> | <custom-ident>", []syntax.Component{
			{Name: "string", Category: syntax.String},
			{Name: "custom-ident", Category: syntax.CustomIdent},
		}},
		{"auto | <length>+", []syntax.Component{
			{Name: "auto", Category: syntax.Keyword},
			{Name: "length", Category: syntax.Length, Multiplier: syntax.SpaceList},
		}},
		{"<transform-list>", []syntax.Component{{Name: "transform-list", Category: syntax.TransformList, Multiplier: syntax.SpaceList}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := syntax.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if d.Universal {
				t.Fatalf("Parse(%q) is universal", tt.in)
			}
			if len(d.Alternatives) != len(tt.want) {
				t.Fatalf("Parse(%q) = %d alternatives, want %d", tt.in, len(d.Alternatives), len(tt.want))
			}
			for i, c := range d.Alternatives {
				if c != tt.want[i] {
					t.Errorf("alternative %d = %+v, want %+v", i, c, tt.want[i])
				}
			}
		})
	}
}

func TestParseUniversal(t *testing.T) {
	d, err := syntax.Parse(" * ")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Universal || d.String() != "*" {
		t.Errorf("Parse(*) = %+v", d)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "<length", "<bogus>", "a | ", "<length> | *", "<transform-list>#", "1x"} {
		t.Run(in, func(t *testing.T) {
			if _, err := syntax.Parse(in); !errors.Is(err, syntax.ErrInvalidSyntax) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidSyntax", in, err)
			}
		})
	}
}

func TestString(t *testing.T) {
	for _, in := range []string{"<length>", "<color> | none", "<custom-ident>#", "<length>+ | auto", "<transform-list>"} {
		if got := syntax.MustParse(in).String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
	}
}
