/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package escape_test

import (
	"math"
	"testing"

	"bennypowers.dev/cssvalues/escape"
)

func TestIdent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "foo-bar", "foo-bar"},
		{"underscore", "_x", "_x"},
		{"leading digit", "1st", `\31st`},
		{"hyphen digit", "-2x", `-\32x`},
		{"hyphen digit before hex", "-2b", `-\32 b`},
		{"leading digit before hex", "1a", `\31 a`},
		{"leading digit before non-hex", "1z", `\31z`},
		{"lone hyphen", "-", `\-`},
		{"double hyphen", "--x", "--x"},
		{"space", "a b", `a\ b`},
		{"punctuation", "a.b", `a\.b`},
		{"control", "a\x01", `a\1 `},
		{"non-ascii", "café", "café"},
		{"nul", "a\x00", "a�"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escape.Ident(tt.in); got != tt.want {
				t.Errorf("Ident(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got := escape.Unescape(escape.Ident(tt.in)); tt.in != "a\x00" && got != tt.in {
				t.Errorf("Unescape(Ident(%q)) = %q", tt.in, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		quote byte
		want  string
	}{
		{"double", "abc", '"', `"abc"`},
		{"single", "abc", '\'', `'abc'`},
		{"embedded double in double", `say "hi"`, '"', `"say \"hi\""`},
		{"embedded single kept in double", `it's`, '"', `"it's"`},
		{"embedded double kept in single", `a"b`, '\'', `'a"b'`},
		{"backslash", `a\b`, '"', `"a\\b"`},
		{"newline", "a\nb", '"', `"a\a b"`},
		{"unknown quote falls back", "x", 'x', `"x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escape.String(tt.in, tt.quote); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPreferredQuote(t *testing.T) {
	tests := []struct {
		in       string
		fallback byte
		want     byte
	}{
		{"plain", '\'', '\''},
		{"plain", '"', '"'},
		{`a"b`, '"', '\''},
		{`a'b`, '\'', '"'},
		{`'"`, '\'', '\''},
	}
	for _, tt := range tests {
		if got := escape.PreferredQuote(tt.in, tt.fallback); got != tt.want {
			t.Errorf("PreferredQuote(%q, %q) = %q, want %q", tt.in, tt.fallback, got, tt.want)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`\31 st`, "1st"},
		{`\000025`, "%"},
		{`a\"b`, `a"b`},
		{"a\\\nb", "ab"},
		{"a\\\r\nb", "ab"},
		{`\0`, "�"},
		{`\110000`, "�"},
		{`\d800`, "�"},
		{`x\`, "x�"},
		{`\e9 t\e9`, "été"},
	}
	for _, tt := range tests {
		if got := escape.Unescape(tt.in); got != tt.want {
			t.Errorf("Unescape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in       float64
		want     string
		minified string
	}{
		{1, "1", "1"},
		{1.5, "1.5", "1.5"},
		{0.5, "0.5", ".5"},
		{-0.25, "-0.25", "-.25"},
		{math.Copysign(0, -1), "0", "0"},
		{12, "12", "12"},
	}
	for _, tt := range tests {
		if got := escape.Number(tt.in); got != tt.want {
			t.Errorf("Number(%v) = %q, want %q", tt.in, got, tt.want)
		}
		if got := escape.MinifyNumber(tt.in); got != tt.minified {
			t.Errorf("MinifyNumber(%v) = %q, want %q", tt.in, got, tt.minified)
		}
	}
}

func TestMinifyInteger(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{1000, "1000"},
		{100000, "100000"},
		{-2000, "-2000"},
	}
	for _, tt := range tests {
		if got := escape.MinifyInteger(tt.in); got != tt.want {
			t.Errorf("MinifyInteger(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"f0c", "f0c"},
		{"1a2b3c", "1a2b3c"},
		{"-x", "-x"},
		{"a b", `a\ b`},
	}
	for _, tt := range tests {
		if got := escape.Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		quote byte
		want  string
	}{
		{"unquoted", "img/a.png", 0, "url(img/a.png)"},
		{"needs quotes", "a b.png", 0, `url("a b.png")`},
		{"paren", "a(1).png", 0, `url("a(1).png")`},
		{"backslash", `a\b`, 0, `url("a\\b")`},
		{"kept quote", "a.png", '\'', "url('a.png')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escape.URL(tt.in, tt.quote); got != tt.want {
				t.Errorf("URL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
