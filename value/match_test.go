/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/cssvalues/syntax"
	"bennypowers.dev/cssvalues/value"
)

func TestMatchSyntax(t *testing.T) {
	tests := []struct {
		value      string
		descriptor string
		want       bool
	}{
		{"auto", "<string> | <custom-ident>", true},
		{"auto", "<length>", false},
		{"auto", "*", true},
		{"auto", "auto | none", true},
		{"AUTO", "auto", true},
		{"default", "<custom-ident>", false},
		{"initial", "<custom-ident>", false},
		{"'x'", "<string>", true},
		{"'x'", "<custom-ident>", false},
		{"red", "<color>", true},
		{"currentcolor", "<color>", true},
		{"#f0c", "<color>", true},
		{"rgb(1 2 3)", "<color>", true},
		{"12px", "<length>", true},
		{"0", "<length>", true},
		{"5", "<length>", false},
		{"5", "<number>", true},
		{"3", "<integer>", true},
		{"3.5", "<integer>", false},
		{"50%", "<percentage>", true},
		{"50%", "<length-percentage>", true},
		{"50%", "<length>", false},
		{"12px", "<length-percentage>", true},
		{"45deg", "<angle>", true},
		{"10s", "<time>", true},
		{"200ms", "<length>", false},
		{"2fr", "<flex>", true},
		{"96dpi", "<resolution>", true},
		{"1px, 2px", "<length>#", true},
		{"1px 2px", "<length>#", false},
		{"1px 2px", "<length>+", true},
		{"1px 2px", "<length>", false},
		{"1px, red", "<length>#", false},
		{"1px", "<length>#", true},
		{"calc(1px + 2%)", "<length-percentage>", true},
		{"calc(1px + 2%)", "<length>", false},
		{"calc(1px + 2px)", "<length>", true},
		{"calc(2 * 3)", "<number>", true},
		{"calc(2 * 3)", "<integer>", true},
		{"calc(2 * 1.5)", "<integer>", false},
		{"calc(2 * 3px)", "<length>", true},
		{"calc(1px + 1deg)", "<length>", false},
		{"min(10px, calc(1em * 2))", "<length>", true},
		{"url(a.png)", "<url>", true},
		{"url(a.png)", "<image>", true},
		{"linear-gradient(red, blue)", "<image>", true},
		{"element(#a)", "<image>", true},
		{"future(1)", "<image>", false},
		{"rotate(45deg)", "<transform-function>", true},
		{"rotate(45deg) scale(2)", "<transform-list>", true},
		{"rotate(45deg), scale(2)", "<transform-list>", false},
		{"inherit", "*", true},
		{"inherit", "<custom-ident>", false},
		{"var(--a)", "<length>", false},
		{"var(--a) 1px", "<length>+", false},
		{"red", "<length> | <color>", true},
	}
	for _, tt := range tests {
		t.Run(tt.value+" "+tt.descriptor, func(t *testing.T) {
			v := mustParse(t, tt.value)
			assert.Equal(t, tt.want, value.Matches(v, tt.descriptor))
			before := v.CSSText()
			value.MatchSyntax(v, syntax.MustParse(tt.descriptor))
			assert.Equal(t, before, v.CSSText(), "matching changed the value")
		})
	}
}

func TestMatchesInvalidDescriptor(t *testing.T) {
	v := mustParse(t, "auto")
	for _, d := range []string{"", "<bogus>", "<length", "* | auto"} {
		assert.False(t, value.Matches(v, d), "descriptor %q", d)
	}
	assert.False(t, value.MatchSyntax(nil, syntax.MustParse("*")), "nil value")
}

func TestURIWrapperMatchesURL(t *testing.T) {
	target, _ := value.NewURI("a.png")
	w, err := value.WrapURI(target, "https://example.com/")
	require.NoError(t, err)
	assert.True(t, value.Matches(w, "<url>"))
}

func TestMinifiedIntegerStaysInteger(t *testing.T) {
	tests := []struct {
		text     string
		minified string
	}{
		{"1000", "1000"},
		{"100000", "100000"},
		{"-2000", "-2000"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v := mustParse(t, tt.text)
			require.True(t, value.Matches(v, "<integer>"))
			assert.Equal(t, tt.minified, v.MinifiedText())

			again := mustParse(t, v.MinifiedText())
			assert.True(t, value.Matches(again, "<integer>"), "reparsed %q", v.MinifiedText())
			assert.True(t, v.Equals(again))
		})
	}
}

func TestMinifiedNonIntegerMayUseExponent(t *testing.T) {
	v := mustParse(t, "1000px")
	again := mustParse(t, v.MinifiedText())
	assert.True(t, value.Matches(again, "<length>"))
	assert.True(t, v.Equals(again))
}
