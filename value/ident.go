/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/cssvalues/escape"
	"bennypowers.dev/cssvalues/lexical"
)

var wideKeywords = map[string]bool{
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"revert":       true,
	"revert-layer": true,
}

// IsCSSWideKeyword reports whether name is a keyword every property accepts.
func IsCSSWideKeyword(name string) bool {
	return wideKeywords[strings.ToLower(name)]
}

// IsColorKeyword reports whether name is a named color, transparent or
// currentcolor.
func IsColorKeyword(name string) bool {
	lower := strings.ToLower(name)
	if lower == "currentcolor" || lower == "transparent" {
		return true
	}
	for _, r := range lower {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	// A name made only of hex letters (such as "add") is also accepted as
	// prefix-less hex by the parser, which is not a CSS color keyword.
	if strings.Trim(lower, "abcdef") == "" {
		return false
	}
	_, err := csscolorparser.Parse(lower)
	return err == nil
}

// IdentifierValue is a keyword or custom identifier.
type IdentifierValue struct {
	name string
}

// NewIdentifier returns an identifier value. The name is stored decoded,
// without escapes.
func NewIdentifier(name string) (*IdentifierValue, error) {
	if err := checkIdent(name); err != nil {
		return nil, err
	}
	if strings.EqualFold(name, "inherit") {
		return nil, fmt.Errorf("%w: inherit is a keyword value, use Inherit()", ErrInvalidAccess)
	}
	return &IdentifierValue{name: name}, nil
}

func checkIdent(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidCharacter)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: identifier is not valid UTF-8", ErrInvalidCharacter)
	}
	return nil
}

func (v *IdentifierValue) Kind() Kind { return KindTyped }
func (v *IdentifierValue) Type() Type { return TypeIdent }

// Name returns the decoded identifier.
func (v *IdentifierValue) Name() string { return v.name }

// SetName replaces the identifier.
func (v *IdentifierValue) SetName(name string) error {
	nv, err := NewIdentifier(name)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

// IsCSSWideKeyword reports whether the identifier is a CSS-wide keyword.
func (v *IdentifierValue) IsCSSWideKeyword() bool { return IsCSSWideKeyword(v.name) }

// IsColorKeyword reports whether the identifier names a color.
func (v *IdentifierValue) IsColorKeyword() bool { return IsColorKeyword(v.name) }

// IsCustomIdent reports whether the identifier can serve as a <custom-ident>.
func (v *IdentifierValue) IsCustomIdent() bool {
	return !v.IsCSSWideKeyword() && !strings.EqualFold(v.name, "default")
}

func (v *IdentifierValue) CSSText() string      { return escape.Ident(v.name) }
func (v *IdentifierValue) MinifiedText() string { return v.CSSText() }

func (v *IdentifierValue) SetCSSText(text string) error {
	nv, err := parseSame[*IdentifierValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *IdentifierValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*IdentifierValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *IdentifierValue) Equals(other Value) bool {
	o, ok := other.(*IdentifierValue)
	return ok && o.name == v.name
}

func (v *IdentifierValue) Hash() uint64 { return newHasher(TypeIdent).str(v.name).sum() }

func (v *IdentifierValue) Clone() Value {
	c := *v
	return &c
}
