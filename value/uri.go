/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"net/url"
	"unicode/utf8"

	"bennypowers.dev/cssvalues/escape"
	"bennypowers.dev/cssvalues/lexical"
)

// URIValue is a url() value. The URL is stored unwrapped and decoded.
type URIValue struct {
	url   string
	quote byte
}

// NewURI returns a URI value that serializes unquoted when it can.
func NewURI(u string) (*URIValue, error) {
	if !utf8.ValidString(u) {
		return nil, fmt.Errorf("%w: url is not valid UTF-8", ErrInvalidCharacter)
	}
	return &URIValue{url: u}, nil
}

func (v *URIValue) Kind() Kind { return KindTyped }
func (v *URIValue) Type() Type { return TypeURI }

// URL returns the unwrapped URL.
func (v *URIValue) URL() string { return v.url }

// SetURL replaces the URL, keeping the quoting style.
func (v *URIValue) SetURL(u string) error {
	nv, err := NewURI(u)
	if err != nil {
		return err
	}
	v.url = nv.url
	return nil
}

// IsAbsolute reports whether the URL has a scheme.
func (v *URIValue) IsAbsolute() bool {
	u, err := url.Parse(v.url)
	return err == nil && u.IsAbs()
}

func (v *URIValue) CSSText() string { return escape.URL(v.url, v.quote) }

func (v *URIValue) MinifiedText() string { return minifiedURL(v.url, v.quote) }

func minifiedURL(u string, quote byte) string {
	if escape.IsURLUnquoted(u) {
		return escape.URL(u, 0)
	}
	if quote == 0 {
		quote = escape.DoubleQuote
	}
	return escape.URL(u, escape.PreferredQuote(u, quote))
}

func (v *URIValue) SetCSSText(text string) error {
	nv, err := parseSame[*URIValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *URIValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*URIValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *URIValue) Equals(other Value) bool {
	switch o := other.(type) {
	case *URIValue:
		return o.url == v.url
	case *URIWrapper:
		return o.Resolved() == v.url
	}
	return false
}

func (v *URIValue) Hash() uint64 { return hashURL(v.url) }

func hashURL(u string) uint64 { return newHasher(TypeURI).str(u).sum() }

func (v *URIValue) Clone() Value {
	c := *v
	return &c
}

// URIWrapper presents a possibly relative URI resolved against a base URL.
//
// The wrapper does not own its target: clones share it, and changes made to
// the target through Target are visible through every wrapper. Comparison,
// hashing and serialization all use the resolved absolute form.
type URIWrapper struct {
	target *URIValue
	base   string
}

// WrapURI returns a wrapper resolving target against base.
func WrapURI(target *URIValue, base string) (*URIWrapper, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil target", ErrInvalidAccess)
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("%w: base %q: %v", ErrInvalidCharacter, base, err)
	}
	return &URIWrapper{target: target, base: base}, nil
}

func (v *URIWrapper) Kind() Kind { return KindTyped }
func (v *URIWrapper) Type() Type { return TypeURI }

// Target returns the wrapped value.
func (v *URIWrapper) Target() *URIValue { return v.target }

// Base returns the base URL.
func (v *URIWrapper) Base() string { return v.base }

// Resolved returns the target resolved against the base, or the target
// unchanged when either fails to parse.
func (v *URIWrapper) Resolved() string {
	base, err := url.Parse(v.base)
	if err != nil {
		return v.target.url
	}
	ref, err := url.Parse(v.target.url)
	if err != nil {
		return v.target.url
	}
	return base.ResolveReference(ref).String()
}

func (v *URIWrapper) CSSText() string { return escape.URL(v.Resolved(), v.target.quote) }

func (v *URIWrapper) MinifiedText() string { return minifiedURL(v.Resolved(), v.target.quote) }

// SetCSSText points the wrapper at a new target parsed from text. The
// previous target is left untouched.
func (v *URIWrapper) SetCSSText(text string) error {
	nv, err := parseSame[*URIValue](text)
	if err != nil {
		return err
	}
	v.target = nv
	return nil
}

func (v *URIWrapper) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*URIValue](lu)
	if err != nil {
		return lu, err
	}
	v.target = nv
	return next, nil
}

func (v *URIWrapper) Equals(other Value) bool {
	switch o := other.(type) {
	case *URIValue:
		return o.url == v.Resolved()
	case *URIWrapper:
		return o.Resolved() == v.Resolved()
	}
	return false
}

func (v *URIWrapper) Hash() uint64 { return hashURL(v.Resolved()) }

// Clone re-wraps the same target.
func (v *URIWrapper) Clone() Value {
	return &URIWrapper{target: v.target, base: v.base}
}
