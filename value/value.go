/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package value models CSS property values.
//
// Values are built from CSS text or from a lexical unit chain by a Factory,
// serialize to canonical and minified text, compare by semantic content, and
// can be matched against a syntax descriptor with MatchSyntax.
//
// Values are mutable so that a style declaration can reuse them. Every
// setter either succeeds or leaves the value exactly as it was. Values are
// not safe for concurrent mutation; read-only use from several goroutines is
// safe as long as nothing mutates the value.
package value

import (
	"fmt"

	"bennypowers.dev/cssvalues/lexical"
)

// Value is a CSS property value.
type Value interface {
	// Kind returns the coarse classification of the value.
	Kind() Kind

	// Type returns the fine-grained tag of the value.
	Type() Type

	// CSSText returns the canonical serialization.
	CSSText() string

	// MinifiedText returns the shortest serialization that parses back to an
	// equal value.
	MinifiedText() string

	// SetCSSText replaces the value with the result of parsing text. The
	// text must describe a value of the same type.
	SetCSSText(text string) error

	// SetLexicalUnit replaces the value with one built from the chain
	// starting at lu, and returns the first unit it did not consume.
	SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error)

	// Equals reports whether other has the same semantic content.
	Equals(other Value) bool

	// Hash returns a hash consistent with Equals.
	Hash() uint64

	// Clone returns an independent deep copy.
	Clone() Value
}

// Equal reports whether a and b are both nil or equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

func cloneOrNil(v Value) Value {
	if v == nil {
		return nil
	}
	return v.Clone()
}

// parseSame parses text with the default factory and requires the result to
// have the dynamic type T.
func parseSame[T Value](text string) (T, error) {
	var zero T
	nv, err := DefaultFactory().ParseProperty(text)
	if err != nil {
		return zero, err
	}
	return sameType[T](nv, text)
}

// createSame builds one value from lu with the default factory and requires
// the result to have the dynamic type T.
func createSame[T Value](lu *lexical.Unit) (T, *lexical.Unit, error) {
	var zero T
	nv, next, err := DefaultFactory().CreateSingle("", lu)
	if err != nil {
		return zero, lu, err
	}
	t, err := sameType[T](nv, lexical.Text(lu, false))
	if err != nil {
		return zero, lu, err
	}
	return t, next, nil
}

func sameType[T Value](nv Value, text string) (T, error) {
	t, ok := nv.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q is a %s value, not %s", ErrInvalidModification, text, nv.Type(), zero.Type())
	}
	return t, nil
}
