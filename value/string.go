/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"unicode/utf8"

	"bennypowers.dev/cssvalues/escape"
	"bennypowers.dev/cssvalues/lexical"
)

// StringValue is a quoted string.
type StringValue struct {
	text  string
	quote byte
}

// NewString returns a string value serialized with double quotes.
func NewString(text string) (*StringValue, error) {
	return NewQuotedString(text, escape.DoubleQuote)
}

// NewQuotedString returns a string value serialized with the given quote.
func NewQuotedString(text string, quote byte) (*StringValue, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: string is not valid UTF-8", ErrInvalidCharacter)
	}
	if err := checkQuote(quote); err != nil {
		return nil, err
	}
	return &StringValue{text: text, quote: quote}, nil
}

func checkQuote(q byte) error {
	if q != escape.DoubleQuote && q != escape.SingleQuote {
		return fmt.Errorf("%w: %q is not a quote", ErrInvalidCharacter, q)
	}
	return nil
}

func (v *StringValue) Kind() Kind { return KindTyped }
func (v *StringValue) Type() Type { return TypeString }

// StringValue returns the decoded string.
func (v *StringValue) StringValue() string { return v.text }

// SetStringValue replaces the decoded string, keeping the quote.
func (v *StringValue) SetStringValue(text string) error {
	nv, err := NewQuotedString(text, v.quote)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

// Quote returns the quote used for canonical serialization.
func (v *StringValue) Quote() byte { return v.quote }

// SetQuote changes the quote used for canonical serialization.
func (v *StringValue) SetQuote(q byte) error {
	if err := checkQuote(q); err != nil {
		return err
	}
	v.quote = q
	return nil
}

func (v *StringValue) CSSText() string { return escape.String(v.text, v.quote) }

func (v *StringValue) MinifiedText() string {
	return escape.String(v.text, escape.PreferredQuote(v.text, v.quote))
}

func (v *StringValue) SetCSSText(text string) error {
	nv, err := parseSame[*StringValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *StringValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*StringValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *StringValue) Equals(other Value) bool {
	o, ok := other.(*StringValue)
	return ok && o.text == v.text
}

func (v *StringValue) Hash() uint64 { return newHasher(TypeString).str(v.text).sum() }

func (v *StringValue) Clone() Value {
	c := *v
	return &c
}
