/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"

	"bennypowers.dev/cssvalues/lexical"
)

// LexicalValue holds a unit chain whose type cannot be known until
// var() substitution, such as a custom property definition or a value that
// mixes var() with other content.
type LexicalValue struct {
	chain *lexical.Unit
}

// NewLexical returns a placeholder holding a copy of the chain starting at lu.
func NewLexical(lu *lexical.Unit) (*LexicalValue, error) {
	if lu == nil {
		return nil, fmt.Errorf("%w: empty value", ErrSyntax)
	}
	return &LexicalValue{chain: lu.Clone()}, nil
}

func (v *LexicalValue) Kind() Kind { return KindProxy }
func (v *LexicalValue) Type() Type { return TypeLexical }

// Chain returns a copy of the held units.
func (v *LexicalValue) Chain() *lexical.Unit { return v.chain.Clone() }

// FinalType guesses the type the placeholder would have once consumed by a
// property expecting a single value. It returns TypeUnknown whenever the
// content is ambiguous.
func (v *LexicalValue) FinalType() Type {
	u := v.chain
	if u.Next == nil {
		return singleFinalType(u)
	}
	if u.Next.Type == lexical.TypeSlash && u.Next.Next != nil && u.Next.Next.Next == nil {
		if isRatioSide(u) && isRatioSide(u.Next.Next) {
			return TypeRatio
		}
	}
	return TypeUnknown
}

func singleFinalType(u *lexical.Unit) Type {
	switch u.Type {
	case lexical.TypeNumber, lexical.TypePercentage, lexical.TypeDimension:
		return TypeNumeric
	case lexical.TypeIdent:
		return TypeIdent
	case lexical.TypeString:
		return TypeString
	case lexical.TypeHash:
		if isHexColor(u.Text) {
			return TypeColor
		}
	case lexical.TypeFunction:
		name := u.Name()
		switch {
		case IsMathFunction(name):
			return TypeNumeric
		case IsColorFunction(name):
			return TypeColor
		}
	}
	return TypeUnknown
}

// isRatioSide reports whether u can be one side of a ratio: a unitless
// number or a math function.
func isRatioSide(u *lexical.Unit) bool {
	switch u.Type {
	case lexical.TypeNumber:
		return true
	case lexical.TypeFunction:
		return IsMathFunction(u.Name())
	}
	return false
}

func (v *LexicalValue) CSSText() string      { return lexical.Serialize(v.chain, false) }
func (v *LexicalValue) MinifiedText() string { return lexical.Serialize(v.chain, true) }

// SetCSSText replaces the held units with any text that tokenizes.
func (v *LexicalValue) SetCSSText(text string) error {
	lu, err := lexical.Parse(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	nv, err := NewLexical(lu)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

// SetLexicalUnit consumes the whole chain.
func (v *LexicalValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, err := NewLexical(lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return nil, nil
}

func (v *LexicalValue) Equals(other Value) bool {
	o, ok := other.(*LexicalValue)
	return ok && o.CSSText() == v.CSSText()
}

func (v *LexicalValue) Hash() uint64 { return newHasher(TypeLexical).str(v.CSSText()).sum() }

func (v *LexicalValue) Clone() Value { return &LexicalValue{chain: v.chain.Clone()} }
