/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"strings"

	"bennypowers.dev/cssvalues/lexical"
)

// RectValue is the legacy rect() shape of the clip property. It always
// serializes its components comma-separated.
type RectValue struct {
	sides [4]Value
}

// NewRect returns rect(top, right, bottom, left).
func NewRect(top, right, bottom, left Value) (*RectValue, error) {
	r := &RectValue{sides: [4]Value{top, right, bottom, left}}
	for _, s := range r.sides {
		if err := checkRectSide(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func checkRectSide(v Value) error {
	switch s := v.(type) {
	case *NumericValue:
		if s.unit == "" && s.number != 0 {
			return fmt.Errorf("%w: rect() side %s needs a unit", ErrInvalidAccess, s.CSSText())
		}
		if s.unit == "%" {
			return fmt.Errorf("%w: rect() side %s is a percentage", ErrInvalidAccess, s.CSSText())
		}
		return nil
	case *IdentifierValue:
		if strings.EqualFold(s.name, "auto") {
			return nil
		}
	case *FunctionValue:
		if s.IsMathFunction() {
			return nil
		}
	case *VarValue, *EnvValue, *LexicalValue:
		return nil
	case nil:
		return fmt.Errorf("%w: missing rect() side", ErrInvalidAccess)
	}
	return fmt.Errorf("%w: %s is not a rect() side", ErrInvalidAccess, v.CSSText())
}

func (v *RectValue) Kind() Kind { return KindTyped }
func (v *RectValue) Type() Type { return TypeRect }

// Top returns the first side.
func (v *RectValue) Top() Value { return v.sides[0] }

// Right returns the second side.
func (v *RectValue) Right() Value { return v.sides[1] }

// Bottom returns the third side.
func (v *RectValue) Bottom() Value { return v.sides[2] }

// Left returns the fourth side.
func (v *RectValue) Left() Value { return v.sides[3] }

// Component returns the side at index 0 to 3.
func (v *RectValue) Component(index int) (Value, error) {
	if index < 0 || index > 3 {
		return nil, fmt.Errorf("%w: rect() index %d", ErrInvalidAccess, index)
	}
	return v.sides[index], nil
}

// SetComponent replaces the side at index 0 to 3.
func (v *RectValue) SetComponent(index int, side Value) error {
	if index < 0 || index > 3 {
		return fmt.Errorf("%w: rect() index %d", ErrInvalidAccess, index)
	}
	if err := checkRectSide(side); err != nil {
		return err
	}
	v.sides[index] = side
	return nil
}

func (v *RectValue) CSSText() string      { return v.text(false) }
func (v *RectValue) MinifiedText() string { return v.text(true) }

func (v *RectValue) text(minify bool) string {
	parts := make([]string, 4)
	for i, s := range v.sides {
		parts[i] = textOf(s, minify)
	}
	return "rect(" + strings.Join(parts, argSep(minify)) + ")"
}

func (v *RectValue) SetCSSText(text string) error {
	nv, err := parseSame[*RectValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *RectValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*RectValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *RectValue) Equals(other Value) bool {
	o, ok := other.(*RectValue)
	if !ok {
		return false
	}
	for i := range v.sides {
		if !v.sides[i].Equals(o.sides[i]) {
			return false
		}
	}
	return true
}

func (v *RectValue) Hash() uint64 {
	h := newHasher(TypeRect)
	for _, s := range v.sides {
		h.value(s)
	}
	return h.sum()
}

func (v *RectValue) Clone() Value {
	c := &RectValue{}
	for i, s := range v.sides {
		c.sides[i] = s.Clone()
	}
	return c
}
