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

// RatioValue is a ratio such as 16/9.
//
// Degenerate ratios like 0/0 and 1/0 are accepted. Components are
// non-negative unitless numbers, math functions or proxies.
type RatioValue struct {
	antecedent Value
	consequent Value
}

// NewRatio returns the ratio a/c.
func NewRatio(a, c float64) (*RatioValue, error) {
	return NewRatioOf(NewNumber(a), NewNumber(c))
}

// NewRatioOf returns a ratio of two component values.
func NewRatioOf(antecedent, consequent Value) (*RatioValue, error) {
	if err := checkRatioComponent(antecedent); err != nil {
		return nil, err
	}
	if err := checkRatioComponent(consequent); err != nil {
		return nil, err
	}
	return &RatioValue{antecedent: antecedent, consequent: consequent}, nil
}

func checkRatioComponent(v Value) error {
	switch c := v.(type) {
	case nil:
		return fmt.Errorf("%w: missing ratio component", ErrInvalidAccess)
	case *NumericValue:
		if c.unit != "" {
			return fmt.Errorf("%w: ratio component %s has a unit", ErrInvalidAccess, c.CSSText())
		}
		if c.number < 0 {
			return fmt.Errorf("%w: ratio component %s is negative", ErrInvalidAccess, c.CSSText())
		}
		return nil
	case *FunctionValue:
		if c.IsMathFunction() {
			return nil
		}
	case *VarValue, *EnvValue, *LexicalValue:
		return nil
	}
	return fmt.Errorf("%w: ratio component %s is not a number", ErrInvalidAccess, v.CSSText())
}

func (v *RatioValue) Kind() Kind { return KindTyped }
func (v *RatioValue) Type() Type { return TypeRatio }

// Antecedent returns the first component.
func (v *RatioValue) Antecedent() Value { return v.antecedent }

// Consequent returns the second component.
func (v *RatioValue) Consequent() Value { return v.consequent }

// SetAntecedent replaces the first component.
func (v *RatioValue) SetAntecedent(c Value) error { return v.SetComponent(0, c) }

// SetConsequent replaces the second component.
func (v *RatioValue) SetConsequent(c Value) error { return v.SetComponent(1, c) }

// Component returns the antecedent for index 0 or below and the consequent
// for index 1 or above.
func (v *RatioValue) Component(index int) Value {
	if index <= 0 {
		return v.antecedent
	}
	return v.consequent
}

// SetComponent replaces the component at index, mapped as in Component.
func (v *RatioValue) SetComponent(index int, c Value) error {
	if err := checkRatioComponent(c); err != nil {
		return err
	}
	if index <= 0 {
		v.antecedent = c
	} else {
		v.consequent = c
	}
	return nil
}

func (v *RatioValue) CSSText() string {
	return v.antecedent.CSSText() + "/" + v.consequent.CSSText()
}

func (v *RatioValue) MinifiedText() string {
	return v.antecedent.MinifiedText() + "/" + v.consequent.MinifiedText()
}

func (v *RatioValue) SetCSSText(text string) error {
	nv, err := DefaultFactory().ParseMediaFeature(text)
	if err != nil {
		return err
	}
	r, err := sameType[*RatioValue](nv, text)
	if err != nil {
		return err
	}
	*v = *r
	return nil
}

func (v *RatioValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	r, next, err := DefaultFactory().ratio(lu)
	if err != nil {
		return lu, err
	}
	*v = *r
	return next, nil
}

func (v *RatioValue) Equals(other Value) bool {
	o, ok := other.(*RatioValue)
	return ok && o.antecedent.Equals(v.antecedent) && o.consequent.Equals(v.consequent)
}

func (v *RatioValue) Hash() uint64 {
	return newHasher(TypeRatio).value(v.antecedent).value(v.consequent).sum()
}

func (v *RatioValue) Clone() Value {
	return &RatioValue{antecedent: v.antecedent.Clone(), consequent: v.consequent.Clone()}
}
