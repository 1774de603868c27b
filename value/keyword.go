/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"strings"
	"sync"

	"bennypowers.dev/cssvalues/lexical"
)

// InheritValue is the inherit keyword. There is exactly one instance,
// returned by Inherit.
type InheritValue struct{}

var inherit = sync.OnceValue(func() *InheritValue { return &InheritValue{} })

// Inherit returns the inherit keyword.
func Inherit() *InheritValue { return inherit() }

func (v *InheritValue) Kind() Kind           { return KindKeyword }
func (v *InheritValue) Type() Type           { return TypeInherit }
func (v *InheritValue) CSSText() string      { return "inherit" }
func (v *InheritValue) MinifiedText() string { return "inherit" }

// SetCSSText accepts only "inherit", since the keyword is shared.
func (v *InheritValue) SetCSSText(text string) error {
	if !strings.EqualFold(strings.TrimSpace(text), "inherit") {
		return fmt.Errorf("%w: the inherit keyword cannot be changed", ErrInvalidModification)
	}
	return nil
}

func (v *InheritValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	if !lu.IsIdent("inherit") {
		return lu, fmt.Errorf("%w: the inherit keyword cannot be changed", ErrInvalidModification)
	}
	return lu.Next, nil
}

func (v *InheritValue) Equals(other Value) bool {
	_, ok := other.(*InheritValue)
	return ok
}

func (v *InheritValue) Hash() uint64 { return newHasher(TypeInherit).sum() }

// Clone returns the shared instance.
func (v *InheritValue) Clone() Value { return v }

// OperatorValue is a '/', '+', '-' or '*' between the items of a list or
// function arguments.
type OperatorValue struct {
	op string
}

var operators = map[string]bool{"/": true, "+": true, "-": true, "*": true}

// NewOperator returns an operator value.
func NewOperator(op string) (*OperatorValue, error) {
	if !operators[op] {
		return nil, fmt.Errorf("%w: %q is not an operator", ErrInvalidCharacter, op)
	}
	return &OperatorValue{op: op}, nil
}

func (v *OperatorValue) Kind() Kind { return KindTyped }
func (v *OperatorValue) Type() Type { return TypeOperator }

// Operator returns the operator character.
func (v *OperatorValue) Operator() string { return v.op }

func (v *OperatorValue) CSSText() string      { return v.op }
func (v *OperatorValue) MinifiedText() string { return v.op }

func (v *OperatorValue) SetCSSText(text string) error {
	nv, err := NewOperator(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidModification, err)
	}
	*v = *nv
	return nil
}

func (v *OperatorValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*OperatorValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *OperatorValue) Equals(other Value) bool {
	o, ok := other.(*OperatorValue)
	return ok && o.op == v.op
}

func (v *OperatorValue) Hash() uint64 { return newHasher(TypeOperator).str(v.op).sum() }

func (v *OperatorValue) Clone() Value {
	c := *v
	return &c
}

// UnknownValue keeps a unit that has no typed representation, such as a
// bracketed block or a stray delimiter, so that it can be written back.
type UnknownValue struct {
	unit *lexical.Unit
}

func newUnknown(lu *lexical.Unit) *UnknownValue { return &UnknownValue{unit: lu.Detach()} }

func (v *UnknownValue) Kind() Kind { return KindTyped }
func (v *UnknownValue) Type() Type { return TypeUnknown }

func (v *UnknownValue) CSSText() string      { return lexical.Text(v.unit, false) }
func (v *UnknownValue) MinifiedText() string { return lexical.Text(v.unit, true) }

func (v *UnknownValue) SetCSSText(text string) error {
	nv, err := parseSame[*UnknownValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *UnknownValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*UnknownValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *UnknownValue) Equals(other Value) bool {
	o, ok := other.(*UnknownValue)
	return ok && o.CSSText() == v.CSSText()
}

func (v *UnknownValue) Hash() uint64 { return newHasher(TypeUnknown).str(v.CSSText()).sum() }

func (v *UnknownValue) Clone() Value { return &UnknownValue{unit: v.unit.Detach()} }
