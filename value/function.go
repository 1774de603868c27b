/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"strings"

	"bennypowers.dev/cssvalues/escape"
	"bennypowers.dev/cssvalues/lexical"
)

var mathFunctions = map[string]bool{
	"calc": true, "min": true, "max": true, "clamp": true,
	"round": true, "mod": true, "rem": true, "abs": true, "sign": true,
	"sin": true, "cos": true, "tan": true, "asin": true, "acos": true, "atan": true, "atan2": true,
	"pow": true, "sqrt": true, "hypot": true, "log": true, "exp": true,
	"-webkit-calc": true, "-moz-calc": true,
}

var imageFunctions = map[string]bool{
	"linear-gradient": true, "radial-gradient": true, "conic-gradient": true,
	"repeating-linear-gradient": true, "repeating-radial-gradient": true, "repeating-conic-gradient": true,
	"image": true, "image-set": true, "-webkit-image-set": true, "cross-fade": true, "paint": true,
}

var transformFunctions = map[string]bool{
	"matrix": true, "matrix3d": true, "perspective": true,
	"translate": true, "translate3d": true, "translatex": true, "translatey": true, "translatez": true,
	"scale": true, "scale3d": true, "scalex": true, "scaley": true, "scalez": true,
	"rotate": true, "rotate3d": true, "rotatex": true, "rotatey": true, "rotatez": true,
	"skew": true, "skewx": true, "skewy": true,
}

// IsMathFunction reports whether name is a CSS math function such as calc.
func IsMathFunction(name string) bool { return mathFunctions[strings.ToLower(name)] }

// IsImageFunction reports whether name is a function producing an <image>.
func IsImageFunction(name string) bool { return imageFunctions[strings.ToLower(name)] }

// IsTransformFunction reports whether name is a <transform-function>.
func IsTransformFunction(name string) bool { return transformFunctions[strings.ToLower(name)] }

// FunctionValue is a function call whose arguments are kept as values. It
// covers math functions and any function without a dedicated type.
type FunctionValue struct {
	name string
	args Value
}

// NewFunction returns name(args). A nil args means an empty argument list.
func NewFunction(name string, args Value) (*FunctionValue, error) {
	if err := checkIdent(name); err != nil {
		return nil, err
	}
	return &FunctionValue{name: strings.ToLower(name), args: args}, nil
}

func (v *FunctionValue) Kind() Kind { return KindTyped }
func (v *FunctionValue) Type() Type { return TypeFunction }

// Name returns the lower-cased function name.
func (v *FunctionValue) Name() string { return v.name }

// Arguments returns the argument value: a single value, a list, or nil.
func (v *FunctionValue) Arguments() Value { return v.args }

// IsMathFunction reports whether the function is calc() or a sibling.
func (v *FunctionValue) IsMathFunction() bool { return mathFunctions[v.name] }

func (v *FunctionValue) CSSText() string      { return v.text(false) }
func (v *FunctionValue) MinifiedText() string { return v.text(true) }

func (v *FunctionValue) text(minify bool) string {
	var b strings.Builder
	b.WriteString(escape.Ident(v.name))
	b.WriteByte('(')
	if v.args != nil {
		b.WriteString(textOf(v.args, minify))
	}
	b.WriteByte(')')
	return b.String()
}

func (v *FunctionValue) SetCSSText(text string) error {
	nv, err := parseSame[*FunctionValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *FunctionValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*FunctionValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *FunctionValue) Equals(other Value) bool {
	o, ok := other.(*FunctionValue)
	return ok && o.name == v.name && Equal(o.args, v.args)
}

func (v *FunctionValue) Hash() uint64 {
	return newHasher(TypeFunction).str(v.name).value(v.args).sum()
}

func (v *FunctionValue) Clone() Value {
	return &FunctionValue{name: v.name, args: cloneOrNil(v.args)}
}

// AttrValue is attr(name [type] [, fallback]).
type AttrValue struct {
	name     string
	typ      *lexical.Unit
	fallback Value
}

// NewAttr returns attr(name).
func NewAttr(name string) (*AttrValue, error) {
	if err := checkIdent(name); err != nil {
		return nil, err
	}
	return &AttrValue{name: name}, nil
}

func (v *AttrValue) Kind() Kind { return KindTyped }
func (v *AttrValue) Type() Type { return TypeAttr }

// Name returns the attribute name.
func (v *AttrValue) Name() string { return v.name }

// AttrType returns the declared type or unit as text, or "".
func (v *AttrValue) AttrType() string { return lexical.Serialize(v.typ, false) }

// Fallback returns the fallback value, or nil.
func (v *AttrValue) Fallback() Value { return v.fallback }

// SetFallback replaces the fallback. Nil removes it.
func (v *AttrValue) SetFallback(fb Value) { v.fallback = fb }

func (v *AttrValue) CSSText() string      { return v.text(false) }
func (v *AttrValue) MinifiedText() string { return v.text(true) }

func (v *AttrValue) text(minify bool) string {
	var b strings.Builder
	b.WriteString("attr(")
	b.WriteString(escape.Ident(v.name))
	if v.typ != nil {
		b.WriteByte(' ')
		b.WriteString(lexical.Serialize(v.typ, minify))
	}
	if v.fallback != nil {
		b.WriteString(argSep(minify))
		b.WriteString(textOf(v.fallback, minify))
	}
	b.WriteByte(')')
	return b.String()
}

func (v *AttrValue) SetCSSText(text string) error {
	nv, err := parseSame[*AttrValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *AttrValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*AttrValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *AttrValue) Equals(other Value) bool {
	o, ok := other.(*AttrValue)
	return ok && o.name == v.name && o.AttrType() == v.AttrType() && Equal(o.fallback, v.fallback)
}

func (v *AttrValue) Hash() uint64 {
	return newHasher(TypeAttr).str(v.name).str(v.AttrType()).value(v.fallback).sum()
}

func (v *AttrValue) Clone() Value {
	return &AttrValue{name: v.name, typ: v.typ.Clone(), fallback: cloneOrNil(v.fallback)}
}

// ElementReferenceValue is element(#id).
type ElementReferenceValue struct {
	id string
}

// NewElementReference returns element(#id).
func NewElementReference(id string) (*ElementReferenceValue, error) {
	if err := checkIdent(id); err != nil {
		return nil, err
	}
	return &ElementReferenceValue{id: id}, nil
}

func (v *ElementReferenceValue) Kind() Kind { return KindTyped }
func (v *ElementReferenceValue) Type() Type { return TypeElementReference }

// ID returns the referenced element id, without '#'.
func (v *ElementReferenceValue) ID() string { return v.id }

func (v *ElementReferenceValue) CSSText() string      { return "element(#" + escape.Name(v.id) + ")" }
func (v *ElementReferenceValue) MinifiedText() string { return v.CSSText() }

func (v *ElementReferenceValue) SetCSSText(text string) error {
	nv, err := parseSame[*ElementReferenceValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *ElementReferenceValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*ElementReferenceValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *ElementReferenceValue) Equals(other Value) bool {
	o, ok := other.(*ElementReferenceValue)
	return ok && o.id == v.id
}

func (v *ElementReferenceValue) Hash() uint64 {
	return newHasher(TypeElementReference).str(v.id).sum()
}

func (v *ElementReferenceValue) Clone() Value {
	c := *v
	return &c
}
