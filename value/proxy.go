/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"strings"

	"bennypowers.dev/cssvalues/escape"
	"bennypowers.dev/cssvalues/lexical"
)

// VarValue is a custom property reference, var(--name) with an optional
// fallback. Names are case-sensitive.
type VarValue struct {
	name     string
	fallback Value
}

// NewVar returns var(name) or var(name, fallback). A nil fallback means
// none was given.
func NewVar(name string, fallback Value) (*VarValue, error) {
	if err := checkCustomPropertyName(name); err != nil {
		return nil, err
	}
	return &VarValue{name: name, fallback: fallback}, nil
}

func checkCustomPropertyName(name string) error {
	if !strings.HasPrefix(name, "--") || len(name) < 3 {
		return fmt.Errorf("%w: %q is not a custom property name", ErrInvalidCharacter, name)
	}
	return checkIdent(name)
}

func (v *VarValue) Kind() Kind { return KindProxy }
func (v *VarValue) Type() Type { return TypeCustomProperty }

// Name returns the referenced custom property name, including "--".
func (v *VarValue) Name() string { return v.name }

// Fallback returns the fallback value, or nil.
func (v *VarValue) Fallback() Value { return v.fallback }

// SetFallback replaces the fallback. Nil removes it.
func (v *VarValue) SetFallback(fb Value) { v.fallback = fb }

func (v *VarValue) CSSText() string      { return proxyText("var", v.name, v.fallback, false) }
func (v *VarValue) MinifiedText() string { return proxyText("var", v.name, v.fallback, true) }

func proxyText(fn, name string, fallback Value, minify bool) string {
	var b strings.Builder
	b.WriteString(fn)
	b.WriteByte('(')
	b.WriteString(escape.Ident(name))
	if fallback != nil {
		b.WriteString(argSep(minify))
		b.WriteString(textOf(fallback, minify))
	}
	b.WriteByte(')')
	return b.String()
}

func (v *VarValue) SetCSSText(text string) error {
	nv, err := parseSame[*VarValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *VarValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*VarValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *VarValue) Equals(other Value) bool {
	o, ok := other.(*VarValue)
	return ok && o.name == v.name && Equal(o.fallback, v.fallback)
}

func (v *VarValue) Hash() uint64 {
	return newHasher(TypeCustomProperty).str(v.name).value(v.fallback).sum()
}

func (v *VarValue) Clone() Value {
	return &VarValue{name: v.name, fallback: cloneOrNil(v.fallback)}
}

// EnvValue is an environment variable reference, env(name) with an optional
// fallback.
type EnvValue struct {
	name     string
	fallback Value
}

// NewEnv returns env(name) or env(name, fallback).
func NewEnv(name string, fallback Value) (*EnvValue, error) {
	if err := checkIdent(name); err != nil {
		return nil, err
	}
	return &EnvValue{name: name, fallback: fallback}, nil
}

func (v *EnvValue) Kind() Kind { return KindProxy }
func (v *EnvValue) Type() Type { return TypeEnv }

// Name returns the environment variable name.
func (v *EnvValue) Name() string { return v.name }

// Fallback returns the fallback value, or nil.
func (v *EnvValue) Fallback() Value { return v.fallback }

// SetFallback replaces the fallback. Nil removes it.
func (v *EnvValue) SetFallback(fb Value) { v.fallback = fb }

func (v *EnvValue) CSSText() string      { return proxyText("env", v.name, v.fallback, false) }
func (v *EnvValue) MinifiedText() string { return proxyText("env", v.name, v.fallback, true) }

func (v *EnvValue) SetCSSText(text string) error {
	nv, err := parseSame[*EnvValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *EnvValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*EnvValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *EnvValue) Equals(other Value) bool {
	o, ok := other.(*EnvValue)
	return ok && o.name == v.name && Equal(o.fallback, v.fallback)
}

func (v *EnvValue) Hash() uint64 {
	return newHasher(TypeEnv).str(v.name).value(v.fallback).sum()
}

func (v *EnvValue) Clone() Value {
	return &EnvValue{name: v.name, fallback: cloneOrNil(v.fallback)}
}
