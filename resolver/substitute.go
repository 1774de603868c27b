/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/cssvalues/lexical"
	"bennypowers.dev/cssvalues/value"
)

// Resolver substitutes var() references against a fixed set of custom
// property definitions. Expanded definitions are cached, so a Resolver
// must not be shared between goroutines.
type Resolver struct {
	defs    map[string]value.Value
	factory *value.Factory
	cache   map[string]string
	stack   []string
}

// New returns a resolver over defs. A nil factory means
// value.DefaultFactory.
func New(defs map[string]value.Value, f *value.Factory) *Resolver {
	if f == nil {
		f = value.DefaultFactory()
	}
	return &Resolver{defs: defs, factory: f, cache: make(map[string]string)}
}

// Substitute replaces every var() in v using defs and re-parses the
// result. It is shorthand for New(defs, f).Substitute("", v).
func Substitute(v value.Value, defs map[string]value.Value, f *value.Factory) (value.Value, error) {
	return New(defs, f).Substitute("", v)
}

// Substitute returns v with each var() replaced by the tokens of its
// definition, or of its fallback when the name is undefined. The result is
// rebuilt for property. env() references are left in place. Values without
// references are returned as clones.
func (r *Resolver) Substitute(property string, v value.Value) (value.Value, error) {
	if len(References(v)) == 0 {
		return v.Clone(), nil
	}
	text, err := r.expand(v)
	if err != nil {
		return nil, err
	}
	return r.factory.ParsePropertyFor(property, text)
}

// ResolveAll substitutes every definition, dependencies first.
func (r *Resolver) ResolveAll() (map[string]value.Value, error) {
	order, err := BuildDependencyGraph(r.defs).TopologicalSort()
	if err != nil {
		return nil, err
	}
	out := make(map[string]value.Value, len(order))
	for _, name := range order {
		v, err := r.Substitute(name, r.defs[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

func (r *Resolver) expand(v value.Value) (string, error) {
	chain, err := lexical.Parse(v.CSSText())
	if err != nil {
		return "", err
	}
	out, err := r.chain(chain)
	if err != nil {
		return "", err
	}
	return lexical.Serialize(out, false), nil
}

// chain returns a copy of u with var() units replaced.
func (r *Resolver) chain(u *lexical.Unit) (*lexical.Unit, error) {
	var head, tail *lexical.Unit
	push := func(c *lexical.Unit) {
		for c != nil {
			next := c.Next
			c.Prev, c.Next = tail, nil
			if tail == nil {
				head = c
			} else {
				tail.Next = c
			}
			tail = c
			c = next
		}
	}

	for ; u != nil; u = u.Next {
		if u.Name() != "var" {
			c := u.Detach()
			if u.Params != nil {
				params, err := r.chain(u.Params)
				if err != nil {
					return nil, err
				}
				c.Params = params
			}
			push(c)
			continue
		}
		text, err := r.reference(u)
		if err != nil {
			return nil, err
		}
		repl, err := lexical.Parse(text)
		if err != nil {
			return nil, err
		}
		if repl == nil {
			continue
		}
		repl.SpaceBefore = u.SpaceBefore
		push(repl)
	}
	return head, nil
}

// reference expands a single var() unit.
func (r *Resolver) reference(u *lexical.Unit) (string, error) {
	if u.Params == nil || u.Params.Type != lexical.TypeIdent {
		return "", fmt.Errorf("%w: %s", value.ErrSyntax, lexical.Text(u, false))
	}
	name := u.Params.Text
	var fallback *lexical.Unit
	if comma := u.Params.Next; comma != nil && comma.Type == lexical.TypeComma {
		fallback = comma.Next
	}

	if i := slices.Index(r.stack, name); i >= 0 {
		cycle := append(slices.Clone(r.stack[i:]), name)
		return "", fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(cycle, " -> "))
	}
	if text, ok := r.cache[name]; ok {
		return text, nil
	}
	if def, ok := r.defs[name]; ok {
		r.stack = append(r.stack, name)
		text, err := r.expand(def)
		r.stack = r.stack[:len(r.stack)-1]
		if err != nil {
			return "", err
		}
		r.cache[name] = text
		return text, nil
	}
	if fallback != nil {
		out, err := r.chain(fallback)
		if err != nil {
			return "", err
		}
		return lexical.Serialize(out, false), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnresolvedReference, name)
}
