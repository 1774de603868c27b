/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package syntax parses CSS syntax descriptors such as "<length>#" or
// "<color> | none" into a matchable structure.
package syntax

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/cssvalues/escape"
)

// ErrInvalidSyntax is returned for descriptors that cannot be parsed.
var ErrInvalidSyntax = errors.New("invalid syntax descriptor")

// Multiplier says how many times a component may repeat.
type Multiplier int

const (
	// Once accepts a single value.
	Once Multiplier = iota
	// SpaceList accepts one or more space-separated values ('+').
	SpaceList
	// CommaList accepts one or more comma-separated values ('#').
	CommaList
)

func (m Multiplier) String() string {
	switch m {
	case SpaceList:
		return "+"
	case CommaList:
		return "#"
	default:
		return ""
	}
}

// Component is one alternative of a descriptor.
type Component struct {
	// Name is the data type name or the keyword text.
	Name       string
	Category   Category
	Multiplier Multiplier
}

func (c Component) String() string {
	if c.Category == Keyword {
		return escape.Ident(c.Name) + c.Multiplier.String()
	}
	if c.Category == TransformList {
		return "<transform-list>"
	}
	return "<" + c.Name + ">" + c.Multiplier.String()
}

// Definition is a parsed descriptor: either the universal "*" or an ordered
// list of alternatives.
type Definition struct {
	Universal    bool
	Alternatives []Component
}

func (d *Definition) String() string {
	if d.Universal {
		return "*"
	}
	parts := make([]string, len(d.Alternatives))
	for i, c := range d.Alternatives {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ")
}

// Parse parses a descriptor.
func Parse(descriptor string) (*Definition, error) {
	s := strings.TrimSpace(descriptor)
	if s == "" {
		return nil, fmt.Errorf("%w: empty descriptor", ErrInvalidSyntax)
	}
	if s == "*" {
		return &Definition{Universal: true}, nil
	}
	var def Definition
	for _, part := range strings.Split(s, "|") {
		c, err := parseComponent(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSyntax, descriptor, err)
		}
		def.Alternatives = append(def.Alternatives, c)
	}
	return &def, nil
}

// MustParse is like Parse but panics on error.
func MustParse(descriptor string) *Definition {
	d, err := Parse(descriptor)
	if err != nil {
		panic(err)
	}
	return d
}

func parseComponent(s string) (Component, error) {
	if s == "" {
		return Component{}, errors.New("empty alternative")
	}
	var c Component
	switch s[len(s)-1] {
	case '+':
		c.Multiplier = SpaceList
		s = s[:len(s)-1]
	case '#':
		c.Multiplier = CommaList
		s = s[:len(s)-1]
	}

	if strings.HasPrefix(s, "<") {
		if !strings.HasSuffix(s, ">") {
			return Component{}, fmt.Errorf("unterminated data type %q", s)
		}
		c.Name = s[1 : len(s)-1]
		cat, ok := CategoryFromName(c.Name)
		if !ok {
			return Component{}, fmt.Errorf("unsupported data type <%s>", c.Name)
		}
		c.Category = cat
		if cat == TransformList {
			if c.Multiplier != Once {
				return Component{}, errors.New("<transform-list> cannot take a multiplier")
			}
			c.Multiplier = SpaceList
		}
		return c, nil
	}

	if s == "*" {
		return Component{}, errors.New("'*' cannot be combined")
	}
	for i, r := range s {
		if !(escape.IsNameStart(r) || r == '-' && i == 0 || i > 0 && escape.IsNameChar(r)) {
			return Component{}, fmt.Errorf("invalid keyword %q", s)
		}
	}
	c.Name = s
	c.Category = Keyword
	return c, nil
}
