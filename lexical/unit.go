/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lexical turns CSS value text into a chain of lexical units.
//
// A chain is a doubly linked list of *Unit. Function calls and parenthesized
// blocks carry their arguments as a nested chain in Params. Consumers walk a
// chain with Next and hand the first unconsumed unit back to their caller,
// which lets a list be assembled one value at a time.
package lexical

import "strings"

// Type identifies the kind of a lexical unit.
type Type int

const (
	TypeIdent Type = iota
	TypeString
	TypeURI
	TypeNumber
	TypePercentage
	TypeDimension
	TypeHash
	TypeUnicodeRange
	TypeFunction
	TypeBlock
	TypeComma
	TypeSlash
	TypeDelim
)

var typeNames = [...]string{
	TypeIdent:        "ident",
	TypeString:       "string",
	TypeURI:          "uri",
	TypeNumber:       "number",
	TypePercentage:   "percentage",
	TypeDimension:    "dimension",
	TypeHash:         "hash",
	TypeUnicodeRange: "unicode-range",
	TypeFunction:     "function",
	TypeBlock:        "block",
	TypeComma:        "comma",
	TypeSlash:        "slash",
	TypeDelim:        "delim",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Unit is one token of a value, or a function call or block with its
// arguments.
type Unit struct {
	Type Type

	// Text is the decoded content: the identifier, string or URL without
	// escapes, the function name without its parenthesis, the hash name
	// without '#', the delimiter character, or the opening bracket of a block.
	Text string

	// Number and Dimension hold numeric content. Dimension is "%" for
	// percentages and the unit as written for dimensions.
	Number    float64
	Dimension string
	Integer   bool

	// Quote is the delimiter used by a string or url() in the source, or 0.
	Quote byte

	// Params is the first argument of a function or block.
	Params *Unit

	// SpaceBefore records whitespace between this unit and the previous one.
	SpaceBefore bool

	Next *Unit
	Prev *Unit
}

// Name returns the lower-cased function name, or "" for other units.
func (u *Unit) Name() string {
	if u == nil || u.Type != TypeFunction {
		return ""
	}
	return strings.ToLower(u.Text)
}

// IsIdent reports whether u is an identifier equal to name, ignoring ASCII case.
func (u *Unit) IsIdent(name string) bool {
	return u != nil && u.Type == TypeIdent && strings.EqualFold(u.Text, name)
}

// IsNumeric reports whether u is a number, percentage or dimension.
func (u *Unit) IsNumeric() bool {
	if u == nil {
		return false
	}
	switch u.Type {
	case TypeNumber, TypePercentage, TypeDimension:
		return true
	}
	return false
}

// IsSeparator reports whether u is a comma or a slash.
func (u *Unit) IsSeparator() bool {
	return u != nil && (u.Type == TypeComma || u.Type == TypeSlash)
}

// Len returns the number of units in the chain starting at u.
func (u *Unit) Len() int {
	n := 0
	for ; u != nil; u = u.Next {
		n++
	}
	return n
}

// Last returns the final unit of the chain starting at u.
func (u *Unit) Last() *Unit {
	if u == nil {
		return nil
	}
	for u.Next != nil {
		u = u.Next
	}
	return u
}

// Clone deep-copies the chain starting at u. The copy's first unit has no
// Prev link.
func (u *Unit) Clone() *Unit {
	var head, tail *Unit
	for ; u != nil; u = u.Next {
		c := *u
		c.Params = u.Params.Clone()
		c.Prev, c.Next = tail, nil
		if tail == nil {
			head = &c
		} else {
			tail.Next = &c
		}
		tail = &c
	}
	return head
}

// Detach returns a deep copy of u alone, without its neighbours.
func (u *Unit) Detach() *Unit {
	if u == nil {
		return nil
	}
	c := *u
	c.Params = u.Params.Clone()
	c.Prev, c.Next = nil, nil
	return &c
}

// Slice deep-copies the units from u up to, but not including, end.
func (u *Unit) Slice(end *Unit) *Unit {
	var head, tail *Unit
	for ; u != nil && u != end; u = u.Next {
		c := u.Detach()
		if tail == nil {
			head = c
		} else {
			tail.Next = c
			c.Prev = tail
		}
		tail = c
	}
	return head
}

// Contains reports whether pred holds for any unit in the chain starting at
// u, including units nested in function arguments and blocks.
func (u *Unit) Contains(pred func(*Unit) bool) bool {
	for ; u != nil; u = u.Next {
		if pred(u) || u.Params.Contains(pred) {
			return true
		}
	}
	return false
}

func (u *Unit) String() string {
	return Serialize(u, false)
}
