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

// Separator is the delimiter between the items of a list.
type Separator int

const (
	// SpaceSeparated lists are written "a b c".
	SpaceSeparated Separator = iota
	// CommaSeparated lists are written "a, b, c".
	CommaSeparated
)

func (s Separator) String() string {
	if s == CommaSeparated {
		return "comma"
	}
	return "space"
}

// ValueList is an ordered sequence of values sharing one separator.
type ValueList struct {
	sep   Separator
	items []Value
}

// NewCommaList returns a comma-separated list.
func NewCommaList(items ...Value) *ValueList {
	return &ValueList{sep: CommaSeparated, items: items}
}

// NewSpaceList returns a space-separated list.
func NewSpaceList(items ...Value) *ValueList {
	return &ValueList{sep: SpaceSeparated, items: items}
}

func (v *ValueList) Kind() Kind { return KindList }
func (v *ValueList) Type() Type { return TypeList }

// Separator returns the list separator.
func (v *ValueList) Separator() Separator { return v.sep }

// IsCommaSeparated reports whether the list is comma-separated.
func (v *ValueList) IsCommaSeparated() bool { return v.sep == CommaSeparated }

// Len returns the number of items.
func (v *ValueList) Len() int { return len(v.items) }

// Item returns the item at index, or nil when index is out of range.
func (v *ValueList) Item(index int) Value {
	if index < 0 || index >= len(v.items) {
		return nil
	}
	return v.items[index]
}

// Items returns a copy of the item slice. The items themselves are shared.
func (v *ValueList) Items() []Value {
	return append([]Value(nil), v.items...)
}

// Append adds an item to the end of the list.
func (v *ValueList) Append(item Value) error {
	if item == nil {
		return fmt.Errorf("%w: nil list item", ErrInvalidAccess)
	}
	v.items = append(v.items, item)
	return nil
}

// Set replaces the item at index.
func (v *ValueList) Set(index int, item Value) error {
	if index < 0 || index >= len(v.items) {
		return fmt.Errorf("%w: list index %d out of range [0,%d)", ErrInvalidAccess, index, len(v.items))
	}
	if item == nil {
		return fmt.Errorf("%w: nil list item", ErrInvalidAccess)
	}
	v.items[index] = item
	return nil
}

// Remove deletes the item at index.
func (v *ValueList) Remove(index int) error {
	if index < 0 || index >= len(v.items) {
		return fmt.Errorf("%w: list index %d out of range [0,%d)", ErrInvalidAccess, index, len(v.items))
	}
	v.items = append(v.items[:index], v.items[index+1:]...)
	return nil
}

func isSlash(v Value) bool {
	op, ok := v.(*OperatorValue)
	return ok && op.op == "/"
}

func (v *ValueList) CSSText() string      { return v.text(false) }
func (v *ValueList) MinifiedText() string { return v.text(true) }

func (v *ValueList) text(minify bool) string {
	var b strings.Builder
	for i, item := range v.items {
		if i > 0 {
			switch {
			case v.sep == CommaSeparated:
				b.WriteString(argSep(minify))
			case minify && (isSlash(item) || isSlash(v.items[i-1])):
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteString(textOf(item, minify))
	}
	return b.String()
}

func (v *ValueList) SetCSSText(text string) error {
	nv, err := parseSame[*ValueList](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

// SetLexicalUnit consumes the whole chain.
func (v *ValueList) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, err := DefaultFactory().CreateValue("", lu)
	if err != nil {
		return lu, err
	}
	l, err := sameType[*ValueList](nv, lexical.Serialize(lu, false))
	if err != nil {
		return lu, err
	}
	*v = *l
	return nil, nil
}

func (v *ValueList) Equals(other Value) bool {
	o, ok := other.(*ValueList)
	if !ok || o.sep != v.sep || len(o.items) != len(v.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Equals(o.items[i]) {
			return false
		}
	}
	return true
}

func (v *ValueList) Hash() uint64 {
	h := newHasher(TypeList).int(int64(v.sep)).int(int64(len(v.items)))
	for _, item := range v.items {
		h.value(item)
	}
	return h.sum()
}

func (v *ValueList) Clone() Value {
	items := make([]Value, len(v.items))
	for i, item := range v.items {
		items[i] = item.Clone()
	}
	return &ValueList{sep: v.sep, items: items}
}
