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

// DefaultCounterStyle is the counter style used when none is given.
const DefaultCounterStyle = "decimal"

func checkCounterName(name string) error {
	if err := checkIdent(name); err != nil {
		return err
	}
	if IsCSSWideKeyword(name) || strings.EqualFold(name, "none") {
		return fmt.Errorf("%w: %q cannot name a counter", ErrInvalidCharacter, name)
	}
	return nil
}

func checkCounterStyle(style Value) error {
	switch s := style.(type) {
	case nil:
		return nil
	case *IdentifierValue:
		if s.IsCSSWideKeyword() {
			return fmt.Errorf("%w: %q is not a counter style", ErrInvalidAccess, s.name)
		}
		return nil
	case *FunctionValue:
		if s.Name() == "symbols" {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not a counter style", ErrInvalidAccess, style.CSSText())
}

// isDefaultStyle reports whether style is absent or the decimal keyword.
func isDefaultStyle(style Value) bool {
	if style == nil {
		return true
	}
	id, ok := style.(*IdentifierValue)
	return ok && strings.EqualFold(id.name, DefaultCounterStyle)
}

func styleEqual(a, b Value) bool {
	if isDefaultStyle(a) || isDefaultStyle(b) {
		return isDefaultStyle(a) && isDefaultStyle(b)
	}
	return a.Equals(b)
}

func hashStyle(h *hasher, style Value) *hasher {
	if isDefaultStyle(style) {
		return h.str(DefaultCounterStyle)
	}
	return h.value(style)
}

func styleName(style Value) string {
	if style == nil {
		return DefaultCounterStyle
	}
	if id, ok := style.(*IdentifierValue); ok {
		return id.name
	}
	return style.CSSText()
}

// CounterValue is counter(name) or counter(name, style).
type CounterValue struct {
	name  string
	style Value
}

// NewCounter returns counter(name) with the default style.
func NewCounter(name string) (*CounterValue, error) {
	if err := checkCounterName(name); err != nil {
		return nil, err
	}
	return &CounterValue{name: name}, nil
}

func (v *CounterValue) Kind() Kind { return KindTyped }
func (v *CounterValue) Type() Type { return TypeCounter }

// Name returns the counter name.
func (v *CounterValue) Name() string { return v.name }

// SetName replaces the counter name.
func (v *CounterValue) SetName(name string) error {
	if err := checkCounterName(name); err != nil {
		return err
	}
	v.name = name
	return nil
}

// Style returns the counter style, or nil when none was given.
func (v *CounterValue) Style() Value { return v.style }

// SetStyle replaces the counter style. A nil style restores the default.
func (v *CounterValue) SetStyle(style Value) error {
	if err := checkCounterStyle(style); err != nil {
		return err
	}
	v.style = style
	return nil
}

// ListStyle returns the effective style name, "decimal" when none was given.
func (v *CounterValue) ListStyle() string { return styleName(v.style) }

func (v *CounterValue) CSSText() string      { return v.text(false) }
func (v *CounterValue) MinifiedText() string { return v.text(true) }

func (v *CounterValue) text(minify bool) string {
	var b strings.Builder
	b.WriteString("counter(")
	b.WriteString(escape.Ident(v.name))
	writeStyle(&b, v.style, minify)
	b.WriteByte(')')
	return b.String()
}

func writeStyle(b *strings.Builder, style Value, minify bool) {
	if isDefaultStyle(style) {
		return
	}
	b.WriteString(argSep(minify))
	b.WriteString(textOf(style, minify))
}

func argSep(minify bool) string {
	if minify {
		return ","
	}
	return ", "
}

func textOf(v Value, minify bool) string {
	if minify {
		return v.MinifiedText()
	}
	return v.CSSText()
}

func (v *CounterValue) SetCSSText(text string) error {
	nv, err := parseSame[*CounterValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *CounterValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*CounterValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *CounterValue) Equals(other Value) bool {
	o, ok := other.(*CounterValue)
	return ok && o.name == v.name && styleEqual(o.style, v.style)
}

func (v *CounterValue) Hash() uint64 {
	return hashStyle(newHasher(TypeCounter).str(v.name), v.style).sum()
}

func (v *CounterValue) Clone() Value {
	return &CounterValue{name: v.name, style: cloneOrNil(v.style)}
}

// CountersValue is counters(name, separator) with an optional style.
type CountersValue struct {
	name      string
	separator *StringValue
	style     Value
}

// NewCounters returns counters(name, separator) with the default style.
func NewCounters(name, separator string) (*CountersValue, error) {
	if err := checkCounterName(name); err != nil {
		return nil, err
	}
	sep, err := NewString(separator)
	if err != nil {
		return nil, err
	}
	return &CountersValue{name: name, separator: sep}, nil
}

func (v *CountersValue) Kind() Kind { return KindTyped }
func (v *CountersValue) Type() Type { return TypeCounters }

// Name returns the counter name.
func (v *CountersValue) Name() string { return v.name }

// SetName replaces the counter name.
func (v *CountersValue) SetName(name string) error {
	if err := checkCounterName(name); err != nil {
		return err
	}
	v.name = name
	return nil
}

// Separator returns the decoded separator string.
func (v *CountersValue) Separator() string { return v.separator.text }

// SetSeparator replaces the separator string.
func (v *CountersValue) SetSeparator(sep string) error {
	nv, err := NewQuotedString(sep, v.separator.quote)
	if err != nil {
		return err
	}
	v.separator = nv
	return nil
}

// Style returns the counter style, or nil when none was given.
func (v *CountersValue) Style() Value { return v.style }

// SetStyle replaces the counter style. A nil style restores the default.
func (v *CountersValue) SetStyle(style Value) error {
	if err := checkCounterStyle(style); err != nil {
		return err
	}
	v.style = style
	return nil
}

// ListStyle returns the effective style name, "decimal" when none was given.
func (v *CountersValue) ListStyle() string { return styleName(v.style) }

func (v *CountersValue) CSSText() string      { return v.text(false) }
func (v *CountersValue) MinifiedText() string { return v.text(true) }

func (v *CountersValue) text(minify bool) string {
	var b strings.Builder
	b.WriteString("counters(")
	b.WriteString(escape.Ident(v.name))
	b.WriteString(argSep(minify))
	b.WriteString(textOf(v.separator, minify))
	writeStyle(&b, v.style, minify)
	b.WriteByte(')')
	return b.String()
}

func (v *CountersValue) SetCSSText(text string) error {
	nv, err := parseSame[*CountersValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *CountersValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*CountersValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *CountersValue) Equals(other Value) bool {
	o, ok := other.(*CountersValue)
	return ok && o.name == v.name && o.separator.text == v.separator.text && styleEqual(o.style, v.style)
}

func (v *CountersValue) Hash() uint64 {
	h := newHasher(TypeCounters).str(v.name).str(v.separator.text)
	return hashStyle(h, v.style).sum()
}

func (v *CountersValue) Clone() Value {
	return &CountersValue{
		name:      v.name,
		separator: v.separator.Clone().(*StringValue),
		style:     cloneOrNil(v.style),
	}
}
