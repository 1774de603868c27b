/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"bennypowers.dev/cssvalues/lexical"
)

type rangeForm int

const (
	formSingle rangeForm = iota
	formRange
	formWildcard
)

// UnicodeRangeValue is a unicode-range such as U+25-ff, U+4?? or U+26.
// Hex digits are stored lower-cased, without leading zeros.
type UnicodeRangeValue struct {
	form     rangeForm
	lo, hi   rune
	wildcard string
}

// NewUnicodeRange parses a unicode-range, with or without its "U+" prefix.
func NewUnicodeRange(text string) (*UnicodeRangeValue, error) {
	s := text
	if len(s) >= 2 && (s[0] == 'u' || s[0] == 'U') && s[1] == '+' {
		s = s[2:]
	}
	if lo, hi, ok := strings.Cut(s, "-"); ok {
		v := &UnicodeRangeValue{}
		if err := v.SetRange(lo, hi); err != nil {
			return nil, fmt.Errorf("%w: %q", err, text)
		}
		return v, nil
	}
	if strings.Contains(s, "?") {
		v := &UnicodeRangeValue{}
		if err := v.SetWildcard(s); err != nil {
			return nil, err
		}
		return v, nil
	}
	cp, err := parseCodePoint(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, text)
	}
	return &UnicodeRangeValue{form: formSingle, lo: cp, hi: cp}, nil
}

func parseCodePoint(s string) (rune, error) {
	if s == "" || len(s) > 6 {
		return 0, fmt.Errorf("%w: code point %q", ErrInvalidCharacter, s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil || n > utf8.MaxRune {
		return 0, fmt.Errorf("%w: code point %q", ErrInvalidCharacter, s)
	}
	return rune(n), nil
}

func (v *UnicodeRangeValue) Kind() Kind { return KindTyped }
func (v *UnicodeRangeValue) Type() Type { return TypeUnicodeRange }

// Bounds returns the first and last code point covered.
func (v *UnicodeRangeValue) Bounds() (lo, hi rune) { return v.lo, v.hi }

// IsWildcard reports whether the value is written with '?' digits.
func (v *UnicodeRangeValue) IsWildcard() bool { return v.form == formWildcard }

// IsRange reports whether the value is written as lo-hi.
func (v *UnicodeRangeValue) IsRange() bool { return v.form == formRange }

// SetRange replaces the value with the range lo-hi given as hex digits.
func (v *UnicodeRangeValue) SetRange(lo, hi string) error {
	l, err := parseCodePoint(lo)
	if err != nil {
		return err
	}
	h, err := parseCodePoint(hi)
	if err != nil {
		return err
	}
	if l > h {
		return fmt.Errorf("%w: range %s-%s is reversed", ErrInvalidCharacter, lo, hi)
	}
	*v = UnicodeRangeValue{form: formRange, lo: l, hi: h}
	return nil
}

// SetWildcard replaces the value with a wildcard pattern such as "4??". A
// range pattern is rejected with ErrInvalidModification.
func (v *UnicodeRangeValue) SetWildcard(pattern string) error {
	p := strings.ToLower(pattern)
	if len(p) >= 2 && p[0] == 'u' && p[1] == '+' {
		p = p[2:]
	}
	if strings.Contains(p, "-") {
		return fmt.Errorf("%w: %q is a range, not a wildcard", ErrInvalidModification, pattern)
	}
	q := strings.IndexByte(p, '?')
	if p == "" || len(p) > 6 || q < 0 || strings.Trim(p[q:], "?") != "" {
		return fmt.Errorf("%w: wildcard %q", ErrInvalidCharacter, pattern)
	}
	lo, err := parseCodePoint(strings.ReplaceAll(p, "?", "0"))
	if err != nil {
		return err
	}
	n, err := strconv.ParseUint(strings.ReplaceAll(p, "?", "f"), 16, 32)
	if err != nil {
		return fmt.Errorf("%w: wildcard %q", ErrInvalidCharacter, pattern)
	}
	hi := rune(min(n, utf8.MaxRune))
	*v = UnicodeRangeValue{form: formWildcard, lo: lo, hi: hi, wildcard: p}
	return nil
}

func (v *UnicodeRangeValue) CSSText() string {
	switch v.form {
	case formWildcard:
		return "U+" + v.wildcard
	case formRange:
		return "U+" + hexOf(v.lo) + "-" + hexOf(v.hi)
	}
	return "U+" + hexOf(v.lo)
}

func hexOf(r rune) string { return strconv.FormatInt(int64(r), 16) }

func (v *UnicodeRangeValue) MinifiedText() string { return v.CSSText() }

func (v *UnicodeRangeValue) SetCSSText(text string) error {
	nv, err := parseSame[*UnicodeRangeValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *UnicodeRangeValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*UnicodeRangeValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

// Equals compares the covered code points, so U+4?? equals U+400-4ff.
func (v *UnicodeRangeValue) Equals(other Value) bool {
	o, ok := other.(*UnicodeRangeValue)
	return ok && o.lo == v.lo && o.hi == v.hi
}

func (v *UnicodeRangeValue) Hash() uint64 {
	return newHasher(TypeUnicodeRange).int(int64(v.lo)).int(int64(v.hi)).sum()
}

func (v *UnicodeRangeValue) Clone() Value {
	c := *v
	return &c
}
