/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"math"
	"strings"

	"bennypowers.dev/cssvalues/escape"
	"bennypowers.dev/cssvalues/lexical"
)

// NumericValue is a number, percentage or dimension.
type NumericValue struct {
	number  float64
	unit    string
	integer bool
}

// NewNumber returns a unitless number.
func NewNumber(f float64) *NumericValue {
	return &NumericValue{number: f, integer: f == math.Trunc(f) && !math.IsInf(f, 0)}
}

// NewPercentage returns a percentage.
func NewPercentage(f float64) *NumericValue {
	return &NumericValue{number: f, unit: "%"}
}

// NewDimension returns a number with a unit. The unit keeps its case.
func NewDimension(f float64, unit string) (*NumericValue, error) {
	if err := checkUnit(unit); err != nil {
		return nil, err
	}
	return &NumericValue{number: f, unit: unit}, nil
}

func checkUnit(unit string) error {
	if unit == "" || unit == "%" {
		return nil
	}
	for i, r := range unit {
		if !(escape.IsNameStart(r) || i > 0 && escape.IsNameChar(r)) {
			return fmt.Errorf("%w: unit %q", ErrInvalidCharacter, unit)
		}
	}
	if c := unit[0]; c == 'e' || c == 'E' {
		// 1e3 would read back as a number.
		if len(unit) > 1 && (unit[1] >= '0' && unit[1] <= '9' || unit[1] == '-') {
			return fmt.Errorf("%w: unit %q", ErrInvalidCharacter, unit)
		}
	}
	return nil
}

func numericFromUnit(lu *lexical.Unit) *NumericValue {
	return &NumericValue{number: lu.Number, unit: lu.Dimension, integer: lu.Integer && lu.Type == lexical.TypeNumber}
}

func (v *NumericValue) Kind() Kind { return KindTyped }
func (v *NumericValue) Type() Type { return TypeNumeric }

// Number returns the numeric part.
func (v *NumericValue) Number() float64 { return v.number }

// Unit returns the unit as written, "%" for percentages, or "".
func (v *NumericValue) Unit() string { return v.unit }

// IsInteger reports whether the value is a unitless number written without
// a fractional part or exponent.
func (v *NumericValue) IsInteger() bool { return v.integer && v.unit == "" }

// IsPercentage reports whether the value is a percentage.
func (v *NumericValue) IsPercentage() bool { return v.unit == "%" }

// SetNumber replaces the numeric part.
func (v *NumericValue) SetNumber(f float64) {
	v.number = f
	v.integer = v.unit == "" && f == math.Trunc(f)
}

// SetUnit replaces the unit.
func (v *NumericValue) SetUnit(unit string) error {
	if err := checkUnit(unit); err != nil {
		return err
	}
	v.unit = unit
	if unit != "" {
		v.integer = false
	}
	return nil
}

func (v *NumericValue) CSSText() string { return escape.Number(v.number) + v.unit }
func (v *NumericValue) MinifiedText() string {
	return lexical.FormatNumber(v.number, v.IsInteger(), true) + v.unit
}

func (v *NumericValue) SetCSSText(text string) error {
	nv, err := parseSame[*NumericValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *NumericValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*NumericValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *NumericValue) Equals(other Value) bool {
	o, ok := other.(*NumericValue)
	return ok && o.number == v.number && strings.EqualFold(o.unit, v.unit)
}

func (v *NumericValue) Hash() uint64 {
	return newHasher(TypeNumeric).float(v.number).str(strings.ToLower(v.unit)).sum()
}

func (v *NumericValue) Clone() Value {
	c := *v
	return &c
}
