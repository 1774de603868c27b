/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/cssvalues/lexical"
)

var colorFunctions = map[string]bool{
	"rgb": true, "rgba": true, "hsl": true, "hsla": true, "hwb": true,
	"lab": true, "lch": true, "oklab": true, "oklch": true, "color": true,
	"color-mix": true, "light-dark": true,
}

// legacyColorFunctions must resolve to be treated as colors; other color
// functions are accepted even when their arguments cannot be evaluated.
var legacyColorFunctions = map[string]bool{
	"rgb": true, "rgba": true, "hsl": true, "hsla": true, "hwb": true,
}

// IsColorFunction reports whether name is a CSS color function.
func IsColorFunction(name string) bool {
	return colorFunctions[strings.ToLower(name)]
}

// ColorValue is a hex color or a color function.
//
// When the color can be evaluated, equality compares the sRGB components at
// 8-bit precision, so #f0c, #ff00cc and rgb(255 0 204) are equal. Colors
// that cannot be evaluated compare by their canonical text.
type ColorValue struct {
	source   *lexical.Unit
	rgba     [4]uint8
	resolved bool
}

// NewColor parses a hex color or a color function.
func NewColor(text string) (*ColorValue, error) {
	lu, err := lexical.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if lu == nil || lu.Next != nil {
		return nil, fmt.Errorf("%w: %q is not a single color", ErrSyntax, text)
	}
	c, ok := colorFromUnit(lu)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a color", ErrSyntax, text)
	}
	return c, nil
}

// colorFromUnit returns a color for a hash or color function unit.
func colorFromUnit(lu *lexical.Unit) (*ColorValue, bool) {
	switch lu.Type {
	case lexical.TypeHash:
		c, err := csscolorparser.Parse("#" + lu.Text)
		if err != nil || !isHexColor(lu.Text) {
			return nil, false
		}
		return newResolvedColor(lu, c), true
	case lexical.TypeFunction:
		name := lu.Name()
		if !colorFunctions[name] {
			return nil, false
		}
		c, err := csscolorparser.Parse(lexical.Text(lu, false))
		if err == nil {
			return newResolvedColor(lu, c), true
		}
		if legacyColorFunctions[name] {
			return nil, false
		}
		return &ColorValue{source: lu.Detach()}, true
	}
	return nil, false
}

func isHexColor(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func newResolvedColor(lu *lexical.Unit, c csscolorparser.Color) *ColorValue {
	r, g, b, a := c.RGBA255()
	return &ColorValue{source: lu.Detach(), rgba: [4]uint8{r, g, b, a}, resolved: true}
}

func (v *ColorValue) Kind() Kind { return KindTyped }
func (v *ColorValue) Type() Type { return TypeColor }

// RGBA returns the 8-bit sRGB components. ok is false when the color could
// not be evaluated.
func (v *ColorValue) RGBA() (r, g, b, a uint8, ok bool) {
	return v.rgba[0], v.rgba[1], v.rgba[2], v.rgba[3], v.resolved
}

// Notation returns "hex" or the lower-cased function name.
func (v *ColorValue) Notation() string {
	if v.source.Type == lexical.TypeHash {
		return "hex"
	}
	return v.source.Name()
}

func (v *ColorValue) CSSText() string { return lexical.Text(v.source, false) }

// MinifiedText returns the shortest hex form of an evaluated color and the
// minified source otherwise.
func (v *ColorValue) MinifiedText() string {
	src := lexical.Text(v.source, true)
	if !v.resolved {
		return src
	}
	var hex string
	if v.rgba[3] == 255 {
		hex = colorful.Color{
			R: float64(v.rgba[0]) / 255,
			G: float64(v.rgba[1]) / 255,
			B: float64(v.rgba[2]) / 255,
		}.Hex()
	} else {
		hex = fmt.Sprintf("#%02x%02x%02x%02x", v.rgba[0], v.rgba[1], v.rgba[2], v.rgba[3])
	}
	hex = shortHex(hex)
	if len(hex) < len(src) {
		return hex
	}
	return src
}

// shortHex collapses #rrggbb and #rrggbbaa to #rgb and #rgba when every
// pair repeats its digit.
func shortHex(hex string) string {
	digits := hex[1:]
	for i := 0; i < len(digits); i += 2 {
		if digits[i] != digits[i+1] {
			return hex
		}
	}
	short := make([]byte, 0, 1+len(digits)/2)
	short = append(short, '#')
	for i := 0; i < len(digits); i += 2 {
		short = append(short, digits[i])
	}
	return string(short)
}

func (v *ColorValue) SetCSSText(text string) error {
	nv, err := parseSame[*ColorValue](text)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}

func (v *ColorValue) SetLexicalUnit(lu *lexical.Unit) (*lexical.Unit, error) {
	nv, next, err := createSame[*ColorValue](lu)
	if err != nil {
		return lu, err
	}
	*v = *nv
	return next, nil
}

func (v *ColorValue) Equals(other Value) bool {
	o, ok := other.(*ColorValue)
	if !ok || o.resolved != v.resolved {
		return false
	}
	if v.resolved {
		return o.rgba == v.rgba
	}
	return strings.EqualFold(o.CSSText(), v.CSSText())
}

func (v *ColorValue) Hash() uint64 {
	h := newHasher(TypeColor)
	if v.resolved {
		return h.str(string(v.rgba[:])).sum()
	}
	return h.str(strings.ToLower(v.CSSText())).sum()
}

func (v *ColorValue) Clone() Value {
	c := *v
	c.source = v.source.Detach()
	return &c
}
