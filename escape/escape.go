/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package escape converts between decoded text and its CSS source form.
//
// Identifiers and strings are escaped following the CSSOM serialization
// algorithms. Numbers are formatted without trailing noise, with a separate
// minified form.
package escape

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Quote characters accepted by String.
const (
	DoubleQuote byte = '"'
	SingleQuote byte = '\''
)

func isHex(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// IsNameChar reports whether c may appear unescaped inside an identifier.
func IsNameChar(c rune) bool {
	return IsNameStart(c) || (c >= '0' && c <= '9') || c == '-'
}

// IsNameStart reports whether c may start an identifier unescaped.
func IsNameStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c >= 0x80
}

// writeHex writes c as a hex escape. A separating space is added when the
// following rune would otherwise be read as part of the escape, or when the
// escape ends the text.
func writeHex(b *strings.Builder, c rune, next rune, last bool) {
	b.WriteByte('\\')
	b.WriteString(strconv.FormatInt(int64(c), 16))
	if last || isHex(next) || isSpace(next) {
		b.WriteByte(' ')
	}
}

// Ident serializes s as a CSS identifier.
func Ident(s string) string {
	if s == "-" {
		return `\-`
	}
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i, c := range runes {
		var next rune
		last := i == len(runes)-1
		if !last {
			next = runes[i+1]
		}
		switch {
		case c == 0:
			b.WriteRune(utf8.RuneError)
		case (c >= 0x01 && c <= 0x1f) || c == 0x7f:
			writeHex(&b, c, next, last)
		case c >= '0' && c <= '9' && (i == 0 || (i == 1 && runes[0] == '-')):
			writeHex(&b, c, next, last)
		case IsNameChar(c):
			b.WriteRune(c)
		default:
			b.WriteByte('\\')
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Name serializes s as the name part of a hash token. Unlike Ident, a
// leading digit or hyphen needs no escaping.
func Name(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i, c := range runes {
		var next rune
		last := i == len(runes)-1
		if !last {
			next = runes[i+1]
		}
		switch {
		case c == 0:
			b.WriteRune(utf8.RuneError)
		case (c >= 0x01 && c <= 0x1f) || c == 0x7f:
			writeHex(&b, c, next, last)
		case IsNameChar(c):
			b.WriteRune(c)
		default:
			b.WriteByte('\\')
			b.WriteRune(c)
		}
	}
	return b.String()
}

// URL serializes s wrapped in url(). When quote is 0 and s needs no
// escaping it is written unquoted, otherwise it is quoted like a string.
func URL(s string, quote byte) string {
	if quote == 0 {
		if IsURLUnquoted(s) {
			return "url(" + s + ")"
		}
		quote = DoubleQuote
	}
	return "url(" + String(s, quote) + ")"
}

// IsURLUnquoted reports whether s can appear in url() without quotes.
func IsURLUnquoted(s string) bool {
	if strings.ContainsRune(s, '\\') {
		return false
	}
	return css.IsURLUnquoted([]byte(s))
}

// String serializes s as a CSS string delimited by quote. Only the delimiting
// quote and backslashes are escaped; the other quote is kept literally.
func String(s string, quote byte) string {
	if quote != SingleQuote {
		quote = DoubleQuote
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	runes := []rune(s)
	for i, c := range runes {
		var next rune
		last := i == len(runes)-1
		if !last {
			next = runes[i+1]
		}
		switch {
		case c == 0:
			b.WriteRune(utf8.RuneError)
		case (c >= 0x01 && c <= 0x1f) || c == 0x7f:
			// The closing quote follows the last rune, so no space is needed there.
			writeHex(&b, c, next, false)
		case c == rune(quote) || c == '\\':
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// PreferredQuote returns the quote that needs fewer escapes for s. On a tie
// the fallback quote is kept.
func PreferredQuote(s string, fallback byte) byte {
	doubles := strings.Count(s, `"`)
	singles := strings.Count(s, `'`)
	switch {
	case doubles < singles:
		return DoubleQuote
	case singles < doubles:
		return SingleQuote
	}
	if fallback == SingleQuote {
		return SingleQuote
	}
	return DoubleQuote
}

// Unescape decodes CSS escapes in s. An escaped newline is removed, as it is
// inside strings. Invalid code points decode to U+FFFD.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(s) {
			b.WriteRune(utf8.RuneError)
			break
		}
		switch c := s[i]; {
		case c == '\n' || c == '\f':
			i++
		case c == '\r':
			i++
			if i < len(s) && s[i] == '\n' {
				i++
			}
		case isHex(rune(c)):
			j := i
			for j < len(s) && j-i < 6 && isHex(rune(s[j])) {
				j++
			}
			cp, _ := strconv.ParseUint(s[i:j], 16, 32)
			r := rune(cp)
			if r == 0 || r > utf8.MaxRune || (r >= 0xd800 && r <= 0xdfff) {
				r = utf8.RuneError
			}
			b.WriteRune(r)
			i = j
			if i < len(s) {
				if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
					i += 2
				} else if isSpace(rune(s[i])) {
					i++
				}
			}
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
		}
	}
	return b.String()
}

// Number formats f in its shortest exact decimal form.
func Number(f float64) string {
	if f == 0 || math.IsNaN(f) {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MinifyNumber formats f in the shortest form CSS accepts, dropping leading
// zeros and switching to exponent notation where that is shorter.
func MinifyNumber(f float64) string {
	return string(minify.Number([]byte(Number(f)), 0))
}

// MinifyInteger formats an integer in plain decimal form. Exponent notation
// tokenizes as a non-integer number.
func MinifyInteger(f float64) string {
	return Number(math.Trunc(f))
}
