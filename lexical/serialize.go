/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lexical

import (
	"strings"

	"bennypowers.dev/cssvalues/escape"
)

// Serialize writes the chain starting at u back to CSS text. Canonical
// output puts a space after each comma and keeps whitespace where the
// source had it. Minified output drops whitespace around commas and
// slashes and picks the cheaper quote for strings.
func Serialize(u *Unit, minify bool) string {
	var b strings.Builder
	write(&b, u, minify)
	return b.String()
}

func write(b *strings.Builder, u *Unit, minify bool) {
	for first := u; u != nil; u = u.Next {
		if u != first {
			b.WriteString(separator(u.Prev, u, minify))
		}
		writeUnit(b, u, minify)
	}
}

func separator(prev, u *Unit, minify bool) string {
	switch {
	case u.Type == TypeComma:
		return ""
	case prev.Type == TypeComma:
		if minify {
			return ""
		}
		return " "
	case minify && (u.Type == TypeSlash || prev.Type == TypeSlash):
		return ""
	case u.SpaceBefore:
		return " "
	}
	return ""
}

// Text serializes u alone, ignoring its neighbours.
func Text(u *Unit, minify bool) string {
	var b strings.Builder
	writeUnit(&b, u, minify)
	return b.String()
}

func writeUnit(b *strings.Builder, u *Unit, minify bool) {
	switch u.Type {
	case TypeIdent:
		b.WriteString(escape.Ident(u.Text))
	case TypeString:
		q := quoteOf(u.Quote)
		if minify {
			q = escape.PreferredQuote(u.Text, q)
		}
		b.WriteString(escape.String(u.Text, q))
	case TypeURI:
		if minify && escape.IsURLUnquoted(u.Text) {
			b.WriteString(escape.URL(u.Text, 0))
		} else {
			b.WriteString(escape.URL(u.Text, u.Quote))
		}
	case TypeNumber, TypePercentage, TypeDimension:
		b.WriteString(FormatNumber(u.Number, u.Integer && u.Type == TypeNumber, minify))
		b.WriteString(u.Dimension)
	case TypeHash:
		b.WriteByte('#')
		b.WriteString(escape.Name(u.Text))
	case TypeFunction:
		b.WriteString(escape.Ident(strings.ToLower(u.Text)))
		b.WriteByte('(')
		write(b, u.Params, minify)
		b.WriteByte(')')
	case TypeBlock:
		b.WriteString(u.Text)
		write(b, u.Params, minify)
		b.WriteString(matching(u.Text))
	default:
		b.WriteString(u.Text)
	}
}

// FormatNumber formats a numeric component. Integers never minify to
// exponent form.
func FormatNumber(f float64, integer, minify bool) string {
	switch {
	case minify && integer:
		return escape.MinifyInteger(f)
	case minify:
		return escape.MinifyNumber(f)
	}
	return escape.Number(f)
}

func quoteOf(q byte) byte {
	if q == escape.SingleQuote {
		return q
	}
	return escape.DoubleQuote
}

func matching(open string) string {
	switch open {
	case "[":
		return "]"
	case "{":
		return "}"
	}
	return ")"
}
