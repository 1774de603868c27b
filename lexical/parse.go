/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lexical

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"bennypowers.dev/cssvalues/escape"
)

type token struct {
	tt    css.TokenType
	data  string
	space bool
}

// Parse tokenizes text and returns the first unit of the resulting chain.
// Whitespace-only text yields a nil chain and no error.
func Parse(text string) (*Unit, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	head, err := p.sequence(css.ErrorToken)
	if err != nil {
		return nil, err
	}
	return head, nil
}

// MustParse is like Parse but panics on error. It is intended for tests and
// static tables.
func MustParse(text string) *Unit {
	u, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("lexical.MustParse(%q): %v", text, err))
	}
	return u
}

func tokenize(text string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(text))
	var toks []token
	space := false
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			return toks, nil
		case css.WhitespaceToken:
			space = true
			continue
		case css.CommentToken:
			continue
		}
		toks = append(toks, token{tt: tt, data: string(data), space: space})
		space = false
	}
}

type parser struct {
	toks []token
	pos  int
}

var closers = map[css.TokenType]css.TokenType{
	css.LeftParenthesisToken: css.RightParenthesisToken,
	css.LeftBracketToken:     css.RightBracketToken,
	css.LeftBraceToken:       css.RightBraceToken,
	css.FunctionToken:        css.RightParenthesisToken,
}

// sequence reads units until closer, or until the end of input when closer
// is ErrorToken.
func (p *parser) sequence(closer css.TokenType) (*Unit, error) {
	var head, tail *Unit
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		p.pos++
		switch t.tt {
		case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
			if t.tt != closer {
				return nil, fmt.Errorf("%w: unexpected %q", ErrUnbalanced, t.data)
			}
			return head, nil
		}
		u, err := p.unit(t)
		if err != nil {
			return nil, err
		}
		u.SpaceBefore = t.space && head != nil
		if tail == nil {
			head = u
		} else {
			tail.Next = u
			u.Prev = tail
		}
		tail = u
	}
	if closer != css.ErrorToken {
		return nil, fmt.Errorf("%w: missing %q", ErrUnbalanced, closerText(closer))
	}
	return head, nil
}

func closerText(tt css.TokenType) string {
	switch tt {
	case css.RightBracketToken:
		return "]"
	case css.RightBraceToken:
		return "}"
	}
	return ")"
}

func (p *parser) unit(t token) (*Unit, error) {
	switch t.tt {
	case css.IdentToken, css.CustomPropertyNameToken:
		return &Unit{Type: TypeIdent, Text: escape.Unescape(t.data)}, nil
	case css.StringToken:
		s, q, err := unquote(t.data)
		if err != nil {
			return nil, err
		}
		return &Unit{Type: TypeString, Text: s, Quote: q}, nil
	case css.URLToken:
		return urlUnit(t.data)
	case css.BadStringToken, css.BadURLToken:
		return nil, fmt.Errorf("%w: %q", ErrBadToken, t.data)
	case css.NumberToken:
		return numeric(TypeNumber, t.data, "")
	case css.PercentageToken:
		return numeric(TypePercentage, t.data[:len(t.data)-1], "%")
	case css.DimensionToken:
		n := parse.Number([]byte(t.data))
		if n == 0 || n == len(t.data) {
			return nil, fmt.Errorf("%w: dimension %q", ErrBadToken, t.data)
		}
		return numeric(TypeDimension, t.data[:n], escape.Unescape(t.data[n:]))
	case css.HashToken:
		return &Unit{Type: TypeHash, Text: escape.Unescape(t.data[1:])}, nil
	case css.UnicodeRangeToken:
		return &Unit{Type: TypeUnicodeRange, Text: t.data}, nil
	case css.FunctionToken:
		name := escape.Unescape(t.data[:len(t.data)-1])
		params, err := p.sequence(closers[t.tt])
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(name, "url") {
			if params == nil || params.Next != nil || params.Type != TypeString {
				return nil, fmt.Errorf("%w: url() expects a single string", ErrBadToken)
			}
			return &Unit{Type: TypeURI, Text: params.Text, Quote: params.Quote}, nil
		}
		return &Unit{Type: TypeFunction, Text: name, Params: params}, nil
	case css.LeftParenthesisToken, css.LeftBracketToken, css.LeftBraceToken:
		params, err := p.sequence(closers[t.tt])
		if err != nil {
			return nil, err
		}
		return &Unit{Type: TypeBlock, Text: t.data, Params: params}, nil
	case css.CommaToken:
		return &Unit{Type: TypeComma, Text: ","}, nil
	case css.DelimToken:
		switch t.data {
		case "/":
			return &Unit{Type: TypeSlash, Text: "/"}, nil
		case "@", "\\":
			return nil, fmt.Errorf("%w: stray %q", ErrSyntax, t.data)
		}
		return &Unit{Type: TypeDelim, Text: t.data}, nil
	case css.ColonToken, css.IncludeMatchToken, css.DashMatchToken, css.PrefixMatchToken,
		css.SuffixMatchToken, css.SubstringMatchToken, css.ColumnToken:
		return &Unit{Type: TypeDelim, Text: t.data}, nil
	}
	return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, t.data)
}

func numeric(tt Type, num, dim string) (*Unit, error) {
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrBadToken, num)
	}
	integer := tt != TypePercentage && !strings.ContainsAny(num, ".eE")
	return &Unit{Type: tt, Number: f, Dimension: dim, Integer: integer}, nil
}

// unquote strips the delimiters from a string token and decodes escapes.
// Strings left open at the end of input are rejected.
func unquote(s string) (string, byte, error) {
	if len(s) < 2 || s[len(s)-1] != s[0] || escapedAt(s, len(s)-1) {
		return "", 0, fmt.Errorf("%w: unterminated string %s", ErrBadToken, s)
	}
	return escape.Unescape(s[1 : len(s)-1]), s[0], nil
}

func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func urlUnit(data string) (*Unit, error) {
	open := strings.IndexByte(data, '(')
	if open < 0 || !strings.HasSuffix(data, ")") {
		return nil, fmt.Errorf("%w: %q", ErrBadToken, data)
	}
	inner := strings.Trim(data[open+1:len(data)-1], " \t\n\r\f")
	if inner != "" && (inner[0] == '"' || inner[0] == '\'') {
		s, q, err := unquote(inner)
		if err != nil {
			return nil, err
		}
		return &Unit{Type: TypeURI, Text: s, Quote: q}, nil
	}
	return &Unit{Type: TypeURI, Text: escape.Unescape(inner)}, nil
}
