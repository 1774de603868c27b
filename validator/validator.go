/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks the declarations of a style sheet against the
// property registry.
package validator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"

	"bennypowers.dev/cssvalues/internal/logger"
	"bennypowers.dev/cssvalues/registry"
	"bennypowers.dev/cssvalues/resolver"
	"bennypowers.dev/cssvalues/value"
)

// Severity ranks a ValidationError.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ValidationError describes one problem in a style sheet.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Line is the 1-based line of the declaration, or 0.
	Line int
	// Path is the property the error belongs to.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
	Severity   Severity
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		if e.Line > 0 {
			fmt.Fprintf(&sb, ":%d", e.Line)
		}
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Options configures Validate.
type Options struct {
	// Strict reports warnings as errors.
	Strict bool

	// Inline treats the input as the body of a style attribute rather than
	// a style sheet.
	Inline bool

	// Registry defaults to registry.Default().
	Registry *registry.Database

	// Factory builds declaration values. It defaults to a factory bound to
	// Registry.
	Factory *value.Factory
}

// descriptorRules hold descriptors rather than properties.
var descriptorRules = map[string]bool{
	"@font-face":           true,
	"@page":                true,
	"@counter-style":       true,
	"@property":            true,
	"@font-feature-values": true,
	"@font-palette-values": true,
	"@viewport":            true,
}

type checker struct {
	opts     Options
	db       *registry.Database
	factory  *value.Factory
	filePath string
	src      []byte
	errs     []ValidationError
	defs     map[string]value.Value
	lines    map[string]int
}

// Validate checks every declaration in src. Problems are returned in
// source order, followed by custom-property cycles.
func Validate(src []byte, filePath string, opts Options) []ValidationError {
	c := &checker{
		opts:     opts,
		db:       opts.Registry,
		factory:  opts.Factory,
		filePath: filePath,
		src:      src,
		defs:     make(map[string]value.Value),
		lines:    make(map[string]int),
	}
	if c.db == nil {
		c.db = registry.Default()
	}
	if c.factory == nil {
		c.factory = value.NewFactory(value.WithRegistry(c.db), value.WithLogger(logger.Zap()))
	}

	p := css.NewParser(parse.NewInput(bytes.NewReader(src)), opts.Inline)
	var atRules []string
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if errors.Is(err, io.EOF) {
				c.cycles()
				return c.errs
			}
			if !p.HasParseError() {
				c.add(SeverityError, 0, "", fmt.Sprintf("reading style sheet: %v", err), "")
				return c.errs
			}
			line, msg := 0, err.Error()
			var perr *parse.Error
			if errors.As(err, &perr) {
				line, msg = perr.Line, perr.Message
			}
			c.add(SeverityError, line, "", msg, "")
		case css.BeginAtRuleGrammar:
			atRules = append(atRules, strings.ToLower(string(data)))
		case css.EndAtRuleGrammar:
			if len(atRules) > 0 {
				atRules = atRules[:len(atRules)-1]
			}
		case css.DeclarationGrammar:
			if len(atRules) > 0 && descriptorRules[atRules[len(atRules)-1]] {
				logger.Debug("skipping descriptor %s in %s", data, atRules[len(atRules)-1])
				continue
			}
			c.declaration(string(data), declarationText(p.Values()), c.line(p.Offset()))
		case css.CustomPropertyGrammar:
			var text string
			if vals := p.Values(); len(vals) > 0 {
				text = string(vals[0].Data)
			}
			c.customProperty(string(data), text, c.line(p.Offset()))
		}
	}
}

func (c *checker) line(offset int) int {
	line, _, _ := parse.Position(bytes.NewReader(c.src), offset)
	return line
}

func (c *checker) add(sev Severity, line int, path, msg, suggestion string) {
	if sev == SeverityWarning && c.opts.Strict {
		sev = SeverityError
	}
	c.errs = append(c.errs, ValidationError{
		FilePath:   c.filePath,
		Line:       line,
		Path:       path,
		Message:    msg,
		Suggestion: suggestion,
		Severity:   sev,
	})
}

func (c *checker) declaration(name, text string, line int) {
	if !c.db.IsKnownProperty(name) && !strings.HasPrefix(name, "-") {
		suggestion := ""
		if s := c.db.Suggest(name); s != "" {
			suggestion = fmt.Sprintf("did you mean %q?", s)
		}
		c.add(SeverityWarning, line, name, "unknown property", suggestion)
	}

	v, err := c.factory.ParsePropertyFor(name, text)
	if err != nil {
		c.add(SeverityError, line, name, fmt.Sprintf("invalid value %q: %v", text, err), "")
		return
	}

	def, ok := c.db.Syntax(name)
	if !ok || skipMatch(v) {
		return
	}
	if !value.MatchSyntax(v, def) {
		c.add(SeverityError, line, name,
			fmt.Sprintf("value %q does not match the property syntax", v.CSSText()),
			"expected "+def.String())
	}
}

func skipMatch(v value.Value) bool {
	switch v.Kind() {
	case value.KindKeyword, value.KindProxy:
		return true
	}
	id, ok := v.(*value.IdentifierValue)
	return ok && id.IsCSSWideKeyword()
}

func (c *checker) customProperty(name, text string, line int) {
	if strings.TrimSpace(text) == "" {
		return
	}
	v, err := c.factory.ParsePropertyFor(name, strings.TrimSpace(text))
	if err != nil {
		c.add(SeverityError, line, name, fmt.Sprintf("invalid value %q: %v", text, err), "")
		return
	}
	c.defs[name] = v
	c.lines[name] = line
}

func (c *checker) cycles() {
	graph := resolver.BuildDependencyGraph(c.defs)
	members := graph.InCycle()
	if len(members) == 0 {
		return
	}
	path := strings.Join(graph.FindCycle(), " -> ")
	for _, name := range members {
		c.add(SeverityError, c.lines[name], name, resolver.ErrCircularReference.Error(), path)
	}
}

// declarationText rebuilds a declaration value from its tokens, dropping a
// trailing !important.
func declarationText(tokens []css.Token) string {
	end := len(tokens)
	trim := func() {
		for end > 0 && tokens[end-1].TokenType == css.WhitespaceToken {
			end--
		}
	}
	trim()
	if end > 0 && tokens[end-1].TokenType == css.IdentToken && strings.EqualFold(string(tokens[end-1].Data), "important") {
		i := end - 1
		for i > 0 && tokens[i-1].TokenType == css.WhitespaceToken {
			i--
		}
		if i > 0 && tokens[i-1].TokenType == css.DelimToken && string(tokens[i-1].Data) == "!" {
			end = i - 1
			trim()
		}
	}
	var sb strings.Builder
	for _, t := range tokens[:end] {
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// HasErrors reports whether errs holds anything above warning severity.
func HasErrors(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Combine joins errs into a single error, or nil.
func Combine(errs []ValidationError) error {
	var err error
	for i := range errs {
		err = multierr.Append(err, &errs[i])
	}
	return err
}
