/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"bennypowers.dev/cssvalues/escape"
	"bennypowers.dev/cssvalues/lexical"
)

// KeywordChecker answers whether an identifier is a keyword of a property.
// Property-aware parsing uses it to normalize keyword case.
type KeywordChecker interface {
	IsIdentifierValue(property, keyword string) bool
}

// Factory builds values from CSS text or lexical unit chains.
//
// A Factory holds no mutable state and may be shared between goroutines.
type Factory struct {
	keywords KeywordChecker
	quote    byte
	log      *zap.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithRegistry sets the keyword source used by ParsePropertyFor.
func WithRegistry(k KeywordChecker) Option {
	return func(f *Factory) { f.keywords = k }
}

// WithQuote makes every string serialize with q instead of the quote found
// in the source.
func WithQuote(q byte) Option {
	return func(f *Factory) {
		if q == escape.SingleQuote || q == escape.DoubleQuote {
			f.quote = q
		}
	}
}

// WithLogger sets the logger used to report lenient handling of unknown
// content.
func WithLogger(l *zap.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.log = l.Named("values")
		}
	}
}

// NewFactory returns a factory.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{log: zap.NewNop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFactory = sync.OnceValue(func() *Factory { return NewFactory() })

// DefaultFactory returns the shared factory with no registry, used by the
// package-level parse functions and by value setters.
func DefaultFactory() *Factory { return defaultFactory() }

// ParseProperty parses a property value with the default factory.
func ParseProperty(text string) (Value, error) { return DefaultFactory().ParseProperty(text) }

// ParsePropertyFor parses the value of the named property with the default
// factory.
func ParsePropertyFor(property, text string) (Value, error) {
	return DefaultFactory().ParsePropertyFor(property, text)
}

// ParseMediaFeature parses a media feature value with the default factory.
func ParseMediaFeature(text string) (Value, error) { return DefaultFactory().ParseMediaFeature(text) }

// NewString returns a string value using the factory's quote, or double
// quotes when none was configured.
func (f *Factory) NewString(text string) (*StringValue, error) {
	if f.quote != 0 {
		return NewQuotedString(text, f.quote)
	}
	return NewString(text)
}

// ParseProperty parses a property value without property context.
func (f *Factory) ParseProperty(text string) (Value, error) {
	return f.ParsePropertyFor("", text)
}

// ParsePropertyFor parses the value of the named property. Custom property
// values are kept as lexical placeholders.
func (f *Factory) ParsePropertyFor(property, text string) (Value, error) {
	lu, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(property, "--") {
		return NewLexical(lu)
	}
	return f.CreateValue(property, lu)
}

func tokenize(text string) (*lexical.Unit, error) {
	lu, err := lexical.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if lu == nil {
		return nil, fmt.Errorf("%w: empty value", ErrSyntax)
	}
	return lu, nil
}

// ParseMediaFeature parses the restricted grammar of media feature values:
// a number, a dimension, an identifier or a ratio.
func (f *Factory) ParseMediaFeature(text string) (Value, error) {
	lu, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	if lu.Next != nil && lu.Next.Type == lexical.TypeSlash {
		r, next, err := f.ratio(lu)
		if err != nil {
			return nil, err
		}
		if next != nil {
			return nil, fmt.Errorf("%w: unexpected %q after ratio", ErrSyntax, lexical.Serialize(next, false))
		}
		return r, nil
	}
	if lu.Next != nil {
		return nil, fmt.Errorf("%w: %q is not a single media feature value", ErrSyntax, text)
	}
	switch lu.Type {
	case lexical.TypeNumber, lexical.TypeDimension, lexical.TypeIdent:
		v, _, err := f.CreateSingle("", lu)
		return v, err
	}
	return nil, fmt.Errorf("%w: %s is not allowed in a media feature", ErrSyntax, lu.Type)
}

// CreateValue builds a value from the whole chain starting at lu. Several
// values become a list; a chain that uses var() or env() anywhere other
// than as its only unit becomes a lexical placeholder.
func (f *Factory) CreateValue(property string, lu *lexical.Unit) (Value, error) {
	if lu == nil {
		return nil, fmt.Errorf("%w: empty value", ErrSyntax)
	}
	if lu.Contains(isSubstitution) && !(lu.Next == nil && isSubstitution(lu)) {
		return NewLexical(lu)
	}
	return f.list(property, lu)
}

func isSubstitution(u *lexical.Unit) bool {
	switch u.Name() {
	case "var", "env":
		return true
	}
	return false
}

// list assembles comma- and space-separated values. A single value is
// returned as is.
func (f *Factory) list(property string, lu *lexical.Unit) (Value, error) {
	var groups []Value
	var items []Value
	for lu != nil {
		if lu.Type == lexical.TypeComma {
			if len(items) == 0 {
				return nil, fmt.Errorf("%w: unexpected comma", ErrSyntax)
			}
			groups = append(groups, group(items))
			items = nil
			if lu = lu.Next; lu == nil {
				return nil, fmt.Errorf("%w: trailing comma", ErrSyntax)
			}
			continue
		}
		v, next, err := f.CreateSingle(property, lu)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		lu = next
	}
	if groups == nil {
		return group(items), nil
	}
	return NewCommaList(append(groups, group(items))...), nil
}

func group(items []Value) Value {
	if len(items) == 1 {
		return items[0]
	}
	return NewSpaceList(items...)
}

// CreateSingle builds one value from lu and returns it along with the first
// unit it did not consume. On error the cursor is lu itself.
func (f *Factory) CreateSingle(property string, lu *lexical.Unit) (Value, *lexical.Unit, error) {
	if lu == nil {
		return nil, nil, fmt.Errorf("%w: missing value", ErrSyntax)
	}
	next := lu.Next
	switch lu.Type {
	case lexical.TypeIdent:
		if lu.IsIdent("inherit") {
			return Inherit(), next, nil
		}
		name := lu.Text
		if IsCSSWideKeyword(name) || f.isKeyword(property, name) {
			name = strings.ToLower(name)
		}
		v, err := NewIdentifier(name)
		if err != nil {
			return nil, lu, err
		}
		return v, next, nil
	case lexical.TypeString:
		q := lu.Quote
		if f.quote != 0 {
			q = f.quote
		}
		return &StringValue{text: lu.Text, quote: q}, next, nil
	case lexical.TypeURI:
		q := lu.Quote
		if q != 0 && f.quote != 0 {
			q = f.quote
		}
		return &URIValue{url: lu.Text, quote: q}, next, nil
	case lexical.TypeNumber, lexical.TypePercentage, lexical.TypeDimension:
		if property == "aspect-ratio" && ratioAhead(lu) {
			return f.ratio(lu)
		}
		return numericFromUnit(lu), next, nil
	case lexical.TypeHash:
		if c, ok := colorFromUnit(lu); ok {
			return c, next, nil
		}
		f.log.Debug("hash is not a color", zap.String("text", lexical.Text(lu, false)))
	case lexical.TypeUnicodeRange:
		v, err := NewUnicodeRange(lu.Text)
		if err != nil {
			return nil, lu, err
		}
		return v, next, nil
	case lexical.TypeFunction:
		if property == "aspect-ratio" && ratioAhead(lu) {
			return f.ratio(lu)
		}
		v, err := f.function(lu)
		if err != nil {
			return nil, lu, err
		}
		return v, next, nil
	case lexical.TypeSlash:
		return &OperatorValue{op: "/"}, next, nil
	case lexical.TypeDelim:
		if operators[lu.Text] {
			return &OperatorValue{op: lu.Text}, next, nil
		}
	case lexical.TypeComma:
		return nil, lu, fmt.Errorf("%w: unexpected comma", ErrSyntax)
	}
	f.log.Debug("keeping unit without a typed value",
		zap.Stringer("unit", lu.Type), zap.String("text", lexical.Text(lu, false)))
	return newUnknown(lu), next, nil
}

func (f *Factory) isKeyword(property, name string) bool {
	return f.keywords != nil && property != "" && f.keywords.IsIdentifierValue(property, strings.ToLower(name))
}

// ratioAhead reports whether lu starts "a / b" with a number or math
// function on the left.
func ratioAhead(lu *lexical.Unit) bool {
	return isRatioSide(lu) && lu.Next != nil && lu.Next.Type == lexical.TypeSlash && lu.Next.Next != nil
}

// ratio reads "a / b".
func (f *Factory) ratio(lu *lexical.Unit) (*RatioValue, *lexical.Unit, error) {
	if lu == nil || lu.Next == nil || lu.Next.Type != lexical.TypeSlash || lu.Next.Next == nil {
		return nil, lu, fmt.Errorf("%w: expected a ratio", ErrSyntax)
	}
	a, err := f.ratioSide(lu)
	if err != nil {
		return nil, lu, err
	}
	c, err := f.ratioSide(lu.Next.Next)
	if err != nil {
		return nil, lu, err
	}
	r, err := NewRatioOf(a, c)
	if err != nil {
		return nil, lu, err
	}
	return r, lu.Next.Next.Next, nil
}

func (f *Factory) ratioSide(u *lexical.Unit) (Value, error) {
	switch {
	case u.IsNumeric():
		return numericFromUnit(u), nil
	case u.Type == lexical.TypeFunction && (IsMathFunction(u.Name()) || isSubstitution(u)):
		return f.function(u)
	}
	return nil, fmt.Errorf("%w: %q is not a ratio component", ErrSyntax, lexical.Text(u, false))
}

func (f *Factory) function(lu *lexical.Unit) (Value, error) {
	name := lu.Name()
	switch name {
	case "counter":
		return f.counter(lu.Params)
	case "counters":
		return f.counters(lu.Params)
	case "var", "env":
		return f.reference(name, lu.Params)
	case "rect":
		return f.rect(lu.Params)
	case "attr":
		return f.attr(lu.Params)
	case "element":
		return f.element(lu.Params)
	}
	if IsColorFunction(name) {
		if c, ok := colorFromUnit(lu); ok {
			return c, nil
		}
		f.log.Debug("color function could not be evaluated", zap.String("text", lexical.Text(lu, false)))
	}
	args, err := f.arguments(lu.Params)
	if err != nil {
		return nil, fmt.Errorf("%s(): %w", name, err)
	}
	if !knownFunction(name) {
		f.log.Debug("keeping unknown function", zap.String("name", name))
	}
	return &FunctionValue{name: name, args: args}, nil
}

func knownFunction(name string) bool {
	return mathFunctions[name] || imageFunctions[name] || transformFunctions[name] ||
		colorFunctions[name] || name == "symbols" || name == "url"
}

func (f *Factory) arguments(params *lexical.Unit) (Value, error) {
	if params == nil {
		return nil, nil
	}
	return f.list("", params)
}

func (f *Factory) counter(params *lexical.Unit) (Value, error) {
	if params == nil || params.Type != lexical.TypeIdent {
		return nil, fmt.Errorf("%w: counter() needs a counter name", ErrSyntax)
	}
	c, err := NewCounter(params.Text)
	if err != nil {
		return nil, err
	}
	if c.style, err = f.counterStyle(params.Next); err != nil {
		return nil, err
	}
	return c, nil
}

func (f *Factory) counters(params *lexical.Unit) (Value, error) {
	if params == nil || params.Type != lexical.TypeIdent {
		return nil, fmt.Errorf("%w: counters() needs a counter name", ErrSyntax)
	}
	u := params.Next
	if u != nil && u.Type == lexical.TypeComma {
		u = u.Next
	}
	if u == nil || u.Type != lexical.TypeString {
		return nil, fmt.Errorf("%w: counters() needs a separator string", ErrSyntax)
	}
	c, err := NewCounters(params.Text, u.Text)
	if err != nil {
		return nil, err
	}
	if f.quote != 0 {
		c.separator.quote = f.quote
	} else {
		c.separator.quote = u.Quote
	}
	if c.style, err = f.counterStyle(u.Next); err != nil {
		return nil, err
	}
	return c, nil
}

// counterStyle reads the optional style that ends counter() and counters().
// The comma before it may be left out.
func (f *Factory) counterStyle(u *lexical.Unit) (Value, error) {
	if u == nil {
		return nil, nil
	}
	if u.Type == lexical.TypeComma {
		if u = u.Next; u == nil {
			return nil, fmt.Errorf("%w: missing counter style after comma", ErrSyntax)
		}
	}
	if u.Next != nil {
		return nil, fmt.Errorf("%w: unexpected %q after counter style", ErrSyntax, lexical.Serialize(u.Next, false))
	}
	var style Value
	switch {
	case u.Type == lexical.TypeIdent && !IsCSSWideKeyword(u.Text):
		style = &IdentifierValue{name: u.Text}
	case u.Name() == "symbols":
		v, err := f.function(u)
		if err != nil {
			return nil, err
		}
		style = v
	default:
		return nil, fmt.Errorf("%w: %q is not a counter style", ErrSyntax, lexical.Text(u, false))
	}
	return style, nil
}

func (f *Factory) reference(fn string, params *lexical.Unit) (Value, error) {
	if params == nil || params.Type != lexical.TypeIdent {
		return nil, fmt.Errorf("%w: %s() needs a name", ErrSyntax, fn)
	}
	name := params.Text
	if fn == "var" && !strings.HasPrefix(name, "--") {
		return nil, fmt.Errorf("%w: var() name %q must start with --", ErrSyntax, name)
	}
	var fallback Value
	if rest := params.Next; rest != nil {
		if rest.Type != lexical.TypeComma {
			return nil, fmt.Errorf("%w: expected comma after %s() name", ErrSyntax, fn)
		}
		if rest.Next == nil {
			return nil, fmt.Errorf("%w: empty %s() fallback", ErrSyntax, fn)
		}
		fb, err := f.CreateValue("", rest.Next)
		if err != nil {
			return nil, err
		}
		fallback = fb
	}
	if fn == "var" {
		return NewVar(name, fallback)
	}
	return NewEnv(name, fallback)
}

// rect reads four sides separated either all by commas or all by spaces.
func (f *Factory) rect(params *lexical.Unit) (Value, error) {
	var sides []Value
	var commas, spaces bool
	for u := params; u != nil; {
		if len(sides) > 0 {
			if u.Type != lexical.TypeComma {
				spaces = true
			} else if commas = true; u.Next == nil {
				return nil, fmt.Errorf("%w: trailing comma in rect()", ErrSyntax)
			} else {
				u = u.Next
			}
		}
		v, next, err := f.CreateSingle("", u)
		if err != nil {
			return nil, err
		}
		if err := checkRectSide(v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		sides = append(sides, v)
		u = next
	}
	if commas && spaces {
		return nil, fmt.Errorf("%w: rect() mixes comma and space separators", ErrSyntax)
	}
	if len(sides) != 4 {
		return nil, fmt.Errorf("%w: rect() needs 4 sides, got %d", ErrSyntax, len(sides))
	}
	return &RectValue{sides: [4]Value(sides)}, nil
}

func (f *Factory) attr(params *lexical.Unit) (Value, error) {
	if params == nil || params.Type != lexical.TypeIdent {
		return nil, fmt.Errorf("%w: attr() needs an attribute name", ErrSyntax)
	}
	a, err := NewAttr(params.Text)
	if err != nil {
		return nil, err
	}
	start := params.Next
	u := start
	for u != nil && u.Type != lexical.TypeComma {
		u = u.Next
	}
	if u != start {
		a.typ = start.Slice(u)
	}
	if u != nil {
		if u.Next == nil {
			return nil, fmt.Errorf("%w: empty attr() fallback", ErrSyntax)
		}
		if a.fallback, err = f.CreateValue("", u.Next); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (f *Factory) element(params *lexical.Unit) (Value, error) {
	if params == nil || params.Type != lexical.TypeHash || params.Next != nil {
		return nil, fmt.Errorf("%w: element() needs a single #id", ErrSyntax)
	}
	return NewElementReference(params.Text)
}
