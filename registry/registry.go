/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package registry holds metadata about CSS properties: initial values,
// inheritance, value syntax, keywords and shorthand structure.
//
// The default database is embedded and loaded once. Additional databases
// can be parsed from YAML or JSON and merged over it.
package registry

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/tidwall/jsonc"
	"github.com/xrash/smetrics"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/cssvalues/syntax"
	"bennypowers.dev/cssvalues/value"
)

//go:embed properties.yaml
var embedded []byte

// Property describes one CSS property.
type Property struct {
	Name      string   `yaml:"name" json:"name"`
	Initial   string   `yaml:"initial,omitempty" json:"initial,omitempty"`
	Inherited bool     `yaml:"inherited,omitempty" json:"inherited,omitempty"`
	Syntax    string   `yaml:"syntax,omitempty" json:"syntax,omitempty"`
	Keywords  []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Longhands []string `yaml:"longhands,omitempty" json:"longhands,omitempty"`

	syntax   *syntax.Definition
	keywords map[string]bool
}

// IsShorthand reports whether the property sets other properties.
func (p *Property) IsShorthand() bool { return len(p.Longhands) > 0 }

type document struct {
	Properties []Property `yaml:"properties"`
}

// Database is a read-only set of property descriptions. It satisfies
// value.KeywordChecker.
type Database struct {
	props  map[string]*Property
	owners map[string][]string
}

var defaultDatabase = sync.OnceValue(func() *Database {
	db, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("embedded registry: %v", err))
	}
	return db
})

// Default returns the embedded database. It is built on first use and
// shared afterwards.
func Default() *Database { return defaultDatabase() }

// fold normalizes a property name or keyword for lookup. A Caser keeps
// state, so each call gets its own.
func fold(s string) string { return cases.Fold().String(s) }

// Parse decodes a registry document. JSON input may contain comments and
// trailing commas.
func Parse(data []byte) (*Database, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		data = jsonc.ToJSON(data)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}
	db := &Database{props: make(map[string]*Property, len(doc.Properties))}
	for i := range doc.Properties {
		p := doc.Properties[i]
		if err := p.compile(); err != nil {
			return nil, err
		}
		db.props[fold(p.Name)] = &p
	}
	db.index()
	return db, nil
}

func (p *Property) compile() error {
	if p.Name == "" {
		return fmt.Errorf("%w: property without a name", ErrInvalidRegistry)
	}
	p.keywords = make(map[string]bool, len(p.Keywords))
	for _, k := range p.Keywords {
		p.keywords[fold(k)] = true
	}
	if p.Syntax != "" {
		def, err := syntax.Parse(p.Syntax)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidRegistry, p.Name, err)
		}
		p.syntax = def
		for _, c := range def.Alternatives {
			if c.Category == syntax.Keyword {
				p.keywords[fold(c.Name)] = true
			}
		}
	}
	if p.Initial != "" {
		if _, err := value.ParsePropertyFor(p.Name, p.Initial); err != nil {
			return fmt.Errorf("%w: %s: initial value: %v", ErrInvalidRegistry, p.Name, err)
		}
	}
	return nil
}

func (db *Database) index() {
	db.owners = make(map[string][]string)
	for _, p := range db.props {
		for _, l := range p.Longhands {
			key := fold(l)
			db.owners[key] = append(db.owners[key], p.Name)
		}
	}
	for _, owners := range db.owners {
		sort.Strings(owners)
	}
}

// Merge returns a database holding every property of db and other. Entries
// in other replace entries of the same name.
func (db *Database) Merge(other *Database) *Database {
	merged := &Database{props: make(map[string]*Property, len(db.props)+len(other.props))}
	for k, p := range db.props {
		merged.props[k] = p
	}
	for k, p := range other.props {
		merged.props[k] = p
	}
	merged.index()
	return merged
}

// Property returns the description of name.
func (db *Database) Property(name string) (*Property, error) {
	p, ok := db.props[fold(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	return p, nil
}

// Len returns the number of properties.
func (db *Database) Len() int { return len(db.props) }

// Names returns every property name in sorted order.
func (db *Database) Names() []string {
	names := make([]string, 0, len(db.props))
	for _, p := range db.props {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// IsKnownProperty reports whether name is in the database.
func (db *Database) IsKnownProperty(name string) bool {
	_, ok := db.props[fold(name)]
	return ok
}

// IsInherited reports whether the property inherits by default.
func (db *Database) IsInherited(name string) bool {
	p, ok := db.props[fold(name)]
	return ok && p.Inherited
}

// InitialValue returns a freshly built initial value of the property.
func (db *Database) InitialValue(name string) (value.Value, bool) {
	p, ok := db.props[fold(name)]
	if !ok || p.Initial == "" {
		return nil, false
	}
	v, err := value.NewFactory(value.WithRegistry(db)).ParsePropertyFor(p.Name, p.Initial)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Syntax returns the parsed value syntax of the property.
func (db *Database) Syntax(name string) (*syntax.Definition, bool) {
	p, ok := db.props[fold(name)]
	if !ok || p.syntax == nil {
		return nil, false
	}
	return p.syntax, true
}

// IsIdentifierValue reports whether keyword is one of the property's own
// keywords.
func (db *Database) IsIdentifierValue(property, keyword string) bool {
	p, ok := db.props[fold(property)]
	return ok && p.keywords[fold(keyword)]
}

// IsShorthand reports whether name is a shorthand property.
func (db *Database) IsShorthand(name string) bool {
	p, ok := db.props[fold(name)]
	return ok && p.IsShorthand()
}

// Longhands returns the properties a shorthand sets.
func (db *Database) Longhands(shorthand string) []string {
	p, ok := db.props[fold(shorthand)]
	if !ok {
		return nil
	}
	return slices.Clone(p.Longhands)
}

// Shorthands returns the shorthands that set longhand, sorted.
func (db *Database) Shorthands(longhand string) []string {
	return slices.Clone(db.owners[fold(longhand)])
}

// IsShorthandSubproperty reports whether some shorthand sets longhand.
func (db *Database) IsShorthandSubproperty(longhand string) bool {
	return len(db.owners[fold(longhand)]) > 0
}

// IsShorthandSubpropertyOf reports whether shorthand sets longhand.
func (db *Database) IsShorthandSubpropertyOf(shorthand, longhand string) bool {
	p, ok := db.props[fold(shorthand)]
	if !ok {
		return false
	}
	l := fold(longhand)
	return slices.ContainsFunc(p.Longhands, func(s string) bool { return fold(s) == l })
}

// maxSuggestDistance bounds how different a suggestion may be.
const maxSuggestDistance = 3

// Suggest returns the known property closest to name by edit distance, or
// "" when nothing is close.
func (db *Database) Suggest(name string) string {
	target := fold(name)
	best, bestDist := "", maxSuggestDistance+1
	for _, n := range db.Names() {
		d := smetrics.WagnerFischer(target, fold(n), 1, 1, 1)
		if d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}
