/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"strings"

	"bennypowers.dev/cssvalues/syntax"
)

// MatchSyntax reports whether v satisfies def.
//
// Proxies and inherit never match a concrete descriptor, since their final
// value is unknown until substitution or cascade. A list matches only a
// component whose multiplier agrees with the list separator, and only when
// every item matches that component.
func MatchSyntax(v Value, def *syntax.Definition) bool {
	if v == nil || def == nil {
		return false
	}
	if def.Universal {
		return true
	}
	if k := v.Kind(); k == KindProxy || k == KindKeyword {
		return false
	}
	for _, c := range def.Alternatives {
		if matchComponent(v, c) {
			return true
		}
	}
	return false
}

// Matches parses descriptor and matches v against it. A descriptor that
// cannot be parsed matches nothing.
func Matches(v Value, descriptor string) bool {
	def, err := syntax.Parse(descriptor)
	if err != nil {
		return false
	}
	return MatchSyntax(v, def)
}

func matchComponent(v Value, c syntax.Component) bool {
	l, ok := v.(*ValueList)
	if !ok {
		return matchSingle(v, c)
	}
	switch {
	case c.Multiplier == syntax.CommaList && l.sep == CommaSeparated:
	case c.Multiplier == syntax.SpaceList && l.sep == SpaceSeparated:
	default:
		return false
	}
	if len(l.items) == 0 {
		return false
	}
	for _, item := range l.items {
		if !matchSingle(item, c) {
			return false
		}
	}
	return true
}

func matchSingle(v Value, c syntax.Component) bool {
	switch c.Category {
	case syntax.Keyword:
		id, ok := v.(*IdentifierValue)
		return ok && strings.EqualFold(id.name, c.Name)
	case syntax.CustomIdent:
		id, ok := v.(*IdentifierValue)
		return ok && id.IsCustomIdent()
	case syntax.String:
		_, ok := v.(*StringValue)
		return ok
	case syntax.URL:
		return isURI(v)
	case syntax.Image:
		switch x := v.(type) {
		case *FunctionValue:
			return imageFunctions[x.name]
		case *ElementReferenceValue:
			return true
		}
		return isURI(v)
	case syntax.Color:
		switch x := v.(type) {
		case *ColorValue:
			return true
		case *IdentifierValue:
			return x.IsColorKeyword()
		}
		return false
	case syntax.TransformFunction, syntax.TransformList:
		fn, ok := v.(*FunctionValue)
		return ok && transformFunctions[fn.name]
	}
	if c.Category.Numeric() {
		switch x := v.(type) {
		case *NumericValue:
			return numericIn(x, c.Category)
		case *FunctionValue:
			return x.IsMathFunction() && mathIn(x, c.Category)
		}
	}
	return false
}

func isURI(v Value) bool {
	switch v.(type) {
	case *URIValue, *URIWrapper:
		return true
	}
	return false
}

func numericIn(n *NumericValue, cat syntax.Category) bool {
	if n.unit == "" {
		switch cat {
		case syntax.Number:
			return true
		case syntax.Integer:
			return n.integer
		case syntax.Length, syntax.LengthPercentage:
			return n.number == 0
		}
		return false
	}
	uc, ok := UnitCategory(n.unit)
	if !ok {
		return false
	}
	if cat == syntax.LengthPercentage {
		return uc == syntax.Length || uc == syntax.Percentage
	}
	return uc == cat
}

// mathIn judges a math function by the dimensions of its leaves: unitless
// numbers scale, every other leaf must agree on one category, with lengths
// and percentages mixing into <length-percentage>.
func mathIn(fn *FunctionValue, cat syntax.Category) bool {
	leaves := map[syntax.Category]bool{}
	integers := true
	collectLeaves(fn.args, leaves, &integers)
	switch len(leaves) {
	case 0:
		return cat == syntax.Number || cat == syntax.Integer && integers
	case 1:
		for leaf := range leaves {
			if cat == syntax.LengthPercentage {
				return leaf == syntax.Length || leaf == syntax.Percentage
			}
			return leaf == cat
		}
	case 2:
		return cat == syntax.LengthPercentage && leaves[syntax.Length] && leaves[syntax.Percentage]
	}
	return false
}

func collectLeaves(v Value, leaves map[syntax.Category]bool, integers *bool) {
	switch x := v.(type) {
	case *NumericValue:
		if x.unit == "" {
			*integers = *integers && x.integer
			return
		}
		if uc, ok := UnitCategory(x.unit); ok {
			leaves[uc] = true
		} else {
			leaves[syntax.Keyword] = true
		}
	case *FunctionValue:
		collectLeaves(x.args, leaves, integers)
	case *ValueList:
		for _, item := range x.items {
			collectLeaves(item, leaves, integers)
		}
	}
}
