/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import "fmt"

// Kind is the coarse classification of a value.
type Kind int

const (
	// KindTyped values have a concrete CSS type and are fully resolved.
	KindTyped Kind = iota

	// KindList values are ordered sequences sharing one separator.
	KindList

	// KindKeyword is the inherit keyword.
	KindKeyword

	// KindProxy values stand in for content that cannot be resolved until
	// substitution: var(), env() and lexical placeholders.
	KindProxy
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindTyped:
		return "typed"
	case KindList:
		return "list"
	case KindKeyword:
		return "keyword"
	case KindProxy:
		return "proxy"
	default:
		return "unknown"
	}
}

// Type is the fine-grained tag of a value.
type Type int

const (
	TypeIdent Type = iota
	TypeString
	TypeURI
	TypeAttr
	TypeColor
	TypeNumeric
	TypeCounter
	TypeCounters
	TypeRatio
	TypeRect
	TypeUnicodeRange
	TypeCustomProperty
	TypeEnv
	TypeLexical
	TypeFunction
	TypeElementReference
	TypeOperator
	TypeUnknown
	TypeInherit
	TypeList
)

var typeNames = [...]string{
	TypeIdent:            "ident",
	TypeString:           "string",
	TypeURI:              "uri",
	TypeAttr:             "attr",
	TypeColor:            "color",
	TypeNumeric:          "numeric",
	TypeCounter:          "counter",
	TypeCounters:         "counters",
	TypeRatio:            "ratio",
	TypeRect:             "rect",
	TypeUnicodeRange:     "unicode-range",
	TypeCustomProperty:   "custom-property",
	TypeEnv:              "env",
	TypeLexical:          "lexical",
	TypeFunction:         "function",
	TypeElementReference: "element-reference",
	TypeOperator:         "operator",
	TypeUnknown:          "unknown",
	TypeInherit:          "inherit",
	TypeList:             "list",
}

// String returns the string representation of the type.
func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "invalid"
}

// KindOf returns the only kind a value of type t may have.
func KindOf(t Type) Kind {
	switch t {
	case TypeInherit:
		return KindKeyword
	case TypeCustomProperty, TypeEnv, TypeLexical:
		return KindProxy
	case TypeList:
		return KindList
	default:
		return KindTyped
	}
}

// CheckKind reports an error when v's kind does not agree with its type.
func CheckKind(v Value) error {
	if want := KindOf(v.Type()); v.Kind() != want {
		return fmt.Errorf("%s value reports kind %s, want %s", v.Type(), v.Kind(), want)
	}
	return nil
}
