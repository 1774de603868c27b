/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package syntax

// Category is the kind of value a component accepts.
type Category int

const (
	// Keyword is a literal identifier component such as "auto".
	Keyword Category = iota
	Length
	Number
	Percentage
	LengthPercentage
	Integer
	Angle
	Time
	Resolution
	Flex
	Color
	Image
	URL
	String
	CustomIdent
	TransformFunction

	// TransformList is a space-separated list of transform functions. It
	// carries its own multiplier and cannot take another.
	TransformList
)

var categoryNames = map[Category]string{
	Length:            "length",
	Number:            "number",
	Percentage:        "percentage",
	LengthPercentage:  "length-percentage",
	Integer:           "integer",
	Angle:             "angle",
	Time:              "time",
	Resolution:        "resolution",
	Flex:              "flex",
	Color:             "color",
	Image:             "image",
	URL:               "url",
	String:            "string",
	CustomIdent:       "custom-ident",
	TransformFunction: "transform-function",
	TransformList:     "transform-list",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, n := range categoryNames {
		m[n] = c
	}
	return m
}()

// String returns the data type name without angle brackets, or "keyword".
func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "keyword"
}

// CategoryFromName returns the category for a data type name such as
// "length".
func CategoryFromName(name string) (Category, bool) {
	c, ok := categoriesByName[name]
	return c, ok
}

// Numeric reports whether values of this category are numbers or dimensions.
func (c Category) Numeric() bool {
	switch c {
	case Length, Number, Percentage, LengthPercentage, Integer, Angle, Time, Resolution, Flex:
		return true
	}
	return false
}
