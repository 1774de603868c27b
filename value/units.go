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

var unitCategories = map[string]syntax.Category{
	"%": syntax.Percentage,

	// absolute lengths
	"px": syntax.Length, "cm": syntax.Length, "mm": syntax.Length, "q": syntax.Length,
	"in": syntax.Length, "pt": syntax.Length, "pc": syntax.Length,

	// font-relative lengths
	"em": syntax.Length, "rem": syntax.Length, "ex": syntax.Length, "rex": syntax.Length,
	"cap": syntax.Length, "rcap": syntax.Length, "ch": syntax.Length, "rch": syntax.Length,
	"ic": syntax.Length, "ric": syntax.Length, "lh": syntax.Length, "rlh": syntax.Length,

	// viewport and container lengths
	"vw": syntax.Length, "vh": syntax.Length, "vi": syntax.Length, "vb": syntax.Length,
	"vmin": syntax.Length, "vmax": syntax.Length,
	"svw": syntax.Length, "svh": syntax.Length, "lvw": syntax.Length, "lvh": syntax.Length,
	"dvw": syntax.Length, "dvh": syntax.Length,
	"cqw": syntax.Length, "cqh": syntax.Length, "cqi": syntax.Length, "cqb": syntax.Length,
	"cqmin": syntax.Length, "cqmax": syntax.Length,

	"deg": syntax.Angle, "grad": syntax.Angle, "rad": syntax.Angle, "turn": syntax.Angle,

	"s": syntax.Time, "ms": syntax.Time,

	"dpi": syntax.Resolution, "dpcm": syntax.Resolution, "dppx": syntax.Resolution, "x": syntax.Resolution,

	"fr": syntax.Flex,
}

// UnitCategory returns the data type a unit belongs to. Units are matched
// without regard to ASCII case. The empty unit has no category.
func UnitCategory(unit string) (syntax.Category, bool) {
	c, ok := unitCategories[strings.ToLower(unit)]
	return c, ok
}
