/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "errors"

var (
	// ErrCircularReference indicates custom properties that reference each
	// other in a loop.
	ErrCircularReference = errors.New("circular reference")

	// ErrUnresolvedReference indicates var() naming an undefined custom
	// property with no fallback.
	ErrUnresolvedReference = errors.New("unresolved reference")
)
