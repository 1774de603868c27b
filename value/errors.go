/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import "errors"

// Sentinel errors for value construction and mutation. A failed call never
// modifies the receiving value.
var (
	// ErrInvalidCharacter indicates malformed identifier, string or
	// unicode-range content.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrSyntax indicates text that does not tokenize, or a function whose
	// arguments are missing or structurally invalid.
	ErrSyntax = errors.New("syntax error")

	// ErrInvalidModification indicates an attempt to give a value text of a
	// different kind than its own.
	ErrInvalidModification = errors.New("invalid modification")

	// ErrInvalidAccess indicates input the grammar accepts but the value
	// rejects, such as a negative ratio component.
	ErrInvalidAccess = errors.New("invalid access")
)
