/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lexical

import "errors"

var (
	// ErrSyntax is returned when text contains a token that is not allowed
	// in a property value, such as a semicolon or an at-keyword.
	ErrSyntax = errors.New("syntax error")

	// ErrUnbalanced is returned when parentheses, brackets or braces do not
	// pair up.
	ErrUnbalanced = errors.New("unbalanced block")

	// ErrBadToken is returned for unterminated strings and malformed url() tokens.
	ErrBadToken = errors.New("malformed token")
)
