/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrUnknownProperty indicates a property is not in the registry.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrInvalidRegistry indicates registry data could not be decoded or
	// contains an invalid entry.
	ErrInvalidRegistry = errors.New("invalid registry")

	// ErrRemoteSource indicates a remote registry was requested without a
	// fetcher.
	ErrRemoteSource = errors.New("remote registry source needs a fetcher")
)
