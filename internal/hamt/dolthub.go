// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hamt

import "github.com/dolthub/maphash"

// dolthubHasher wraps maphash.Hasher, which reaches into the Go runtime's
// own string hash function through reflection rather than shipping a
// separate hash implementation (SPEC_FULL.md DOMAIN STACK). It is an
// alternative to DefaultHasher for callers who want their map's bucket
// distribution to track whatever hash the runtime itself uses.
var dolthubHasher = maphash.NewHasher[string]()

// WithRuntimeHasher installs a Hasher backed by the Go runtime's string
// hash (via github.com/dolthub/maphash) instead of DefaultHasher's FNV-1a.
func WithRuntimeHasher() Option {
	return WithHasher(func(key []byte) uint32 {
		return uint32(dolthubHasher.Hash(string(key)))
	})
}
