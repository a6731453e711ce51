// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ordered

import "github.com/dolthub/maphash"

var dolthubHasher = maphash.NewHasher[string]()

// WithRuntimeHasher installs a Hasher backed by the Go runtime's string
// hash (via github.com/dolthub/maphash) instead of DefaultHasher's FNV-1a,
// mirroring hamt.WithRuntimeHasher for the ordered map's trie.
func WithRuntimeHasher() Option {
	return WithHasher(func(key []byte) uint32 {
		return uint32(dolthubHasher.Hash(string(key)))
	})
}
