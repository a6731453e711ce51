// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rbtree

import "golang.org/x/text/collate"

// WithCollator installs a locale-aware Comparator backed by a
// golang.org/x/text/collate.Collator (SPEC_FULL.md DOMAIN STACK), so a
// sorted map or set can order byte-string keys by collation rules for a
// given language rather than raw byte value. Numeric keys still compare
// by IEEE-754 order.
func WithCollator(c *collate.Collator) Option {
	return WithComparator(func(a, b Value) int {
		if a.Numeric && b.Numeric {
			return DefaultComparator(a, b)
		}
		return c.Compare(a.Bytes, b.Bytes)
	})
}
