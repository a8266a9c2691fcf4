// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xorshift implements Marsaglia's xorshift pseudo-random number
generators for 32, 64 and 128-bit state, and for the native word size.

Each generator is a value holding nothing but its state. Every call to Next
advances the state once and returns it:

	g := xorshift.NewGenerator64WithSeed(123456123456)
	v := g.Next() // 2433743613504487332

A zero state is a fixed point of every transition: a generator seeded with 0
returns 0 forever. Generators built without an explicit seed are seeded from
[DefaultEntropy] and never start at zero.

The generators are fast and small but not cryptographically secure. Their
output must never be used for keys, tokens or anything an adversary could
profit from predicting. Generators are not safe for concurrent use; give each
goroutine its own instance or guard a shared one with a mutex.
*/
package xorshift
