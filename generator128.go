// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xorshift

import (
	"io"
	"iter"
	"math"
)

// maxUint128 is 2^128-1 as a float64, which rounds to 2^128.
var maxUint128 = math.Ldexp(1, 128)

// Generator128 is the four-lane xorshift generator with 128 bits of state.
// The state is treated as lanes a, b, c, d of 32 bits each, a being the most
// significant; all shifts operate on single lanes.
type Generator128 struct {
	state Uint128
}

// NewGenerator128 returns a generator seeded from DefaultEntropy.
func NewGenerator128() Generator128 {
	return NewGenerator128From(DefaultEntropy)
}

// NewGenerator128From returns a generator seeded from r.
func NewGenerator128From(r io.Reader) Generator128 {
	return Generator128{state: entropy128(r)}
}

// NewGenerator128WithSeed returns a generator whose state is seed.
func NewGenerator128WithSeed(seed Uint128) Generator128 {
	return Generator128{state: seed}
}

// Next advances the state and returns it.
func (g *Generator128) Next() Uint128 {
	a, b, c, d := g.state.lanes()
	t, s := d, a
	d, c, b = c, b, a
	t ^= t << 11
	t ^= t >> 8
	a = t ^ s ^ (s >> 19)
	g.state = fromLanes(a, b, c, d)
	return g.state
}

// Float64 returns Next divided by 2^128-1.
func (g *Generator128) Float64() float64 {
	return g.Next().Float64() / maxUint128
}

// Float32 returns Float64 narrowed to float32. 2^128-1 itself does not fit
// in a float32.
func (g *Generator128) Float32() float32 {
	return float32(g.Float64())
}

// Values returns an infinite sequence of calls to Next.
func (g *Generator128) Values() iter.Seq[Uint128] {
	return func(yield func(Uint128) bool) {
		for yield(g.Next()) {
		}
	}
}

// State returns the current state without advancing it.
func (g *Generator128) State() Uint128 { return g.state }
