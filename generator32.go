// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xorshift

import (
	"io"
	"iter"
	"math"
)

// Generator32 is an xorshift generator with 32 bits of state.
// The zero value is the degenerate generator that always returns 0.
type Generator32 struct {
	state uint32
}

// NewGenerator32 returns a generator seeded from DefaultEntropy.
func NewGenerator32() Generator32 {
	return NewGenerator32From(DefaultEntropy)
}

// NewGenerator32From returns a generator seeded from r. See DefaultEntropy
// for what happens when r fails.
func NewGenerator32From(r io.Reader) Generator32 {
	return Generator32{state: entropy32(r)}
}

// NewGenerator32WithSeed returns a generator whose state is seed.
func NewGenerator32WithSeed(seed uint32) Generator32 {
	return Generator32{state: seed}
}

// Next advances the state and returns it.
func (g *Generator32) Next() uint32 {
	g.state = shift(g.state, triple32)
	return g.state
}

// Float64 returns Next divided by math.MaxUint32.
func (g *Generator32) Float64() float64 {
	return ratio64(g.Next(), math.MaxUint32)
}

// Float32 returns Next divided by math.MaxUint32.
func (g *Generator32) Float32() float32 {
	return ratio32(g.Next(), math.MaxUint32)
}

// Values returns an infinite sequence of calls to Next.
func (g *Generator32) Values() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for yield(g.Next()) {
		}
	}
}

// State returns the current state without advancing it.
func (g *Generator32) State() uint32 { return g.state }
