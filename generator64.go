// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xorshift

import (
	"io"
	"iter"
	"math"

	"golang.org/x/exp/rand"
)

var _ rand.Source = (*Generator64)(nil)

// Generator64 is an xorshift generator with 64 bits of state.
// The zero value is the degenerate generator that always returns 0.
//
// *Generator64 implements rand.Source, so it can drive a rand.Rand:
//
//	g := xorshift.NewGenerator64()
//	r := rand.New(&g)
type Generator64 struct {
	state uint64
}

// NewGenerator64 returns a generator seeded from DefaultEntropy.
func NewGenerator64() Generator64 {
	return NewGenerator64From(DefaultEntropy)
}

// NewGenerator64From returns a generator seeded from r.
func NewGenerator64From(r io.Reader) Generator64 {
	return Generator64{state: entropy64(r)}
}

// NewGenerator64WithSeed returns a generator whose state is seed.
func NewGenerator64WithSeed(seed uint64) Generator64 {
	return Generator64{state: seed}
}

// Next advances the state and returns it.
func (g *Generator64) Next() uint64 {
	g.state = shift(g.state, triple64)
	return g.state
}

// Uint64 is Next. It is here to satisfy rand.Source.
func (g *Generator64) Uint64() uint64 {
	return g.Next()
}

// Seed sets the state to seed. Unlike the implicit constructors it does not
// reject zero.
func (g *Generator64) Seed(seed uint64) {
	g.state = seed
}

// Float64 returns Next divided by math.MaxUint64.
func (g *Generator64) Float64() float64 {
	return ratio64(g.Next(), math.MaxUint64)
}

// Float32 returns Next divided by math.MaxUint64.
func (g *Generator64) Float32() float32 {
	return ratio32(g.Next(), math.MaxUint64)
}

// Values returns an infinite sequence of calls to Next.
func (g *Generator64) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for yield(g.Next()) {
		}
	}
}

// State returns the current state without advancing it.
func (g *Generator64) State() uint64 { return g.state }
