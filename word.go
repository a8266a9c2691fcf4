// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xorshift

import (
	"io"
	"iter"
	"math"
	"math/bits"
)

// GeneratorWord is an xorshift generator over uint. It produces exactly the
// sequence of Generator32 on 32-bit platforms and of Generator64 on 64-bit
// platforms.
type GeneratorWord struct {
	state uint
}

// NewGeneratorWord returns a generator seeded from DefaultEntropy.
func NewGeneratorWord() GeneratorWord {
	return NewGeneratorWordFrom(DefaultEntropy)
}

// NewGeneratorWordFrom returns a generator seeded from r.
func NewGeneratorWordFrom(r io.Reader) GeneratorWord {
	return GeneratorWord{state: entropyWord(r)}
}

// NewGeneratorWordWithSeed returns a generator whose state is seed.
func NewGeneratorWordWithSeed(seed uint) GeneratorWord {
	return GeneratorWord{state: seed}
}

// Next advances the state and returns it.
func (g *GeneratorWord) Next() uint {
	if bits.UintSize == 32 {
		g.state = shift(g.state, triple32)
	} else {
		g.state = shift(g.state, triple64)
	}
	return g.state
}

// Float64 returns Next divided by math.MaxUint.
func (g *GeneratorWord) Float64() float64 {
	return ratio64(g.Next(), math.MaxUint)
}

// Float32 returns Next divided by math.MaxUint.
func (g *GeneratorWord) Float32() float32 {
	return ratio32(g.Next(), math.MaxUint)
}

// Values returns an infinite sequence of calls to Next.
func (g *GeneratorWord) Values() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for yield(g.Next()) {
		}
	}
}

// State returns the current state without advancing it.
func (g *GeneratorWord) State() uint { return g.state }
