// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/bits"
	"strconv"

	"github.com/itsManjeet/xorshift"
)

// source hides the width of the generator behind closures so run can print
// any of them the same way.
type source struct {
	next    func() string
	float64 func() float64
	float32 func() float32
	state   func() string
	zero    func() bool
}

func newSource(width, seed string) (source, error) {
	switch width {
	case "32":
		var g xorshift.Generator32
		if seed == "" {
			g = xorshift.NewGenerator32()
		} else {
			v, err := strconv.ParseUint(seed, 10, 32)
			if err != nil {
				return source{}, usageErrorf("bad -seed for width 32: %v", err)
			}
			g = xorshift.NewGenerator32WithSeed(uint32(v))
		}
		return source{
			next:    func() string { return strconv.FormatUint(uint64(g.Next()), 10) },
			float64: g.Float64,
			float32: g.Float32,
			state:   func() string { return strconv.FormatUint(uint64(g.State()), 10) },
			zero:    func() bool { return g.State() == 0 },
		}, nil

	case "64":
		var g xorshift.Generator64
		if seed == "" {
			g = xorshift.NewGenerator64()
		} else {
			v, err := strconv.ParseUint(seed, 10, 64)
			if err != nil {
				return source{}, usageErrorf("bad -seed for width 64: %v", err)
			}
			g = xorshift.NewGenerator64WithSeed(v)
		}
		return source{
			next:    func() string { return strconv.FormatUint(g.Next(), 10) },
			float64: g.Float64,
			float32: g.Float32,
			state:   func() string { return strconv.FormatUint(g.State(), 10) },
			zero:    func() bool { return g.State() == 0 },
		}, nil

	case "128":
		var g xorshift.Generator128
		if seed == "" {
			g = xorshift.NewGenerator128()
		} else {
			v, err := xorshift.ParseUint128(seed)
			if err != nil {
				return source{}, usageErrorf("bad -seed for width 128: %v", err)
			}
			g = xorshift.NewGenerator128WithSeed(v)
		}
		return source{
			next:    func() string { return g.Next().String() },
			float64: g.Float64,
			float32: g.Float32,
			state:   func() string { return g.State().String() },
			zero:    func() bool { return g.State().IsZero() },
		}, nil

	case "word":
		var g xorshift.GeneratorWord
		if seed == "" {
			g = xorshift.NewGeneratorWord()
		} else {
			v, err := strconv.ParseUint(seed, 10, bits.UintSize)
			if err != nil {
				return source{}, usageErrorf("bad -seed for width word: %v", err)
			}
			g = xorshift.NewGeneratorWordWithSeed(uint(v))
		}
		return source{
			next:    func() string { return strconv.FormatUint(uint64(g.Next()), 10) },
			float64: g.Float64,
			float32: g.Float32,
			state:   func() string { return strconv.FormatUint(uint64(g.State()), 10) },
			zero:    func() bool { return g.State() == 0 },
		}, nil
	}
	return source{}, usageErrorf("-width must be 32, 64, 128 or word, got %q", width)
}
