// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xorshift

// A triple is the left, right, left shift amounts of a single-word xorshift.
type triple struct {
	a, b, c uint
}

// Marsaglia's constants. Changing them changes every sequence.
var (
	triple32 = triple{13, 17, 5}
	triple64 = triple{13, 7, 17}
)

type word interface {
	~uint32 | ~uint64 | ~uint
}

// shift applies one xorshift step to x.
func shift[T word](x T, t triple) T {
	x ^= x << t.a
	x ^= x >> t.b
	x ^= x << t.c
	return x
}

// ratio64 maps v onto [0, 1] by dividing by limit after widening both to float64.
func ratio64[T word](v, limit T) float64 {
	return float64(v) / float64(limit)
}

func ratio32[T word](v, limit T) float32 {
	return float32(v) / float32(limit)
}
