// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xorshift

import (
	"encoding/binary"
	"io"
	"math/bits"
	"time"
)

// DefaultEntropy seeds the generators built by NewGenerator32,
// NewGenerator64, NewGenerator128 and NewGeneratorWord.
//
// It reads from the operating system's random source without blocking:
// getrandom(2) on Linux and crypto/rand elsewhere. The bytes are only used as
// a starting state; they do not make the generators secure.
//
// Whatever the reader, an implicit seed is never zero. If the read fails or
// returns only zero bytes, the seed comes from the wall clock mixed through
// splitmix64, and if that is zero too, from a fixed constant. Seeds from the
// clock are not reproducible and may repeat when two generators are built in
// the same nanosecond.
//
// DefaultEntropy is read without synchronization. Replace it, if at all,
// before any goroutine builds a generator.
var DefaultEntropy io.Reader = systemEntropy{}

// fallbackSeed is the golden ratio in 64-bit fixed point.
const fallbackSeed = 0x9e3779b97f4a7c15

func entropy32(r io.Reader) uint32 {
	var b [4]byte
	fill(r, b[:])
	return binary.LittleEndian.Uint32(b[:])
}

func entropy64(r io.Reader) uint64 {
	var b [8]byte
	fill(r, b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func entropy128(r io.Reader) Uint128 {
	var b [16]byte
	fill(r, b[:])
	return Uint128{
		Hi: binary.LittleEndian.Uint64(b[8:]),
		Lo: binary.LittleEndian.Uint64(b[:8]),
	}
}

func entropyWord(r io.Reader) uint {
	if bits.UintSize == 32 {
		return uint(entropy32(r))
	}
	return uint(entropy64(r))
}

// fill fills b with seed material that is not all zero.
func fill(r io.Reader, b []byte) {
	if r != nil {
		if _, err := io.ReadFull(r, b); err == nil && !allZero(b) {
			return
		}
	}
	x := uint64(time.Now().UnixNano())
	fillWords(b, func() uint64 { return splitmix64(&x) })
	if allZero(b) {
		fillWords(b, func() uint64 { return fallbackSeed })
	}
}

func fillWords(b []byte, next func() uint64) {
	var w [8]byte
	for i := 0; i < len(b); i += 8 {
		binary.LittleEndian.PutUint64(w[:], next())
		copy(b[i:], w[:])
	}
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// splitmix64 advances x by the Weyl increment and returns the mixed result.
func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
