// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xorshift

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

var (
	// ErrSyntax is wrapped by errors from ParseUint128 when the input is not
	// a decimal number.
	ErrSyntax = xerrors.New("invalid syntax")

	// ErrRange is wrapped by errors from ParseUint128 when the input does
	// not fit in 128 bits.
	ErrRange = xerrors.New("value out of range")
)

// A Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128From64 returns v as a Uint128.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero reports whether u is 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// lanes splits u into four 32-bit lanes, most significant first.
func (u Uint128) lanes() (a, b, c, d uint32) {
	return uint32(u.Hi >> 32), uint32(u.Hi), uint32(u.Lo >> 32), uint32(u.Lo)
}

func fromLanes(a, b, c, d uint32) Uint128 {
	return Uint128{
		Hi: uint64(a)<<32 | uint64(b),
		Lo: uint64(c)<<32 | uint64(d),
	}
}

// Float64 returns u rounded to the nearest float64.
func (u Uint128) Float64() float64 {
	if u.Hi == 0 {
		return float64(u.Lo)
	}
	// Keep the top 64 significant bits and fold everything below them into
	// a sticky bit so the conversion rounds once.
	n := uint(bits.Len64(u.Hi))
	x := u.Hi<<(64-n) | u.Lo>>n
	if u.Lo&(uint64(1)<<n-1) != 0 {
		x |= 1
	}
	return math.Ldexp(float64(x), int(n))
}

// String returns u in base 10.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	const base = 1e19 // largest power of 10 below 2^64
	var chunks []uint64
	for u.Hi != 0 {
		var r uint64
		u.Hi, r = bits.Div64(0, u.Hi, base)
		u.Lo, r = bits.Div64(r, u.Lo, base)
		chunks = append(chunks, r)
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(u.Lo, 10))
	for i := len(chunks) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%019d", chunks[i])
	}
	return sb.String()
}

// ParseUint128 parses a base 10 unsigned integer.
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, xerrors.Errorf("parsing %q: %w", s, ErrSyntax)
	}
	var u Uint128
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Uint128{}, xerrors.Errorf("parsing %q: %w", s, ErrSyntax)
		}
		hh, hl := bits.Mul64(u.Hi, 10)
		hi, lo := bits.Mul64(u.Lo, 10)
		var carry uint64
		hi, carry = bits.Add64(hi, hl, 0)
		if hh != 0 || carry != 0 {
			return Uint128{}, xerrors.Errorf("parsing %q: %w", s, ErrRange)
		}
		lo, carry = bits.Add64(lo, uint64(c-'0'), 0)
		hi, carry = bits.Add64(hi, 0, carry)
		if carry != 0 {
			return Uint128{}, xerrors.Errorf("parsing %q: %w", s, ErrRange)
		}
		u = Uint128{Hi: hi, Lo: lo}
	}
	return u, nil
}
