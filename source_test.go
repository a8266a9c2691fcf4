// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xorshift

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestRandSource(t *testing.T) {
	g := NewGenerator64WithSeed(0)
	r := rand.New(&g)
	r.Seed(123456123456)
	for _, want := range []uint64{2433743613504487332, 5448107948928174171} {
		if got := r.Uint64(); got != want {
			t.Errorf("got %d, want %d", got, want)
		}
	}
	if g.State() != 5448107948928174171 {
		t.Errorf("Rand did not drive the generator: state %d", g.State())
	}
	for i := 0; i < 1000; i++ {
		if n := r.Intn(10); n < 0 || n >= 10 {
			t.Fatalf("Intn(10) = %d", n)
		}
	}
}
