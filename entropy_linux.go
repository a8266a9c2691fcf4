// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xorshift

import "golang.org/x/sys/unix"

// systemEntropy reads getrandom(2). It fails with EAGAIN instead of blocking
// when the kernel pool is not yet initialized, which sends fill to the clock.
type systemEntropy struct{}

func (systemEntropy) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := unix.Getrandom(p[n:], unix.GRND_NONBLOCK)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return n, err
		}
		n += m
	}
	return n, nil
}
