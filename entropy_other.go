// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package xorshift

import "crypto/rand"

type systemEntropy struct{}

func (systemEntropy) Read(p []byte) (int, error) {
	return rand.Read(p)
}
