// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
)

const helpText = `usage: xorshift [-width 32|64|128|word] [-seed N] [-n count] [-float none|32|64] [-v]`

type usageError struct {
	err error
}

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func (e *usageError) Error() string {
	if e.err == flag.ErrHelp {
		return helpText
	}
	return fmt.Sprintf("%v\n%s", e.err, helpText)
}

func (e *usageError) Unwrap() error { return e.err }
