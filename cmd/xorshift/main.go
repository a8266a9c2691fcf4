// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Xorshift prints values from an xorshift generator, one per line.
//
// Usage:
//
//	xorshift [-width 32|64|128|word] [-seed N] [-n count] [-float none|32|64] [-v]
//
// Without -seed the generator is seeded from the system entropy source; run
// with -v to log the seed so the sequence can be reproduced later.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if _, ok := err.(*usageError); ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "xorshift: %v\n", err)
		os.Exit(1)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("xorshift", flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	var (
		width   = fs.String("width", "64", "generator width: 32, 64, 128 or word")
		seed    = fs.String("seed", "", "decimal seed; empty seeds from system entropy")
		count   = fs.Int("n", 10, "number of values to print")
		float   = fs.String("float", "none", "print floats in [0, 1): none, 32 or 64")
		verbose = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return &usageError{err: err}
	}
	if fs.NArg() > 0 {
		return usageErrorf("no arguments allowed")
	}
	if *count < 0 {
		return usageErrorf("-n must not be negative, got %d", *count)
	}
	switch *float {
	case "none", "32", "64":
	default:
		return usageErrorf("-float must be none, 32 or 64, got %q", *float)
	}

	log := newLogger(stderr, *verbose)
	defer log.Sync()

	src, err := newSource(*width, *seed)
	if err != nil {
		return err
	}
	log.Debug("seeded",
		zap.String("width", *width),
		zap.Bool("implicit", *seed == ""),
		zap.String("seed", src.state()),
	)
	if src.zero() {
		log.Warn("zero seed: every value will be 0", zap.String("width", *width))
	}

	for i := 0; i < *count; i++ {
		var line string
		switch *float {
		case "32":
			line = strconv.FormatFloat(float64(src.float32()), 'g', -1, 32)
		case "64":
			line = strconv.FormatFloat(src.float64(), 'g', -1, 64)
		default:
			line = src.next()
		}
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return err
		}
	}
	log.Debug("done", zap.Int("n", *count), zap.String("state", src.state()))
	return nil
}

// newLogger returns a console logger on w without timestamps.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = ""
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(ec),
		zapcore.AddSync(w),
		level,
	))
}
