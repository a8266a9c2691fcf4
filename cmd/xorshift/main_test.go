// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math/bits"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	for _, test := range []struct {
		name string
		args []string
		want string
	}{
		{"32", []string{"-width", "32", "-seed", "123456", "-n", "2"}, "3044438244\n372467569\n"},
		{"64", []string{"-seed", "123456123456", "-n", "2"}, "2433743613504487332\n5448107948928174171\n"},
		{"128", []string{"-width", "128", "-seed", "123456123456123456", "-n", "2"},
			"74896665221921414396857867002210327216\n188163241731024871939078947111379664896\n"},
		{"none", []string{"-width", "32", "-seed", "1", "-n", "0"}, ""},
		{"zero", []string{"-width", "128", "-seed", "0", "-n", "2"}, "0\n0\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(&stdout, &stderr, test.args); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, stdout.String()); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRunWordFloat(t *testing.T) {
	if bits.UintSize != 64 {
		t.Skip("literal values are for 64-bit uint")
	}
	var stdout, stderr bytes.Buffer
	args := []string{"-width", "word", "-seed", "18446744073709551565", "-float", "64", "-n", "2"}
	if err := run(&stdout, &stderr, args); err != nil {
		t.Fatal(err)
	}
	want := "2.945747915668491e-09\n0.18730243001117602\n"
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestRunImplicitSeed(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(&stdout, &stderr, []string{"-width", "32", "-n", "5", "-v"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for _, l := range lines {
		if l == "0" {
			t.Errorf("implicit seed produced 0")
		}
	}
	if !strings.Contains(stderr.String(), "seeded") {
		t.Errorf("no seed in debug log:\n%s", stderr.String())
	}
}

func TestRunZeroSeedWarns(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(&stdout, &stderr, []string{"-width", "64", "-seed", "0", "-n", "1"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "zero seed") {
		t.Errorf("missing warning, stderr:\n%s", stderr.String())
	}
}

func TestRunFloatRange(t *testing.T) {
	for _, float := range []string{"32", "64"} {
		var stdout, stderr bytes.Buffer
		if err := run(&stdout, &stderr, []string{"-seed", "88172645463325252", "-float", float, "-n", "100"}); err != nil {
			t.Fatal(err)
		}
		for _, l := range strings.Fields(stdout.String()) {
			f, err := strconv.ParseFloat(l, 64)
			if err != nil {
				t.Fatal(err)
			}
			if f < 0 || f >= 1 {
				t.Errorf("-float %s: %v not in [0, 1)", float, f)
			}
		}
	}
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "16"},
		{"-width", "32", "-seed", "4294967296"},
		{"-width", "128", "-seed", "x"},
		{"-n", "-1"},
		{"-float", "16"},
		{"extra"},
		{"-bogus"},
	} {
		var stdout, stderr bytes.Buffer
		err := run(&stdout, &stderr, args)
		if _, ok := err.(*usageError); !ok {
			t.Errorf("%q: got %v, want usage error", args, err)
		}
	}
}
