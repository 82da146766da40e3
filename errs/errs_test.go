// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(fs.ErrNotExist, "mmd_map.json")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("errors.Is(%v, fs.ErrNotExist) = false", err)
	}
	if got := err.Error(); got != "mmd_map.json: file does not exist" {
		t.Fatalf("Error() = %q", got)
	}
	if Wrap(nil, "x") != nil {
		t.Fatalf("Wrap(nil) != nil")
	}

	var e *Error
	if !errors.As(err, &e) || len(e.Stack()) == 0 {
		t.Fatalf("wrapped error carries no stack")
	}
}

func TestLogfAndDebugf(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetDebug(false)
	Debugf("hidden %d", 1)
	Logf("shown %d", 2)
	SetDebug(true)
	Debugf("traced %d", 3)
	SetDebug(false)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written with debug off: %q", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "debug: traced 3") {
		t.Fatalf("missing log lines: %q", out)
	}
}

func TestRecoveredNeverPanics(t *testing.T) {
	SetOutput(nil)
	SetPanicOnError(true)
	defer SetPanicOnError(false)

	if Recovered(nil) != nil {
		t.Fatalf("Recovered(nil) != nil")
	}
	err := Recovered("boom")
	if err == nil || err.Error() != "boom" {
		t.Fatalf("Recovered(\"boom\") = %v", err)
	}
}
