// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmaccel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Gipcomp/mmaccel/errs"
	"github.com/Gipcomp/mmaccel/keymap"
	"github.com/Gipcomp/mmaccel/keys"
	"github.com/Gipcomp/mmaccel/settings"
)

func init() {
	errs.SetOutput(nil)
}

const testActions = `{
	"edit": {
		"Undo": ["元に戻す", "button", "190"],
		"KeyPaste": ["貼り付け", "button", "1a0"]
	}
}`

func testSettings(t *testing.T) *settings.Settings {
	t.Helper()
	s := settings.Default()
	s.Dir = t.TempDir()
	if err := os.WriteFile(s.MMDMapPath(), []byte(testActions), 0644); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLoadHandlerWritesDefaults(t *testing.T) {
	s := testSettings(t)

	h, err := LoadHandler(s, nil)
	if err != nil {
		t.Fatalf("LoadHandler returned error: %v", err)
	}
	if name, ok := h.Lookup(keys.FromSlice([]keys.Key{keys.KeyControl, keys.KeyV})); !ok || name != "KeyPaste" {
		t.Fatalf("Ctrl+V bound to %q", name)
	}
	if _, err := keymap.Load(s.KeyMapPath()); err != nil {
		t.Fatalf("default key map not written: %v", err)
	}
}

func TestLoadHandlerBrokenKeyMap(t *testing.T) {
	s := testSettings(t)
	broken := []byte(`{"Undo": `)
	if err := os.WriteFile(s.KeyMapPath(), broken, 0644); err != nil {
		t.Fatal(err)
	}

	h, err := LoadHandler(s, nil)
	if err != nil {
		t.Fatalf("LoadHandler returned error: %v", err)
	}
	if h.Len() == 0 {
		t.Fatalf("no default bindings")
	}

	data, _ := os.ReadFile(s.KeyMapPath())
	if string(data) != string(broken) {
		t.Fatalf("broken key map overwritten: %s", data)
	}
}

func TestLoadHandlerMissingActions(t *testing.T) {
	s := settings.Default()
	s.Dir = filepath.Join(t.TempDir(), "missing")

	if _, err := LoadHandler(s, nil); err == nil {
		t.Fatalf("LoadHandler without an action table returned no error")
	}
}
