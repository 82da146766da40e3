// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gipcomp/mmaccel/errs"
	"github.com/Gipcomp/mmaccel/keys"
)

func init() {
	errs.SetOutput(nil)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	km := KeyMap{
		"Undo": keys.FromSlice([]keys.Key{keys.KeyControl, keys.KeyZ}),
		"Redo": keys.FromSlice([]keys.Key{keys.KeyZ, keys.KeyShift, keys.KeyControl}),
		"None": keys.New(),
	}

	path := filepath.Join(t.TempDir(), "key_map.json")
	if err := km.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load returned %d bindings, want 2: %v", len(got), got.Names())
	}
	if !got["Undo"].Equal(km["Undo"]) || !got["Redo"].Equal(km["Redo"]) {
		t.Fatalf("round trip changed bindings: %v", got)
	}
	if got["Undo"].Equal(keys.FromSlice([]keys.Key{keys.KeyShift, keys.KeyZ})) {
		t.Fatalf("Undo equals Shift+Z")
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "None") {
		t.Fatalf("empty binding written: %s", data)
	}
	if !strings.Contains(string(data), `"Redo": [`) {
		t.Fatalf("unexpected layout: %s", data)
	}
}

func TestParse(t *testing.T) {
	km, err := Parse([]byte(`{
		// sorted on load
		"Undo": [90, 17],
		"Empty": [],
		"Null": null
	}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(km) != 1 || !km["Undo"].Equal(keys.FromSlice([]keys.Key{keys.KeyControl, keys.KeyZ})) {
		t.Fatalf("Parse=%v", km)
	}

	for _, src := range []string{`[1]`, `{"Undo": "ctrl+z"}`, `{"Undo": [-1]}`, `null`, `{`} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Fatalf("Parse(%q) returned no error", src)
		}
	}
}

func TestLoadOrDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key_map.json")

	km, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault returned error: %v", err)
	}
	if len(km) != len(Default()) {
		t.Fatalf("LoadOrDefault returned %d bindings, want %d", len(km), len(Default()))
	}

	written, err := Load(path)
	if err != nil {
		t.Fatalf("defaults not written: %v", err)
	}
	if !written["KeyPaste"].Equal(keys.FromSlice([]keys.Key{keys.KeyControl, keys.KeyV})) {
		t.Fatalf("KeyPaste=%v", written["KeyPaste"])
	}

	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(path); err == nil {
		t.Fatalf("LoadOrDefault over a broken file returned no error")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error %v is not ErrNotExist", err)
	}
}

func TestSet(t *testing.T) {
	km := KeyMap{}
	km.Set("Play", keys.FromVK(keys.KeyP))
	km.Set("Play", keys.New())
	if _, ok := km["Play"]; ok {
		t.Fatalf("empty Set kept the binding")
	}
}

func TestDuplicates(t *testing.T) {
	ctrlZ := keys.FromSlice([]keys.Key{keys.KeyControl, keys.KeyZ})
	km := KeyMap{
		"Undo":  ctrlZ,
		"Back":  ctrlZ,
		"Play":  keys.FromVK(keys.KeyP),
		"Pause": keys.FromVK(keys.KeyP),
		"Stop":  keys.FromVK(keys.KeyS),
	}

	dups := km.Duplicates()
	if len(dups) != 2 {
		t.Fatalf("Duplicates()=%v, want 2 groups", dups)
	}
	if dups[0].Names[0] != "Back" || dups[0].Names[1] != "Undo" || !dups[0].Keys.Equal(ctrlZ) {
		t.Fatalf("first group %v", dups[0])
	}
	if dups[1].Names[0] != "Pause" || dups[1].Names[1] != "Play" {
		t.Fatalf("second group %v", dups[1])
	}
}

func TestImportLegacy(t *testing.T) {
	src := `# MMAccel key map
FramePrev = A
FrameNext = d
Undo = Ctrl+Z

Broken
Bad = Ctrl+Hyper
Eq = A = B
`
	km, skipped, err := ImportLegacy(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ImportLegacy returned error: %v", err)
	}
	if skipped != 3 {
		t.Fatalf("skipped=%d, want 3", skipped)
	}
	if !km["FramePrev"].Equal(keys.FromVK(keys.KeyA)) || !km["FrameNext"].Equal(keys.FromVK(keys.KeyD)) {
		t.Fatalf("FramePrev=%v FrameNext=%v", km["FramePrev"], km["FrameNext"])
	}
	if !km["Undo"].Equal(keys.FromSlice([]keys.Key{keys.KeyControl, keys.KeyZ})) {
		t.Fatalf("Undo=%v", km["Undo"])
	}
}
