// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmdmap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gipcomp/mmaccel/errs"
)

func init() {
	errs.SetOutput(nil)
}

func TestLoadTestdata(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "mmd_map.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	tests := []struct {
		name  string
		label string
		kind  Kind
	}{
		{"Undo", "元に戻す", Button{ID: 0x190}},
		{"MenuHelpAbout", "バージョン情報", Menu{Index: 7, SubIndex: 6}},
		{"CameraForward", "カメラ前進", Key{ID: 0xe8}},
		{"FrameNumber", "フレーム番号", Edit{ID: 0x1a3}},
		{"ModelPrev", "前のモデル", Combo{Dir: Prev, ID: 0x1a4}},
		{"ModelNext", "次のモデル", Combo{Dir: Next, ID: 0x1a4}},
		{"FoldBone", "ボーン操作", Fold{Hide: 0x1b0, Show: 0x1b1}},
		{"KillFocus", "フォーカス解除", KillFocus{}},
		{"FoldAll", "全て畳む", FoldAll{}},
		{"UnfoldAll", "全て展開", UnfoldAll{}},
	}

	for _, tc := range tests {
		item, ok := m.Get(tc.name)
		if !ok {
			t.Fatalf("Get(%q) not found", tc.name)
		}
		if item.Label != tc.label || item.Kind != tc.kind {
			t.Fatalf("Get(%q)=%q %v, want %q %v", tc.name, item.Label, item.Kind, tc.label, tc.kind)
		}
	}

	if _, ok := m.Get("Nothing"); ok {
		t.Fatalf("Get(Nothing) found")
	}
	if m.Skipped() != 0 {
		t.Fatalf("Skipped()=%d, want 0", m.Skipped())
	}
	if got := m.Groups(); len(got) != 3 || got[0] != "camera" {
		t.Fatalf("Groups()=%v", got)
	}
}

func TestParseSkipsMalformedEntries(t *testing.T) {
	src := `{
		// comments are allowed
		"group": {
			"Good": ["label", "button", "1a"],
			"ShortArray": ["label"],
			"WrongArity": ["label", "button"],
			"BadHex": ["label", "edit", "zz"],
			"BadMenu": ["label", "menu", "1", 2],
			"NegativeMenu": ["label", "menu", -1, 2],
			"Unknown": ["label", "teleport", "1"],
			"LabelNotString": [1, "kill_focus"],
			"Scalar": 42,
			"FocusWithArg": ["label", "kill_focus", "1a"],
			"FoldAllWithArgs": ["label", "fold_all", 1, 2, 3],
			"UnfoldAll": ["label", "unfold_all"],
			"nested": {
				"Deep": ["deep", "fold", "10", "11"]
			}
		}
	}`

	m, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if m.Len() != 3 {
		t.Fatalf("Len()=%d, want 3 (%v)", m.Len(), m.Names())
	}
	if m.Skipped() != 10 {
		t.Fatalf("Skipped()=%d, want 10", m.Skipped())
	}
	for _, name := range []string{"FocusWithArg", "FoldAllWithArgs"} {
		if _, ok := m.Get(name); ok {
			t.Fatalf("%s was kept", name)
		}
	}
	if item, _ := m.Get("Deep"); item.Kind != (Fold{Hide: 0x10, Show: 0x11}) {
		t.Fatalf("Deep=%v", item.Kind)
	}
}

func TestParseFatalErrors(t *testing.T) {
	for _, src := range []string{`[1, 2]`, `"text"`, `{"a": [`, ``} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Fatalf("Parse(%q) returned no error", src)
		}
	}

	_, err := Parse([]byte(`[]`))
	if !errors.Is(err, errs.ErrInvalidData) {
		t.Fatalf("Parse([]) error %v is not ErrInvalidData", err)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error %v is not ErrNotExist", err)
	}
}

func TestAllIsSortedAndRestartable(t *testing.T) {
	m, err := Parse([]byte(`{"g": {"B": ["b", "fold_all"], "A": ["a", "unfold_all"], "C": ["c", "kill_focus"]}}`))
	if err != nil {
		t.Fatal(err)
	}

	for round := 0; round < 2; round++ {
		var names []string
		for name := range m.All() {
			names = append(names, name)
		}
		if len(names) != 3 || names[0] != "A" || names[1] != "B" || names[2] != "C" {
			t.Fatalf("round %d: All() yielded %v", round, names)
		}
	}

	for name := range m.All() {
		if name != "A" {
			t.Fatalf("early break yielded %q", name)
		}
		break
	}
}
