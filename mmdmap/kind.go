// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmdmap

import "fmt"

// Kind describes the effect an action has on the host window. It is one of
// Key, Button, Edit, Combo, Menu, Fold, KillFocus, FoldAll or UnfoldAll.
type Kind interface {
	fmt.Stringer
	isKind()
}

type ComboDir int

const (
	Prev ComboDir = iota
	Next
)

func (d ComboDir) String() string {
	if d == Prev {
		return "Prev"
	}
	return "Next"
}

// Key makes GetKeyState report the virtual key ID as pressed while the
// chord is held.
type Key struct {
	ID uint32
}

// Button clicks the dialog control ID.
type Button struct {
	ID uint32
}

// Edit focuses the edit control ID.
type Edit struct {
	ID uint32
}

// Combo steps the selection of the combo box ID.
type Combo struct {
	Dir ComboDir
	ID  uint32
}

// Menu invokes item SubIndex of the menu bar's submenu Index.
type Menu struct {
	Index    uint32
	SubIndex uint32
}

// Fold toggles a panel shown as two buttons, only one of which is visible.
type Fold struct {
	Hide uint32
	Show uint32
}

type KillFocus struct{}

type FoldAll struct{}

type UnfoldAll struct{}

func (Key) isKind() {}
func (Button) isKind() {}
func (Edit) isKind() {}
func (Combo) isKind() {}
func (Menu) isKind() {}
func (Fold) isKind() {}
func (KillFocus) isKind() {}
func (FoldAll) isKind() {}
func (UnfoldAll) isKind() {}

func (k Key) String() string { return fmt.Sprintf("Key(0x%x)", k.ID) }
func (k Button) String() string { return fmt.Sprintf("Button(0x%x)", k.ID) }
func (k Edit) String() string { return fmt.Sprintf("Edit(0x%x)", k.ID) }
func (k Combo) String() string { return fmt.Sprintf("Combo(%v, 0x%x)", k.Dir, k.ID) }
func (k Menu) String() string { return fmt.Sprintf("Menu(%d, %d)", k.Index, k.SubIndex) }
func (k Fold) String() string { return fmt.Sprintf("Fold(0x%x, 0x%x)", k.Hide, k.Show) }
func (KillFocus) String() string { return "KillFocus" }
func (FoldAll) String() string { return "FoldAll" }
func (UnfoldAll) String() string { return "UnfoldAll" }
